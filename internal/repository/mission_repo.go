package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mission-review-service/internal/database"
	"mission-review-service/internal/domain"
)

// MissionRepository реализует взаимодействие с данными миссий в PostgreSQL.
type MissionRepository struct {
	queries *database.Queries
}

// NewMissionRepository создает новый экземпляр MissionRepository.
func NewMissionRepository(queries *database.Queries) domain.MissionRepository {
	return &MissionRepository{
		queries: queries,
	}
}

// Create создает миссию. Уникальность repo_name обеспечивает БД.
func (r *MissionRepository) Create(ctx context.Context, mission *domain.Mission) (*domain.Mission, error) {
	dbMission, err := r.queries.CreateMission(ctx, database.CreateMissionParams{
		RepoName:     mission.RepoName,
		Title:        mission.Title,
		Description:  mission.Description,
		SolutionDiff: mission.SolutionDiff,
		ThumbnailUrl: toNullString(mission.ThumbnailURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return toDomainMission(dbMission), nil
}

// GetByID возвращает миссию по ID.
func (r *MissionRepository) GetByID(ctx context.Context, missionID int64) (*domain.Mission, error) {
	dbMission, err := r.queries.GetMissionByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return toDomainMission(dbMission), nil
}

// GetByRepoName возвращает миссию по полному имени репозитория "owner/repo".
func (r *MissionRepository) GetByRepoName(ctx context.Context, repoName string) (*domain.Mission, error) {
	dbMission, err := r.queries.GetMissionByRepoName(ctx, repoName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission by repo name: %w", err)
	}
	return toDomainMission(dbMission), nil
}

// GetAll возвращает все миссии.
func (r *MissionRepository) GetAll(ctx context.Context) ([]*domain.Mission, error) {
	dbMissions, err := r.queries.ListMissions(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	missions := make([]*domain.Mission, 0, len(dbMissions))
	for _, dbMission := range dbMissions {
		missions = append(missions, toDomainMission(dbMission))
	}
	return missions, nil
}

// ExistsByRepoName проверяет, зарегистрирован ли репозиторий как миссия.
func (r *MissionRepository) ExistsByRepoName(ctx context.Context, repoName string) (bool, error) {
	count, err := r.queries.MissionExistsByRepoName(ctx, repoName)
	if err != nil {
		return false, fmt.Errorf("failed to check mission exists: %w", err)
	}
	return count > 0, nil
}

func toDomainMission(dbMission database.Mission) *domain.Mission {
	return &domain.Mission{
		ID:           dbMission.ID,
		RepoName:     dbMission.RepoName,
		Title:        dbMission.Title,
		Description:  dbMission.Description,
		SolutionDiff: dbMission.SolutionDiff,
		ThumbnailURL: dbMission.ThumbnailUrl.String,
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
