package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mission-review-service/internal/database"
	"mission-review-service/internal/domain"
)

// PullRequestRepository реализует взаимодействие с данными пул-реквестов в PostgreSQL.
type PullRequestRepository struct {
	queries *database.Queries
}

// NewPullRequestRepository создает новый экземпляр PullRequestRepository.
func NewPullRequestRepository(queries *database.Queries) domain.PullRequestRepository {
	return &PullRequestRepository{
		queries: queries,
	}
}

// UpsertByURL создает PR либо возвращает существующий с тем же URL.
// Вставка идет через ON CONFLICT DO NOTHING по уникальному github_pr_url,
// поэтому одновременные доставки одного вебхука не плодят дубликаты.
func (r *PullRequestRepository) UpsertByURL(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
	status := pr.Status
	if status == "" {
		status = domain.PrStatusInProgress
	}

	_, err := r.queries.InsertPullRequest(ctx, database.InsertPullRequestParams{
		MissionID:   pr.MissionID,
		GithubPrUrl: pr.GithubPrURL,
		PrNumber:    int32(pr.PrNumber),
		OwnerLogin:  pr.Owner,
		Status:      status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert PR: %w", err)
	}

	// Повторное чтение отдает актуальную строку независимо от того,
	// кто из конкурентов выиграл вставку.
	return r.GetByURL(ctx, pr.GithubPrURL)
}

// GetByURL возвращает PR по уникальному URL.
func (r *PullRequestRepository) GetByURL(ctx context.Context, prURL string) (*domain.PullRequest, error) {
	dbPR, err := r.queries.GetPullRequestByURL(ctx, prURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get PR by url: %w", err)
	}
	return toDomainPullRequest(dbPR), nil
}

// GetByID возвращает PR по ID.
func (r *PullRequestRepository) GetByID(ctx context.Context, prID int64) (*domain.PullRequest, error) {
	dbPR, err := r.queries.GetPullRequestByID(ctx, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get PR: %w", err)
	}
	return toDomainPullRequest(dbPR), nil
}

// GetByMission возвращает все PR миссии.
func (r *PullRequestRepository) GetByMission(ctx context.Context, missionID int64) ([]*domain.PullRequest, error) {
	dbPRs, err := r.queries.GetPullRequestsByMission(ctx, missionID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get mission PRs: %w", err)
	}

	prs := make([]*domain.PullRequest, 0, len(dbPRs))
	for _, dbPR := range dbPRs {
		prs = append(prs, toDomainPullRequest(dbPR))
	}
	return prs, nil
}

// Resolve переводит PR в RESOLVED и сохраняет итоговую оценку.
func (r *PullRequestRepository) Resolve(ctx context.Context, prID int64, finalAssessment string) (*domain.PullRequest, error) {
	dbPR, err := r.queries.ResolvePullRequest(ctx, database.ResolvePullRequestParams{
		ID:              prID,
		FinalAssessment: toNullString(finalAssessment),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to resolve PR: %w", err)
	}
	return toDomainPullRequest(dbPR), nil
}

func toDomainPullRequest(dbPR database.PullRequest) *domain.PullRequest {
	return &domain.PullRequest{
		ID:              dbPR.ID,
		MissionID:       dbPR.MissionID,
		GithubPrURL:     dbPR.GithubPrUrl,
		PrNumber:        int(dbPR.PrNumber),
		Owner:           dbPR.OwnerLogin,
		Status:          dbPR.Status,
		FinalAssessment: dbPR.FinalAssessment.String,
	}
}
