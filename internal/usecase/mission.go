package usecase

import (
	"context"

	"mission-review-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// MissionUseCase реализует бизнес-логику для работы с миссиями.
type MissionUseCase struct {
	missionRepo domain.MissionRepository
	codeHost    domain.CodeHostGateway
	logger      *logrus.Logger
}

// NewMissionUseCase создает новый экземпляр MissionUseCase.
func NewMissionUseCase(missionRepo domain.MissionRepository, codeHost domain.CodeHostGateway, logger *logrus.Logger) domain.MissionUseCase {
	return &MissionUseCase{
		missionRepo: missionRepo,
		codeHost:    codeHost,
		logger:      logger,
	}
}

// CreateMission регистрирует миссию. Если описание или превью не заданы,
// они дополняются метаданными репозитория с git-хостинга.
func (uc *MissionUseCase) CreateMission(ctx context.Context, mission *domain.Mission) (*domain.Mission, error) {
	// Валидация входных данных
	if mission.RepoName == "" || mission.Title == "" || mission.SolutionDiff == "" {
		return nil, domain.ErrInvalidMissionData
	}

	// 1. Один репозиторий — одна миссия
	exists, err := uc.missionRepo.ExistsByRepoName(ctx, mission.RepoName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrMissionAlreadyExists
	}

	// 2. Дополняем описание и превью метаданными репозитория
	if mission.Description == "" || mission.ThumbnailURL == "" {
		info, err := uc.codeHost.GetRepoInfo(ctx, mission.RepoName)
		if err != nil {
			// Обогащение не критично для регистрации миссии
			uc.logger.WithError(err).WithField("repo", mission.RepoName).Warn("Failed to fetch repo info")
		} else {
			if mission.Description == "" {
				mission.Description = info.Description
			}
			if mission.ThumbnailURL == "" {
				mission.ThumbnailURL = info.ThumbnailURL
			}
		}
	}

	return uc.missionRepo.Create(ctx, mission)
}

// GetMission возвращает миссию по ID.
func (uc *MissionUseCase) GetMission(ctx context.Context, missionID int64) (*domain.Mission, error) {
	return uc.missionRepo.GetByID(ctx, missionID)
}

// ListMissions возвращает все миссии.
func (uc *MissionUseCase) ListMissions(ctx context.Context) ([]*domain.Mission, error) {
	return uc.missionRepo.GetAll(ctx)
}
