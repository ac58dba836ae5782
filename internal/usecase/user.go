package usecase

import (
	"context"
	"errors"
	"strings"

	"mission-review-service/internal/domain"
)

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo    domain.UserRepository
	missionRepo domain.MissionRepository
	codeHost    domain.CodeHostGateway
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, missionRepo domain.MissionRepository, codeHost domain.CodeHostGateway) domain.UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		missionRepo: missionRepo,
		codeHost:    codeHost,
	}
}

// CreateUser регистрирует пользователя по уникальному email.
func (uc *UserUseCase) CreateUser(ctx context.Context, email, username string) (*domain.User, error) {
	if email == "" || username == "" {
		return nil, domain.ErrInvalidUserData
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return uc.userRepo.Create(ctx, &domain.User{Email: email, Username: username})
}

// GetUser возвращает пользователя по ID.
func (uc *UserUseCase) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// ListUsers возвращает всех пользователей.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.GetAll(ctx)
}

// ForkMissionRepo создает форк репозитория миссии от имени пользователя.
// Форк выполняется по токену самого пользователя, а не сервисного аккаунта.
func (uc *UserUseCase) ForkMissionRepo(ctx context.Context, userToken string, missionID int64) (string, error) {
	if userToken == "" {
		return "", domain.ErrInvalidUserData
	}

	mission, err := uc.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		return "", err
	}

	return uc.codeHost.ForkRepo(ctx, userToken, mission.RepoName)
}

// CheckMissionStatus проверяет состояние последнего PR в форке миссии
// у пользователя. Форк живет под аккаунтом пользователя, поэтому имя
// репозитория собирается из его username и имени репозитория миссии.
func (uc *UserUseCase) CheckMissionStatus(ctx context.Context, userToken string, userID, missionID int64) (*domain.PrStatusInfo, error) {
	if userToken == "" {
		return nil, domain.ErrInvalidUserData
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	mission, err := uc.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		return nil, err
	}

	forkRepo := user.Username + "/" + shortRepoName(mission.RepoName)
	return uc.codeHost.GetLatestPrStatus(ctx, userToken, forkRepo)
}

// shortRepoName отрезает владельца от полного имени "owner/repo".
func shortRepoName(repoName string) string {
	if idx := strings.LastIndex(repoName, "/"); idx >= 0 {
		return repoName[idx+1:]
	}
	return repoName
}
