package domain

import "context"

// CommitReviewUseCase определяет бизнес-логику обработки коммита:
// поиск миссии, получение диффа, AI-вердикт, запись лога, комментарии.
type CommitReviewUseCase interface {
	ProcessCommit(ctx context.Context, req CommitReviewRequest) (ProcessCommitResult, error)
}

// MissionUseCase определяет бизнес-логику для работы с миссиями.
type MissionUseCase interface {
	CreateMission(ctx context.Context, mission *Mission) (*Mission, error)
	GetMission(ctx context.Context, missionID int64) (*Mission, error)
	ListMissions(ctx context.Context) ([]*Mission, error)
}

// UserUseCase определяет бизнес-логику для работы с пользователями.
type UserUseCase interface {
	CreateUser(ctx context.Context, email, username string) (*User, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	// ForkMissionRepo создает форк репозитория миссии от имени пользователя.
	ForkMissionRepo(ctx context.Context, userToken string, missionID int64) (string, error)
	// CheckMissionStatus проверяет, смержен ли последний PR в форке миссии
	// у пользователя.
	CheckMissionStatus(ctx context.Context, userToken string, userID, missionID int64) (*PrStatusInfo, error)
}
