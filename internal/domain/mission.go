package domain

import "context"

// Mission представляет учебное задание, привязанное ровно к одному репозиторию.
type Mission struct {
	ID           int64
	RepoName     string
	Title        string
	Description  string
	SolutionDiff string
	ThumbnailURL string
}

// MissionRepository определяет контракт для работы с хранилищем миссий.
type MissionRepository interface {
	Create(ctx context.Context, mission *Mission) (*Mission, error)
	GetByID(ctx context.Context, missionID int64) (*Mission, error)
	GetByRepoName(ctx context.Context, repoName string) (*Mission, error)
	GetAll(ctx context.Context) ([]*Mission, error)
	ExistsByRepoName(ctx context.Context, repoName string) (bool, error)
}
