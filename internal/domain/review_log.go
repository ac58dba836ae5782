package domain

import (
	"context"
	"time"
)

// ReviewLog представляет неизменяемую запись одного AI-ревью одного коммита.
// Записи только добавляются: по одной на каждый обработанный коммит,
// независимо от вердикта.
type ReviewLog struct {
	ID            int64
	PullRequestID int64
	CommitSha     string
	UserDiff      string
	AiFeedback    string
	IsPassed      bool
	CreatedAt     time.Time
}

// ReviewLogRepository определяет контракт для работы с хранилищем логов ревью.
type ReviewLogRepository interface {
	Create(ctx context.Context, log *ReviewLog) (*ReviewLog, error)
	GetByPullRequest(ctx context.Context, prID int64) ([]*ReviewLog, error)
	CountByPullRequest(ctx context.Context, prID int64) (int64, error)
}
