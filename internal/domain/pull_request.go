package domain

import "context"

// Статусы отслеживаемого пул-реквеста.
const (
	PrStatusInProgress = "IN_PROGRESS"
	PrStatusResolved   = "RESOLVED"
)

// PullRequest представляет отслеживаемый системой пул-реквест,
// отправленный пользователем в рамках миссии.
type PullRequest struct {
	ID              int64
	MissionID       int64
	GithubPrURL     string
	PrNumber        int
	Owner           string
	Status          string
	FinalAssessment string
}

// PullRequestRepository определяет контракт для работы с хранилищем пул-реквестов.
type PullRequestRepository interface {
	// UpsertByURL атомарно создает PR по уникальному URL либо возвращает
	// существующий. Гонка двух одновременных доставок вебхука разрешается
	// на уровне БД (insert-on-conflict-do-nothing + повторное чтение).
	UpsertByURL(ctx context.Context, pr *PullRequest) (*PullRequest, error)
	GetByURL(ctx context.Context, prURL string) (*PullRequest, error)
	GetByID(ctx context.Context, prID int64) (*PullRequest, error)
	GetByMission(ctx context.Context, missionID int64) ([]*PullRequest, error)
	// Resolve переводит PR в статус RESOLVED и сохраняет итоговую оценку.
	// Переход односторонний: из RESOLVED обратно в IN_PROGRESS не возвращаемся.
	Resolve(ctx context.Context, prID int64, finalAssessment string) (*PullRequest, error)
}
