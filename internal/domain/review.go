package domain

import "context"

// CommitReviewRequest описывает нормализованное событие вебхука,
// запускающее ревью одного коммита.
type CommitReviewRequest struct {
	RepoOwner   string
	RepoName    string
	PrNumber    int
	PrURL       string
	AuthorLogin string
	CommitSha   string
}

// ProcessCommitResult описывает итог обработки коммита.
// Success=false без ошибки означает, что репозиторий не участвует в миссиях.
type ProcessCommitResult struct {
	Success bool
}

// ReviewVerdict представляет вердикт AI-ревью. Degraded выставляется, когда
// шлюз не смог получить ответ модели и подставил запасной результат: для
// вызывающего кода это обычный вердикт, но наблюдаемость различает
// «модель отказала решение» и «модель была недоступна».
type ReviewVerdict struct {
	IsPassed       bool
	Feedback       string
	Degraded       bool
	DegradedReason string
}

// AssessmentReport представляет итоговый отчет по пройденной миссии.
type AssessmentReport struct {
	Report         string
	Degraded       bool
	DegradedReason string
}

// RepoInfo представляет метаданные репозитория миссии.
type RepoInfo struct {
	Description  string
	ThumbnailURL string
}

// PrStatusInfo представляет состояние последнего PR в репозитории пользователя.
type PrStatusInfo struct {
	IsMerged bool
	PrURL    string
}

// CodeHostGateway определяет контракт для работы с API git-хостинга.
type CodeHostGateway interface {
	GetPrDiff(ctx context.Context, owner, repo string, prNumber int) (string, error)
	PostComment(ctx context.Context, owner, repo string, prNumber int, body string) error
	GetRepoInfo(ctx context.Context, repoName string) (*RepoInfo, error)
	// ForkRepo создает форк от имени пользователя по его собственному токену,
	// а не от имени сервисного аккаунта. Возвращает URL форка.
	ForkRepo(ctx context.Context, userToken, repoName string) (string, error)
	GetLatestPrStatus(ctx context.Context, userToken, repoName string) (*PrStatusInfo, error)
}

// AIReviewGateway определяет контракт для работы с генеративной моделью.
// Оба метода тотальны: при любой внутренней ошибке возвращается запасной
// результат, ошибка наружу не выходит.
type AIReviewGateway interface {
	GenerateCodeReview(ctx context.Context, missionDesc, solutionDiff, userDiff string) ReviewVerdict
	GenerateFinalAssessment(ctx context.Context, missionDesc, solutionDiff, userDiff string) AssessmentReport
}

// ObjectStorage определяет контракт загрузки файлов в объектное хранилище.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (publicURL string, err error)
}
