package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mission-review-service/internal/database"
	"mission-review-service/internal/domain"
)

// ReviewLogRepository реализует взаимодействие с логами ревью в PostgreSQL.
// Записи только добавляются, обновления и удаления не предусмотрены.
type ReviewLogRepository struct {
	queries *database.Queries
}

// NewReviewLogRepository создает новый экземпляр ReviewLogRepository.
func NewReviewLogRepository(queries *database.Queries) domain.ReviewLogRepository {
	return &ReviewLogRepository{
		queries: queries,
	}
}

// Create добавляет запись о ревью одного коммита.
func (r *ReviewLogRepository) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	dbLog, err := r.queries.CreateReviewLog(ctx, database.CreateReviewLogParams{
		PullRequestID: log.PullRequestID,
		CommitSha:     log.CommitSha,
		UserDiff:      log.UserDiff,
		AiFeedback:    log.AiFeedback,
		IsPassed:      log.IsPassed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review log: %w", err)
	}
	return toDomainReviewLog(dbLog), nil
}

// GetByPullRequest возвращает логи ревью PR в порядке создания.
func (r *ReviewLogRepository) GetByPullRequest(ctx context.Context, prID int64) ([]*domain.ReviewLog, error) {
	dbLogs, err := r.queries.GetReviewLogsByPullRequest(ctx, prID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get review logs: %w", err)
	}

	logs := make([]*domain.ReviewLog, 0, len(dbLogs))
	for _, dbLog := range dbLogs {
		logs = append(logs, toDomainReviewLog(dbLog))
	}
	return logs, nil
}

// CountByPullRequest возвращает число ревью по PR.
func (r *ReviewLogRepository) CountByPullRequest(ctx context.Context, prID int64) (int64, error) {
	count, err := r.queries.CountReviewLogsByPullRequest(ctx, prID)
	if err != nil {
		return 0, fmt.Errorf("failed to count review logs: %w", err)
	}
	return count, nil
}

func toDomainReviewLog(dbLog database.ReviewLog) *domain.ReviewLog {
	return &domain.ReviewLog{
		ID:            dbLog.ID,
		PullRequestID: dbLog.PullRequestID,
		CommitSha:     dbLog.CommitSha,
		UserDiff:      dbLog.UserDiff,
		AiFeedback:    dbLog.AiFeedback,
		IsPassed:      dbLog.IsPassed,
		CreatedAt:     dbLog.CreatedAt,
	}
}
