package usecase

import (
	"context"
	"errors"
	"fmt"

	"mission-review-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// Заголовок, под которым публикуется фидбек ревью в комментарии PR.
const feedbackHeading = "## AI Code Review Feedback"

// CommitReviewUseCase реализует основной workflow ревью коммита:
// последовательность зависимых удаленных вызовов (БД, git-хостинг, модель),
// которая должна выполняться строго по порядку и оставлять систему
// в консистентном состоянии даже при повторной доставке вебхука.
type CommitReviewUseCase struct {
	missionRepo   domain.MissionRepository
	prRepo        domain.PullRequestRepository
	reviewLogRepo domain.ReviewLogRepository
	codeHost      domain.CodeHostGateway
	ai            domain.AIReviewGateway
	logger        *logrus.Logger
}

// NewCommitReviewUseCase создает новый экземпляр CommitReviewUseCase.
func NewCommitReviewUseCase(
	missionRepo domain.MissionRepository,
	prRepo domain.PullRequestRepository,
	reviewLogRepo domain.ReviewLogRepository,
	codeHost domain.CodeHostGateway,
	ai domain.AIReviewGateway,
	logger *logrus.Logger,
) domain.CommitReviewUseCase {
	return &CommitReviewUseCase{
		missionRepo:   missionRepo,
		prRepo:        prRepo,
		reviewLogRepo: reviewLogRepo,
		codeHost:      codeHost,
		ai:            ai,
		logger:        logger,
	}
}

// ProcessCommit обрабатывает один коммит PR. Шаги выполняются строго по
// порядку, каждый зависит от успеха предыдущего. Ошибки git-хостинга
// прерывают обработку и уходят вызывающему (ретрай — redelivery вебхука
// на стороне GitHub); ошибки модели не прерывают ничего, шлюз отдает
// запасной вердикт, и лог с комментарием публикуются всегда.
func (uc *CommitReviewUseCase) ProcessCommit(ctx context.Context, req domain.CommitReviewRequest) (domain.ProcessCommitResult, error) {
	repoFullName := req.RepoOwner + "/" + req.RepoName

	logEntry := uc.logger.WithFields(logrus.Fields{
		"repo":       repoFullName,
		"pr_number":  req.PrNumber,
		"commit_sha": req.CommitSha,
	})
	logEntry.Info("Processing commit")

	// 1. Ищем миссию по имени репозитория. Отсутствие миссии — не ошибка,
	// а нормальный исход "репозиторий не участвует": ничего не пишем,
	// ничего не комментируем.
	mission, err := uc.missionRepo.GetByRepoName(ctx, repoFullName)
	if err != nil {
		if errors.Is(err, domain.ErrMissionNotFound) {
			logEntry.Warn("Mission not found for repo, skipping")
			return domain.ProcessCommitResult{Success: false}, nil
		}
		return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to resolve mission: %w", err)
	}

	// 2. Находим или создаем PR по уникальному URL (атомарный upsert).
	pr, err := uc.prRepo.UpsertByURL(ctx, &domain.PullRequest{
		MissionID:   mission.ID,
		GithubPrURL: req.PrURL,
		PrNumber:    req.PrNumber,
		Owner:       req.AuthorLogin,
		Status:      domain.PrStatusInProgress,
	})
	if err != nil {
		return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to upsert PR: %w", err)
	}

	// 3. Получаем дифф. Ошибка здесь прерывает обработку до любой записи:
	// ни лога ревью, ни комментария.
	userDiff, err := uc.codeHost.GetPrDiff(ctx, req.RepoOwner, req.RepoName, req.PrNumber)
	if err != nil {
		logEntry.WithError(err).Error("Failed to fetch PR diff")
		return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to fetch diff: %w", err)
	}

	// 4. Запрашиваем вердикт модели. Вызов тотальный: при деградации
	// получаем запасной вердикт, а не ошибку.
	verdict := uc.ai.GenerateCodeReview(ctx, mission.Description, mission.SolutionDiff, userDiff)
	if verdict.Degraded {
		logEntry.WithField("reason", verdict.DegradedReason).Warn("AI review degraded to fallback verdict")
	}

	// 5. Записываем лог ревью безусловно, независимо от вердикта.
	_, err = uc.reviewLogRepo.Create(ctx, &domain.ReviewLog{
		PullRequestID: pr.ID,
		CommitSha:     req.CommitSha,
		UserDiff:      userDiff,
		AiFeedback:    verdict.Feedback,
		IsPassed:      verdict.IsPassed,
	})
	if err != nil {
		return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to create review log: %w", err)
	}

	// 6. Публикуем фидбек комментарием в PR.
	feedbackBody := feedbackHeading + "\n\n" + verdict.Feedback
	if err := uc.codeHost.PostComment(ctx, req.RepoOwner, req.RepoName, req.PrNumber, feedbackBody); err != nil {
		logEntry.WithError(err).Error("Failed to post feedback comment")
		return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to post comment: %w", err)
	}

	// 7. Только при пройденном ревью: итоговая оценка, перевод PR
	// в RESOLVED и второй комментарий. Уже решенный PR не трогаем:
	// повторный пройденный коммит не перезаписывает первую оценку.
	if verdict.IsPassed && pr.Status != domain.PrStatusResolved {
		assessment := uc.ai.GenerateFinalAssessment(ctx, mission.Description, mission.SolutionDiff, userDiff)
		if assessment.Degraded {
			logEntry.WithField("reason", assessment.DegradedReason).Warn("Final assessment degraded to fallback report")
		}

		if _, err := uc.prRepo.Resolve(ctx, pr.ID, assessment.Report); err != nil {
			return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to resolve PR: %w", err)
		}

		if err := uc.codeHost.PostComment(ctx, req.RepoOwner, req.RepoName, req.PrNumber, assessment.Report); err != nil {
			logEntry.WithError(err).Error("Failed to post assessment comment")
			return domain.ProcessCommitResult{Success: false}, fmt.Errorf("failed to post assessment comment: %w", err)
		}

		logEntry.Info("PR passed and resolved")
	}

	return domain.ProcessCommitResult{Success: true}, nil
}
