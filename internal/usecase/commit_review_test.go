package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"mission-review-service/internal/domain"
	"mission-review-service/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRequest() domain.CommitReviewRequest {
	return domain.CommitReviewRequest{
		RepoOwner:   "acme",
		RepoName:    "widget",
		PrNumber:    7,
		PrURL:       "https://github.com/acme/widget/pull/7",
		AuthorLogin: "student",
		CommitSha:   "abc123",
	}
}

func testMission() *domain.Mission {
	return &domain.Mission{
		ID:           1,
		RepoName:     "acme/widget",
		Title:        "Widget",
		Description:  "Implement X",
		SolutionDiff: "solution diff",
	}
}

func testPR() *domain.PullRequest {
	return &domain.PullRequest{
		ID:          10,
		MissionID:   1,
		GithubPrURL: "https://github.com/acme/widget/pull/7",
		PrNumber:    7,
		Owner:       "student",
		Status:      domain.PrStatusInProgress,
	}
}

func TestProcessCommit_PassedFullFlow(t *testing.T) {
	// Setup
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	mission := testMission()
	pr := testPR()

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(mission, nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(pr, nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, "Implement X", "solution diff", "user diff").
		Return(domain.ReviewVerdict{IsPassed: true, Feedback: "Great job"})
	reviewLogRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.ReviewLog) bool {
		return log.PullRequestID == 10 && log.CommitSha == "abc123" && log.IsPassed && log.AiFeedback == "Great job"
	})).Return(&domain.ReviewLog{ID: 100}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, "## AI Code Review Feedback\n\nGreat job").Return(nil)
	ai.On("GenerateFinalAssessment", ctx, "Implement X", "solution diff", "user diff").
		Return(domain.AssessmentReport{Report: "# Report..."})
	prRepo.On("Resolve", ctx, int64(10), "# Report...").Return(&domain.PullRequest{ID: 10, Status: domain.PrStatusResolved}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, "# Report...").Return(nil)

	// Execute
	result, err := uc.ProcessCommit(ctx, testRequest())

	// Assert: пройденное ревью дает лог, RESOLVED и два комментария по порядку
	assert.NoError(t, err)
	assert.True(t, result.Success)

	missionRepo.AssertExpectations(t)
	prRepo.AssertExpectations(t)
	reviewLogRepo.AssertExpectations(t)
	codeHost.AssertExpectations(t)
	ai.AssertExpectations(t)
	codeHost.AssertNumberOfCalls(t, "PostComment", 2)
}

func TestProcessCommit_FailedVerdict_SingleComment(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(testPR(), nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ReviewVerdict{IsPassed: false, Feedback: "Not quite"})
	reviewLogRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.ReviewLog) bool {
		return !log.IsPassed
	})).Return(&domain.ReviewLog{ID: 101}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, "## AI Code Review Feedback\n\nNot quite").Return(nil)

	result, err := uc.ProcessCommit(ctx, testRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)

	// Непройденное ревью: ровно один комментарий, без Resolve и без оценки
	codeHost.AssertNumberOfCalls(t, "PostComment", 1)
	prRepo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	ai.AssertNotCalled(t, "GenerateFinalAssessment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCommit_MissionNotFound_NoSideEffects(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(nil, domain.ErrMissionNotFound)

	result, err := uc.ProcessCommit(ctx, testRequest())

	// "Не участвует" — не ошибка, но и никаких побочных эффектов
	assert.NoError(t, err)
	assert.False(t, result.Success)

	prRepo.AssertNotCalled(t, "UpsertByURL", mock.Anything, mock.Anything)
	reviewLogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	codeHost.AssertNotCalled(t, "GetPrDiff", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	codeHost.AssertNotCalled(t, "PostComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCommit_DiffFetchFails_NothingWritten(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(testPR(), nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("", errors.New("rate limited"))

	result, err := uc.ProcessCommit(ctx, testRequest())

	// Ошибка диффа прерывает обработку строго до записи лога и комментария
	assert.Error(t, err)
	assert.False(t, result.Success)

	ai.AssertNotCalled(t, "GenerateCodeReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	reviewLogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	codeHost.AssertNotCalled(t, "PostComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCommit_DegradedVerdict_LogAndCommentStillHappen(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	fallback := domain.ReviewVerdict{
		IsPassed:       false,
		Feedback:       "AI-сервис ревью временно недоступен. Пожалуйста, попробуйте позже.",
		Degraded:       true,
		DegradedReason: "model unreachable",
	}

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(testPR(), nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, mock.Anything, mock.Anything, mock.Anything).Return(fallback)
	reviewLogRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.ReviewLog) bool {
		return !log.IsPassed && log.AiFeedback == fallback.Feedback
	})).Return(&domain.ReviewLog{ID: 102}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, mock.AnythingOfType("string")).Return(nil)

	result, err := uc.ProcessCommit(ctx, testRequest())

	// Деградация модели не прерывает workflow: лог и комментарий на месте
	assert.NoError(t, err)
	assert.True(t, result.Success)
	reviewLogRepo.AssertExpectations(t)
	codeHost.AssertNumberOfCalls(t, "PostComment", 1)
}

func TestProcessCommit_CommentPostFails_ErrorPropagates(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(testPR(), nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ReviewVerdict{IsPassed: false, Feedback: "Not quite"})
	reviewLogRepo.On("Create", ctx, mock.Anything).Return(&domain.ReviewLog{ID: 103}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, mock.AnythingOfType("string")).
		Return(errors.New("403 forbidden"))

	result, err := uc.ProcessCommit(ctx, testRequest())

	// Лог уже записан, но ошибка комментария уходит вызывающему
	assert.Error(t, err)
	assert.False(t, result.Success)
	reviewLogRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestProcessCommit_RedeliveryOnResolvedPR_AppendsLog(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	// Upsert возвращает уже решенный PR: дедупликации по коммиту нет,
	// дифф и вердикт запрашиваются снова, лог добавляется
	resolvedPR := testPR()
	resolvedPR.Status = domain.PrStatusResolved
	resolvedPR.FinalAssessment = "# Report..."

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(resolvedPR, nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ReviewVerdict{IsPassed: false, Feedback: "Regression hint"})
	reviewLogRepo.On("Create", ctx, mock.Anything).Return(&domain.ReviewLog{ID: 104}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, mock.AnythingOfType("string")).Return(nil)

	result, err := uc.ProcessCommit(ctx, testRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	reviewLogRepo.AssertNumberOfCalls(t, "Create", 1)
	// Статус не трогаем: Resolve вызывается только на пройденном вердикте
	prRepo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCommit_RepeatPassOnResolvedPR_KeepsFirstAssessment(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	// RESOLVED — липкий статус: повторный пройденный коммит добавляет лог
	// и фидбек-комментарий, но не генерирует новую оценку и не перезаписывает старую
	resolvedPR := testPR()
	resolvedPR.Status = domain.PrStatusResolved
	resolvedPR.FinalAssessment = "# First report"

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(resolvedPR, nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ReviewVerdict{IsPassed: true, Feedback: "Still great"})
	reviewLogRepo.On("Create", ctx, mock.Anything).Return(&domain.ReviewLog{ID: 105}, nil)
	codeHost.On("PostComment", ctx, "acme", "widget", 7, mock.AnythingOfType("string")).Return(nil)

	result, err := uc.ProcessCommit(ctx, testRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	reviewLogRepo.AssertNumberOfCalls(t, "Create", 1)
	codeHost.AssertNumberOfCalls(t, "PostComment", 1)
	ai.AssertNotCalled(t, "GenerateFinalAssessment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	prRepo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCommit_ReviewLogCreateFails(t *testing.T) {
	ctx := context.Background()
	missionRepo := &MissionRepository{}
	prRepo := &PullRequestRepository{}
	reviewLogRepo := &ReviewLogRepository{}
	codeHost := &CodeHostGateway{}
	ai := &AIReviewGateway{}
	uc := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, codeHost, ai, newTestLogger())

	missionRepo.On("GetByRepoName", ctx, "acme/widget").Return(testMission(), nil)
	prRepo.On("UpsertByURL", ctx, mock.AnythingOfType("*domain.PullRequest")).Return(testPR(), nil)
	codeHost.On("GetPrDiff", ctx, "acme", "widget", 7).Return("user diff", nil)
	ai.On("GenerateCodeReview", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ReviewVerdict{IsPassed: true, Feedback: "Great"})
	reviewLogRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

	result, err := uc.ProcessCommit(ctx, testRequest())

	assert.Error(t, err)
	assert.False(t, result.Success)
	codeHost.AssertNotCalled(t, "PostComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
