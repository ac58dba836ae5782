package usecase_test

import (
	"context"

	"mission-review-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев и шлюзов в стиле testify/mock.

type MissionRepository struct {
	mock.Mock
}

func (m *MissionRepository) Create(ctx context.Context, mission *domain.Mission) (*domain.Mission, error) {
	args := m.Called(ctx, mission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MissionRepository) GetByID(ctx context.Context, missionID int64) (*domain.Mission, error) {
	args := m.Called(ctx, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MissionRepository) GetByRepoName(ctx context.Context, repoName string) (*domain.Mission, error) {
	args := m.Called(ctx, repoName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MissionRepository) GetAll(ctx context.Context) ([]*domain.Mission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Mission), args.Error(1)
}

func (m *MissionRepository) ExistsByRepoName(ctx context.Context, repoName string) (bool, error) {
	args := m.Called(ctx, repoName)
	return args.Bool(0), args.Error(1)
}

type PullRequestRepository struct {
	mock.Mock
}

func (m *PullRequestRepository) UpsertByURL(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
	args := m.Called(ctx, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PullRequestRepository) GetByURL(ctx context.Context, prURL string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PullRequestRepository) GetByID(ctx context.Context, prID int64) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PullRequestRepository) GetByMission(ctx context.Context, missionID int64) ([]*domain.PullRequest, error) {
	args := m.Called(ctx, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PullRequest), args.Error(1)
}

func (m *PullRequestRepository) Resolve(ctx context.Context, prID int64, finalAssessment string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID, finalAssessment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

type ReviewLogRepository struct {
	mock.Mock
}

func (m *ReviewLogRepository) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewLog), args.Error(1)
}

func (m *ReviewLogRepository) GetByPullRequest(ctx context.Context, prID int64) ([]*domain.ReviewLog, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewLog), args.Error(1)
}

func (m *ReviewLogRepository) CountByPullRequest(ctx context.Context, prID int64) (int64, error) {
	args := m.Called(ctx, prID)
	return args.Get(0).(int64), args.Error(1)
}

type CodeHostGateway struct {
	mock.Mock
}

func (m *CodeHostGateway) GetPrDiff(ctx context.Context, owner, repo string, prNumber int) (string, error) {
	args := m.Called(ctx, owner, repo, prNumber)
	return args.String(0), args.Error(1)
}

func (m *CodeHostGateway) PostComment(ctx context.Context, owner, repo string, prNumber int, body string) error {
	args := m.Called(ctx, owner, repo, prNumber, body)
	return args.Error(0)
}

func (m *CodeHostGateway) GetRepoInfo(ctx context.Context, repoName string) (*domain.RepoInfo, error) {
	args := m.Called(ctx, repoName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepoInfo), args.Error(1)
}

func (m *CodeHostGateway) ForkRepo(ctx context.Context, userToken, repoName string) (string, error) {
	args := m.Called(ctx, userToken, repoName)
	return args.String(0), args.Error(1)
}

func (m *CodeHostGateway) GetLatestPrStatus(ctx context.Context, userToken, repoName string) (*domain.PrStatusInfo, error) {
	args := m.Called(ctx, userToken, repoName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrStatusInfo), args.Error(1)
}

type AIReviewGateway struct {
	mock.Mock
}

func (m *AIReviewGateway) GenerateCodeReview(ctx context.Context, missionDesc, solutionDiff, userDiff string) domain.ReviewVerdict {
	args := m.Called(ctx, missionDesc, solutionDiff, userDiff)
	return args.Get(0).(domain.ReviewVerdict)
}

func (m *AIReviewGateway) GenerateFinalAssessment(ctx context.Context, missionDesc, solutionDiff, userDiff string) domain.AssessmentReport {
	args := m.Called(ctx, missionDesc, solutionDiff, userDiff)
	return args.Get(0).(domain.AssessmentReport)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}
