package handler

import (
	"mission-review-service/api"
	"mission-review-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*WebhookHandler
	*MissionHandler
	*UserHandler
	*FilesHandler
	*MockHandler
}

func NewAPIHandler(
	reviewUseCase domain.CommitReviewUseCase,
	missionUseCase domain.MissionUseCase,
	userUseCase domain.UserUseCase,
	storage domain.ObjectStorage,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		WebhookHandler: NewWebhookHandler(reviewUseCase, logger),
		MissionHandler: NewMissionHandler(missionUseCase, logger),
		UserHandler:    NewUserHandler(userUseCase, logger),
		FilesHandler:   NewFilesHandler(storage, logger),
		MockHandler:    NewMockHandler(),
	}
}
