package handler

import (
	"net/http"
	"strings"

	"mission-review-service/api"
	"mission-review-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// WebhookHandler принимает события вебхука от GitHub и передает их
// в workflow ревью коммита.
type WebhookHandler struct {
	*BaseHandler
	reviewUseCase domain.CommitReviewUseCase
}

// NewWebhookHandler создает новый экземпляр WebhookHandler.
func NewWebhookHandler(reviewUseCase domain.CommitReviewUseCase, logger *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:   NewBaseHandler(logger),
		reviewUseCase: reviewUseCase,
	}
}

// PostWebhookGithub обрабатывает событие pull_request. Реагируем только
// на opened и synchronize, остальные действия подтверждаем и игнорируем.
// Ошибка обработки возвращает 500: ретрай делает redelivery на стороне GitHub.
func (h *WebhookHandler) PostWebhookGithub(c echo.Context) error {
	var payload api.PostWebhookGithubJSONBody
	if err := c.Bind(&payload); err != nil {
		h.logger.WithError(err).Warn("Failed to bind webhook payload")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_WEBHOOK", err.Error()))
	}

	logEntry := h.logRequest(c, "webhook_github").WithFields(logrus.Fields{
		"action":    payload.Action,
		"repo":      payload.Repository.FullName,
		"pr_number": payload.Number,
	})

	// Чужие действия подтверждаем до валидации остальных полей:
	// их payload мы все равно не читаем
	if payload.Action != "" && payload.Action != "opened" && payload.Action != "synchronize" {
		logEntry.Info("Ignoring pull_request action")
		return c.JSON(http.StatusOK, api.WebhookResponse{Message: "Ignored " + payload.Action + " action"})
	}

	// Валидация до любых побочных эффектов
	if payload.Action == "" || payload.Repository.FullName == "" || payload.Number <= 0 ||
		payload.PullRequest.HtmlUrl == "" || payload.PullRequest.User.Login == "" ||
		payload.PullRequest.Head.Sha == "" {
		logEntry.Warn("Webhook payload is missing required fields")
		return c.JSON(http.StatusBadRequest, toAPIErrorResponse(domain.ErrorMapping[domain.ErrInvalidWebhook]))
	}

	parts := strings.Split(payload.Repository.FullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		logEntry.Warn("Malformed repository full name")
		return c.JSON(http.StatusBadRequest, toAPIErrorResponse(domain.ErrorMapping[domain.ErrInvalidRepoName]))
	}

	result, err := h.reviewUseCase.ProcessCommit(c.Request().Context(), domain.CommitReviewRequest{
		RepoOwner:   parts[0],
		RepoName:    parts[1],
		PrNumber:    payload.Number,
		PrURL:       payload.PullRequest.HtmlUrl,
		AuthorLogin: payload.PullRequest.User.Login,
		CommitSha:   payload.PullRequest.Head.Sha,
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to process commit")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	if !result.Success {
		// Репозиторий не участвует в миссиях: подтверждаем доставку
		return c.JSON(http.StatusOK, api.WebhookResponse{Message: "Repository is not participating in any mission"})
	}

	logEntry.Info("Webhook processed")
	return c.JSON(http.StatusOK, api.WebhookResponse{Message: "Processed pull_request event"})
}
