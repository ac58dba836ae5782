package handler

import (
	"net/http"

	"mission-review-service/api"
	"mission-review-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы по пользователям
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// GetUsers возвращает всех пользователей
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIUsers(users))
}

// GetUsersUserId возвращает пользователя по идентификатору
func (h *UserHandler) GetUsersUserId(c echo.Context, userId int64) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), userId)
	if err != nil {
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		h.logger.WithError(err).Error("Failed to get user")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIUser(user))
}

// PostUsers регистрирует нового пользователя
func (h *UserHandler) PostUsers(c echo.Context) error {
	var req api.PostUsersJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_user").WithField("email", req.Email)
	logEntry.Info("Creating user")

	user, err := h.userUseCase.CreateUser(c.Request().Context(), req.Email, req.Username)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create user")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusCreated, toAPIUser(user))
}

// PostUsersUserIdFork создает форк репозитория миссии от имени пользователя
func (h *UserHandler) PostUsersUserIdFork(c echo.Context, userId int64) error {
	var req api.PostUsersUserIdForkJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind fork request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "fork_mission_repo").WithFields(logrus.Fields{
		"user_id":    userId,
		"mission_id": req.MissionId,
	})
	logEntry.Info("Forking mission repo")

	forkURL, err := h.userUseCase.ForkMissionRepo(c.Request().Context(), req.GithubToken, req.MissionId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to fork mission repo")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("fork_url", forkURL).Info("Mission repo forked")
	return c.JSON(http.StatusCreated, api.ForkResponse{ForkUrl: forkURL})
}

// GetUsersUserIdMissionStatus проверяет, смержен ли последний PR
// в форке миссии у пользователя
func (h *UserHandler) GetUsersUserIdMissionStatus(c echo.Context, userId int64, params api.GetUsersUserIdMissionStatusParams) error {
	logEntry := h.logRequest(c, "check_mission_status").WithFields(logrus.Fields{
		"user_id":    userId,
		"mission_id": params.MissionId,
	})

	status, err := h.userUseCase.CheckMissionStatus(c.Request().Context(), params.XGithubToken, userId, params.MissionId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to check mission status")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("is_merged", status.IsMerged).Info("Mission status checked")
	return c.JSON(http.StatusOK, api.MissionStatusResponse{
		IsMerged: status.IsMerged,
		PrUrl:    status.PrURL,
	})
}
