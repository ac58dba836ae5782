package handler

import (
	"net/http"

	"mission-review-service/api"
	"mission-review-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MissionHandler обрабатывает HTTP-запросы по миссиям
type MissionHandler struct {
	*BaseHandler
	missionUseCase domain.MissionUseCase
}

// NewMissionHandler создает новый экземпляр MissionHandler
func NewMissionHandler(missionUseCase domain.MissionUseCase, logger *logrus.Logger) *MissionHandler {
	return &MissionHandler{
		BaseHandler:    NewBaseHandler(logger),
		missionUseCase: missionUseCase,
	}
}

// GetMissions возвращает список всех миссий
func (h *MissionHandler) GetMissions(c echo.Context) error {
	missions, err := h.missionUseCase.ListMissions(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list missions")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIMissions(missions))
}

// GetMissionsMissionId возвращает миссию по идентификатору
func (h *MissionHandler) GetMissionsMissionId(c echo.Context, missionId int64) error {
	mission, err := h.missionUseCase.GetMission(c.Request().Context(), missionId)
	if err != nil {
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		h.logger.WithError(err).Error("Failed to get mission")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIMission(mission))
}

// PostMissions регистрирует новую миссию
func (h *MissionHandler) PostMissions(c echo.Context) error {
	var req api.PostMissionsJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create mission request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_mission").WithFields(logrus.Fields{
		"repo":  req.RepoName,
		"title": req.Title,
	})
	logEntry.Info("Creating mission")

	mission, err := h.missionUseCase.CreateMission(c.Request().Context(), &domain.Mission{
		RepoName:     req.RepoName,
		Title:        req.Title,
		Description:  req.Description,
		SolutionDiff: req.SolutionDiff,
		ThumbnailURL: req.ThumbnailUrl,
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to create mission")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("mission_id", mission.ID).Info("Mission created")
	return c.JSON(http.StatusCreated, toAPIMission(mission))
}
