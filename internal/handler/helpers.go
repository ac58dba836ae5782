package handler

import (
	"net/http"

	"mission-review-service/api"
	"mission-review-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIMission(mission *domain.Mission) api.Mission {
	// Эталонный дифф решения наружу не отдается
	return api.Mission{
		Id:           mission.ID,
		RepoName:     mission.RepoName,
		Title:        mission.Title,
		Description:  mission.Description,
		ThumbnailUrl: mission.ThumbnailURL,
	}
}

func toAPIMissions(missions []*domain.Mission) []api.Mission {
	result := make([]api.Mission, len(missions))
	for i, mission := range missions {
		result[i] = toAPIMission(mission)
	}
	return result
}

func toAPIUser(user *domain.User) api.User {
	return api.User{
		Id:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

func toAPIUsers(users []*domain.User) []api.User {
	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return result
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch err {
	// Conflict errors (409)
	case domain.ErrMissionAlreadyExists, domain.ErrUserAlreadyExists:
		return http.StatusConflict

	// Not Found errors (404)
	case domain.ErrMissionNotFound, domain.ErrPRNotFound, domain.ErrUserNotFound:
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case domain.ErrInvalidRepoName, domain.ErrInvalidMissionData,
		domain.ErrInvalidUserData, domain.ErrInvalidWebhook:
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
