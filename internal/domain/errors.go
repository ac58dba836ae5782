package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidRepoName    = errors.New("invalid repo name, expected 'owner/repo'")
	ErrInvalidMissionData = errors.New("invalid mission data")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidWebhook     = errors.New("invalid webhook payload")

	// Mission errors
	ErrMissionNotFound      = errors.New("mission not found")
	ErrMissionAlreadyExists = errors.New("mission repo already registered")

	// PR errors
	ErrPRNotFound = errors.New("pull request not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidRepoName:      {Code: "INVALID_REPO_NAME", Message: "repo name must be 'owner/repo'"},
	ErrInvalidMissionData:   {Code: "INVALID_MISSION", Message: "mission data is invalid"},
	ErrInvalidUserData:      {Code: "INVALID_USER", Message: "user data is invalid"},
	ErrInvalidWebhook:       {Code: "INVALID_WEBHOOK", Message: "webhook payload is invalid"},
	ErrMissionNotFound:      {Code: "NOT_FOUND", Message: "mission not found"},
	ErrMissionAlreadyExists: {Code: "MISSION_EXISTS", Message: "repo_name already registered"},
	ErrPRNotFound:           {Code: "NOT_FOUND", Message: "pull request not found"},
	ErrUserNotFound:         {Code: "NOT_FOUND", Message: "user not found"},
	ErrUserAlreadyExists:    {Code: "USER_EXISTS", Message: "email already registered"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	httpErr, exists := ErrorMapping[err]
	return httpErr, exists
}
