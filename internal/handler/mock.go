package handler

import (
	"net/http"

	"mission-review-service/api"

	"github.com/labstack/echo/v4"
)

// MockHandler отдает фиксированные ответы для разработки фронтенда.
// Демо-значения живут только здесь, ядро сервиса их не читает.
type MockHandler struct{}

// NewMockHandler создает новый экземпляр MockHandler
func NewMockHandler() *MockHandler {
	return &MockHandler{}
}

// GetMocksAiFeedback возвращает пример фидбека ревью
func (h *MockHandler) GetMocksAiFeedback(c echo.Context) error {
	return c.JSON(http.StatusOK, api.MockAiFeedback{
		IsPassed: false,
		Feedback: "В целом решение выглядит хорошо, но обработки ошибок недостаточно. Добавьте проверку возвращаемых ошибок и обработку граничных случаев.",
	})
}

// GetMocksDiff возвращает пример диффа
func (h *MockHandler) GetMocksDiff(c echo.Context) error {
	return c.JSON(http.StatusOK, api.MockDiff{
		Diff: `diff --git a/internal/service/greeting.go b/internal/service/greeting.go
index 548c894..4776100 100644
--- a/internal/service/greeting.go
+++ b/internal/service/greeting.go
@@ -1,7 +1,7 @@
 package service

 func Greeting() string {
-	return "Hello World!"
+	return "Hello Mission!"
 }`,
	})
}

// GetMocksWorkflowBotNotInstalled возвращает статус "бот не установлен"
func (h *MockHandler) GetMocksWorkflowBotNotInstalled(c echo.Context) error {
	return c.JSON(http.StatusOK, api.MockWorkflowStatus{
		Status:  "NOT_INSTALLED",
		Message: "GitHub App еще не установлен. Установите бота и повторите попытку.",
	})
}

// GetMocksWorkflowPrPending возвращает статус "ревью идет"
func (h *MockHandler) GetMocksWorkflowPrPending(c echo.Context) error {
	return c.JSON(http.StatusOK, api.MockWorkflowStatus{
		Status:  "IN_PROGRESS",
		Message: "PR создан, AI-ревью выполняется.",
	})
}

// GetMocksWorkflowPrCompleted возвращает статус "миссия пройдена"
func (h *MockHandler) GetMocksWorkflowPrCompleted(c echo.Context) error {
	return c.JSON(http.StatusOK, api.MockWorkflowStatus{
		Status: "RESOLVED",
		FinalAssessment: `# Итоговая оценка кода

## Сильные стороны
- Код лаконичный и хорошо читается.
- Соглашения об именовании соблюдены.

## Слабые стороны
- В части функций не хватает обработки ошибок.

## Заключение
Отличная работа! Ждем вас на следующей миссии.`,
	})
}
