package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// geminiStub поднимает httptest-сервер, отвечающий заданным текстом
// в формате generateContent.
func geminiStub(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": responseText}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(t *testing.T, apiURL string) *Client {
	t.Helper()
	gw, err := NewClient(Config{APIKey: "test-key", APIURL: apiURL}, newTestLogger())
	require.NoError(t, err)
	return gw.(*Client)
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	_, err := NewClient(Config{}, newTestLogger())
	assert.Error(t, err)
}

func TestGenerateCodeReview_PassedVerdict(t *testing.T) {
	srv := geminiStub(t, `{"isPassed": true, "feedback": "Отличное решение"}`)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	verdict := client.GenerateCodeReview(context.Background(), "desc", "solution", "user diff")

	assert.True(t, verdict.IsPassed)
	assert.Equal(t, "Отличное решение", verdict.Feedback)
	assert.False(t, verdict.Degraded)
}

func TestGenerateCodeReview_StripsCodeFences(t *testing.T) {
	srv := geminiStub(t, "```json\n{\"isPassed\": false, \"feedback\": \"Есть замечания\"}\n```")
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	verdict := client.GenerateCodeReview(context.Background(), "desc", "solution", "user diff")

	assert.False(t, verdict.IsPassed)
	assert.Equal(t, "Есть замечания", verdict.Feedback)
	assert.False(t, verdict.Degraded)
}

func TestGenerateCodeReview_APIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	verdict := client.GenerateCodeReview(context.Background(), "desc", "solution", "user diff")

	assert.False(t, verdict.IsPassed)
	assert.Equal(t, fallbackFeedback, verdict.Feedback)
	assert.True(t, verdict.Degraded)
	assert.NotEmpty(t, verdict.DegradedReason)
}

func TestGenerateCodeReview_MalformedJSONFallsBack(t *testing.T) {
	srv := geminiStub(t, "это не JSON")
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	verdict := client.GenerateCodeReview(context.Background(), "desc", "solution", "user diff")

	assert.False(t, verdict.IsPassed)
	assert.Equal(t, fallbackFeedback, verdict.Feedback)
	assert.True(t, verdict.Degraded)
}

func TestGenerateFinalAssessment_ReturnsReport(t *testing.T) {
	srv := geminiStub(t, "# Итоговая оценка кода\n\nХорошая работа.")
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	report := client.GenerateFinalAssessment(context.Background(), "desc", "solution", "user diff")

	assert.Equal(t, "# Итоговая оценка кода\n\nХорошая работа.", report.Report)
	assert.False(t, report.Degraded)
}

func TestGenerateFinalAssessment_APIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	report := client.GenerateFinalAssessment(context.Background(), "desc", "solution", "user diff")

	assert.Equal(t, fallbackReport, report.Report)
	assert.True(t, report.Degraded)
	assert.NotEmpty(t, report.DegradedReason)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"isPassed": true}`, stripCodeFences("```json\n{\"isPassed\": true}\n```"))
	assert.Equal(t, `{"isPassed": true}`, stripCodeFences(`{"isPassed": true}`))
}
