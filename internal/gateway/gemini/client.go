package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mission-review-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// Config описывает параметры подключения к Gemini API.
type Config struct {
	APIKey string
	Model  string
	APIURL string
}

// Client реализует domain.AIReviewGateway поверх Gemini generateContent API.
// Это единственное место, где ненадежная внешняя зависимость превращается
// в тотальную функцию: оба метода всегда возвращают результат, при ошибке —
// запасной, с пометкой Degraded для наблюдаемости.
type Client struct {
	apiKey  string
	model   string
	apiURL  string
	httpCli *http.Client
	logger  *logrus.Logger
}

// NewClient создает клиент Gemini. Отсутствие ключа — дефект деплоя,
// поэтому ошибка поднимается сразу, а не деградирует при первом вызове.
func NewClient(cfg Config, logger *logrus.Logger) (domain.AIReviewGateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		apiURL:  apiURL,
		httpCli: &http.Client{Timeout: 120 * time.Second},
		logger:  logger,
	}, nil
}

// GenerateCodeReview сравнивает дифф пользователя с эталонным решением
// и возвращает вердикт. Любая ошибка (сеть, битый JSON) превращается
// в запасной вердикт isPassed=false.
func (c *Client) GenerateCodeReview(ctx context.Context, missionDesc, solutionDiff, userDiff string) domain.ReviewVerdict {
	c.logger.Info("Requesting Gemini code review")

	text, err := c.generateContent(ctx, buildCodeReviewPrompt(missionDesc, solutionDiff, userDiff))
	if err != nil {
		c.logger.WithError(err).Error("Gemini code review failed")
		return degradedVerdict(err)
	}

	var parsed struct {
		IsPassed bool   `json:"isPassed"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &parsed); err != nil {
		c.logger.WithError(err).Error("Failed to parse Gemini verdict JSON")
		return degradedVerdict(err)
	}

	return domain.ReviewVerdict{
		IsPassed: parsed.IsPassed,
		Feedback: parsed.Feedback,
	}
}

// GenerateFinalAssessment формирует итоговый markdown-отчет по пройденной
// миссии. При ошибке возвращается фиксированный запасной отчет.
func (c *Client) GenerateFinalAssessment(ctx context.Context, missionDesc, solutionDiff, userDiff string) domain.AssessmentReport {
	c.logger.Info("Requesting Gemini final assessment")

	text, err := c.generateContent(ctx, buildFinalAssessmentPrompt(missionDesc, solutionDiff, userDiff))
	if err != nil {
		c.logger.WithError(err).Error("Gemini final assessment failed")
		return domain.AssessmentReport{
			Report:         fallbackReport,
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}

	return domain.AssessmentReport{Report: text}
}

func degradedVerdict(err error) domain.ReviewVerdict {
	return domain.ReviewVerdict{
		IsPassed:       false,
		Feedback:       fallbackFeedback,
		Degraded:       true,
		DegradedReason: err.Error(),
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// stripCodeFences снимает обертку ```json ... ```, которой модель иногда
// оборачивает ответ вопреки инструкции.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
