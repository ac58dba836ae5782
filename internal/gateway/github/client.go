package github

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

// Config описывает параметры подключения к API git-хостинга.
// App-авторизация используется, когда заданы все три значения AppID,
// InstallationID и PrivateKeyBase64; иначе — статический токен.
type Config struct {
	APIURL           string
	Token            string
	AppID            string
	InstallationID   string
	PrivateKeyBase64 string
}

// Client реализует domain.CodeHostGateway поверх GitHub REST API.
// Режим авторизации разрешается один раз в конструкторе; ленивой
// переинициализации в методах нет.
type Client struct {
	apiURL  string
	tokens  tokenSource
	httpCli *http.Client
	logger  *logrus.Logger
}

// NewClient создает клиент с уже разрешенным режимом авторизации.
// Ошибка конфигурации (битый ключ, пустой токен) всплывает сразу,
// на старте сервиса, а не при первом вызове.
func NewClient(cfg Config, logger *logrus.Logger) (domain.CodeHostGateway, error) {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}

	httpCli := &http.Client{Timeout: 60 * time.Second}

	var tokens tokenSource
	if cfg.AppID != "" && cfg.InstallationID != "" && cfg.PrivateKeyBase64 != "" {
		logger.Info("Initializing GitHub App authentication")
		src, err := newInstallationTokenSource(cfg.AppID, cfg.InstallationID, cfg.PrivateKeyBase64, apiURL, httpCli)
		if err != nil {
			return nil, fmt.Errorf("github app auth: %w", err)
		}
		tokens = src
	} else {
		if cfg.Token == "" {
			return nil, fmt.Errorf("github auth: neither app credentials nor token configured")
		}
		logger.Info("Initializing GitHub token authentication (PAT)")
		tokens = &staticTokenSource{token: cfg.Token}
	}

	return &Client{
		apiURL:  apiURL,
		tokens:  tokens,
		httpCli: httpCli,
		logger:  logger,
	}, nil
}

// GetPrDiff возвращает дифф пул-реквеста как текст.
func (c *Client) GetPrDiff(ctx context.Context, owner, repo string, prNumber int) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d", c.apiURL, owner, repo, prNumber)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	body, err := c.doRaw(ctx, http.MethodGet, url, token, "application/vnd.github.v3.diff", nil)
	if err != nil {
		c.logger.WithError(err).Errorf("Failed to get PR diff for %s/%s #%d", owner, repo, prNumber)
		return "", err
	}
	return string(body), nil
}

// PostComment публикует issue-комментарий в треде пул-реквеста.
func (c *Client) PostComment(ctx context.Context, owner, repo string, prNumber int, body string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", c.apiURL, owner, repo, prNumber)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return fmt.Errorf("marshaling comment: %w", err)
	}

	if _, err := c.doRaw(ctx, http.MethodPost, url, token, "application/vnd.github+json", payload); err != nil {
		c.logger.WithError(err).Errorf("Failed to post comment to %s/%s #%d", owner, repo, prNumber)
		return err
	}

	c.logger.Infof("Comment posted to %s/%s #%d", owner, repo, prNumber)
	return nil
}

// GetRepoInfo возвращает описание репозитория и аватар владельца
// в качестве превью.
func (c *Client) GetRepoInfo(ctx context.Context, repoName string) (*domain.RepoInfo, error) {
	owner, repo, err := splitRepoName(repoName)
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/repos/%s/%s", c.apiURL, owner, repo)
	body, err := c.doRaw(ctx, http.MethodGet, url, token, "application/vnd.github+json", nil)
	if err != nil {
		c.logger.WithError(err).Errorf("Failed to get repo info for %s", repoName)
		return nil, err
	}

	var result struct {
		Description string `json:"description"`
		Owner       struct {
			AvatarURL string `json:"avatar_url"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing repo response: %w", err)
	}

	return &domain.RepoInfo{
		Description:  result.Description,
		ThumbnailURL: result.Owner.AvatarURL,
	}, nil
}

// ForkRepo создает форк репозитория по токену самого пользователя:
// операция выполняется от его имени, а не от сервисной учетки.
func (c *Client) ForkRepo(ctx context.Context, userToken, repoName string) (string, error) {
	owner, repo, err := splitRepoName(repoName)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/forks", c.apiURL, owner, repo)
	body, err := c.doRaw(ctx, http.MethodPost, url, userToken, "application/vnd.github+json", nil)
	if err != nil {
		c.logger.WithError(err).Errorf("Failed to fork %s", repoName)
		return "", err
	}

	var result struct {
		HTMLURL string `json:"html_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing fork response: %w", err)
	}

	c.logger.Infof("Forked %s: %s", repoName, result.HTMLURL)
	return result.HTMLURL, nil
}

// GetLatestPrStatus проверяет состояние последнего PR в репозитории
// пользователя. Ошибки не всплывают: при любой проблеме возвращается
// "не смержен", как это делает onboarding-флоу.
func (c *Client) GetLatestPrStatus(ctx context.Context, userToken, repoName string) (*domain.PrStatusInfo, error) {
	owner, repo, err := splitRepoName(repoName)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/pulls?state=all&per_page=1", c.apiURL, owner, repo)
	body, err := c.doRaw(ctx, http.MethodGet, url, userToken, "application/vnd.github+json", nil)
	if err != nil {
		c.logger.WithError(err).Errorf("Failed to check PR status for %s", repoName)
		return &domain.PrStatusInfo{IsMerged: false}, nil
	}

	var pulls []struct {
		HTMLURL  string     `json:"html_url"`
		MergedAt *time.Time `json:"merged_at"`
	}
	if err := json.Unmarshal(body, &pulls); err != nil {
		return &domain.PrStatusInfo{IsMerged: false}, nil
	}

	if len(pulls) == 0 {
		return &domain.PrStatusInfo{IsMerged: false}, nil
	}

	return &domain.PrStatusInfo{
		IsMerged: pulls[0].MergedAt != nil,
		PrURL:    pulls[0].HTMLURL,
	}, nil
}

// doRaw выполняет запрос и классифицирует ответ по статус-коду.
// Транспортные ошибки не детализируются дальше — они уходят вызывающему.
func (c *Client) doRaw(ctx context.Context, method, url, token, accept string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", accept)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("not found: %s", url)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("authentication failed (status %d): %s", resp.StatusCode, string(body))
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// splitRepoName разбирает строку "owner/repo", падая сразу на битом формате.
func splitRepoName(repoName string) (string, string, error) {
	parts := strings.Split(repoName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domain.ErrInvalidRepoName
	}
	return parts[0], parts[1], nil
}
