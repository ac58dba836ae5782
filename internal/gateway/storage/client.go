package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mission-review-service/internal/domain"
)

// Config описывает параметры бакет-хранилища с HTTP API.
type Config struct {
	Endpoint  string
	Bucket    string
	Token     string
	PublicURL string
}

// Client реализует domain.ObjectStorage: прокидывает файл в бакет
// и возвращает публичный URL. Никакой другой логики у хранилища нет.
type Client struct {
	cfg     Config
	httpCli *http.Client
}

// NewClient создает клиент объектного хранилища.
func NewClient(cfg Config) (domain.ObjectStorage, error) {
	if cfg.Endpoint == "" || cfg.Token == "" {
		return nil, fmt.Errorf("storage endpoint and token must be configured")
	}
	return &Client{
		cfg:     cfg,
		httpCli: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Disabled подставляется вместо клиента, когда хранилище не сконфигурировано:
// сервис работает, а загрузка файлов отвечает ошибкой.
type Disabled struct{}

func NewDisabled() domain.ObjectStorage {
	return &Disabled{}
}

func (d *Disabled) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	return "", fmt.Errorf("object storage is not configured")
}

// Upload кладет объект в бакет по ключу и возвращает публичный URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	url := fmt.Sprintf("%s/object/%s/%s", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage error (status %d): %s", resp.StatusCode, string(body))
	}

	publicBase := c.cfg.PublicURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("%s/object/public/%s", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Bucket)
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(publicBase, "/"), key), nil
}
