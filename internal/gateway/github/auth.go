package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenSource выдает актуальный токен авторизации для запросов к API.
type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

// staticTokenSource — режим статического personal access token.
type staticTokenSource struct {
	token string
}

func (s *staticTokenSource) Token(ctx context.Context) (string, error) {
	return s.token, nil
}

// installationTokenSource — режим GitHub App: подписываем RS256 JWT от имени
// приложения и обмениваем его на короткоживущий installation-токен.
// Токен кэшируется и обновляется незадолго до истечения.
type installationTokenSource struct {
	appID          string
	installationID string
	privateKey     any
	apiURL         string
	httpCli        *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newInstallationTokenSource(appID, installationID, privateKeyBase64, apiURL string, httpCli *http.Client) (*installationTokenSource, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("decoding private key base64: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}

	return &installationTokenSource{
		appID:          appID,
		installationID: installationID,
		privateKey:     key,
		apiURL:         apiURL,
		httpCli:        httpCli,
	}, nil
}

func (s *installationTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Until(s.expiresAt) > time.Minute {
		return s.token, nil
	}

	appJWT, err := s.signAppJWT()
	if err != nil {
		return "", err
	}

	token, expiresAt, err := s.exchange(ctx, appJWT)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiresAt = expiresAt
	return s.token, nil
}

func (s *installationTokenSource) signAppJWT() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		// Небольшой сдвиг назад страхует от расхождения часов с GitHub.
		IssuedAt:  jwt.NewNumericDate(now.Add(-30 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(9 * time.Minute)),
		Issuer:    s.appID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("signing app JWT: %w", err)
	}
	return signed, nil
}

func (s *installationTokenSource) exchange(ctx context.Context, appJWT string) (string, time.Time, error) {
	url := fmt.Sprintf("%s/app/installations/%s/access_tokens", s.apiURL, s.installationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(nil))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+appJWT)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.httpCli.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("requesting installation token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return "", time.Time{}, fmt.Errorf("installation token request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", time.Time{}, fmt.Errorf("parsing installation token response: %w", err)
	}

	return result.Token, result.ExpiresAt, nil
}
