package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/config"
)

// SupabaseClient exchanges OAuth authorization codes for sessions against
// the project's GoTrue endpoint.
type SupabaseClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	log        *slog.Logger
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func NewSupabaseClient(cfg config.Config, log *slog.Logger) *SupabaseClient {
	return &SupabaseClient{
		baseURL: strings.TrimRight(cfg.AuthBaseURL, "/"),
		anonKey: cfg.AuthAnonKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// ExchangeCode trades a PKCE authorization code for a session.
func (c *SupabaseClient) ExchangeCode(ctx context.Context, code, codeVerifier string) (*Session, error) {
	payload := map[string]string{
		"auth_code":     code,
		"code_verifier": codeVerifier,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	endpoint := c.baseURL + "/auth/v1/token?grant_type=pkce"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		if c.log != nil {
			c.log.Error("code exchange failed", "status", resp.StatusCode)
		}
		return nil, fmt.Errorf("auth error: status=%d", resp.StatusCode)
	}

	var session Session
	if err := json.Unmarshal(rawBody, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("empty access token in session")
	}
	return &session, nil
}
