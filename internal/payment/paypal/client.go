package paypal

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

// Client wraps the PayPal Checkout Orders v2 API. Each call fetches a fresh
// client-credentials token; PayPal caches them server side so this stays cheap.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	log          *slog.Logger
}

// OrderContext is the purchase metadata smuggled through custom_id so the
// capture redirect can recover who bought what without a session.
type OrderContext struct {
	UserID   string `json:"userId"`
	Plan     string `json:"plan"`
	Credits  int    `json:"credits"`
	Validity int    `json:"validity"`
}

type Order struct {
	ID            string
	Status        string
	ApprovalURL   string
	CustomContext OrderContext
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
	PurchaseUnits []struct {
		CustomID string `json:"custom_id"`
	} `json:"purchase_units"`
}

func NewClient(cfg config.Config, log *slog.Logger) *Client {
	return &Client{
		clientID:     cfg.PayPalClientID,
		clientSecret: cfg.PayPalClientSecret,
		baseURL:      strings.TrimRight(cfg.PayPalBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &tokenResp); err != nil {
		return "", fmt.Errorf("paypal token: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("empty paypal access token")
	}
	return tokenResp.AccessToken, nil
}

// CreateOrder opens a CAPTURE-intent order and returns the approval link the
// user is redirected to. amountMinorUnits is in cents.
func (c *Client) CreateOrder(ctx context.Context, amountMinorUnits int, currency, description string, orderCtx OrderContext, returnURL, cancelURL string) (*Order, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	customID, err := json.Marshal(orderCtx)
	if err != nil {
		return nil, fmt.Errorf("marshal custom id: %w", err)
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"amount": map[string]any{
					"currency_code": currency,
					"value":         fmt.Sprintf("%d.%02d", amountMinorUnits/100, amountMinorUnits%100),
				},
				"description": description,
				"custom_id":   string(customID),
			},
		},
		"application_context": map[string]any{
			"brand_name":   "brainrot-api",
			"landing_page": "NO_PREFERENCE",
			"user_action":  "PAY_NOW",
			"return_url":   returnURL,
			"cancel_url":   cancelURL,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var resp orderResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("create paypal order: %w", err)
	}

	order := &Order{ID: resp.ID, Status: resp.Status}
	for _, link := range resp.Links {
		if link.Rel == "approve" {
			order.ApprovalURL = link.Href
			break
		}
	}
	if order.ApprovalURL == "" {
		return nil, fmt.Errorf("paypal order %s has no approval link", resp.ID)
	}
	return order, nil
}

// CaptureOrder finalizes an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders/"+orderID+"/capture", bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var resp orderResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("capture paypal order: %w", err)
	}
	return decodeOrder(resp)
}

// GetOrder fetches the order, including the custom_id purchase context.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/checkout/orders/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp orderResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("get paypal order: %w", err)
	}
	return decodeOrder(resp)
}

func decodeOrder(resp orderResponse) (*Order, error) {
	order := &Order{ID: resp.ID, Status: resp.Status}
	if len(resp.PurchaseUnits) > 0 && resp.PurchaseUnits[0].CustomID != "" {
		if err := json.Unmarshal([]byte(resp.PurchaseUnits[0].CustomID), &order.CustomContext); err != nil {
			return nil, fmt.Errorf("decode custom id: %w", err)
		}
	}
	return order, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		if c.log != nil {
			c.log.Error("paypal request failed", "status", resp.StatusCode, "url", req.URL.Path, "body", truncateBody(rawBody))
		}
		return fmt.Errorf("paypal error: status=%d body=%s", resp.StatusCode, truncateBody(rawBody))
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("decode paypal response: %w (body=%s)", err, truncateBody(rawBody))
	}
	return nil
}

func truncateBody(body []byte) string {
	const limit = 512
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
