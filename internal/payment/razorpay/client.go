package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brainrotlabs/brainrot-api/internal/config"
)

// Client wraps the Razorpay Orders REST API.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Order is the subset of the Razorpay order object the service needs.
// Notes carry the purchase context so verification can corroborate the
// plan from the gateway rather than trusting the client.
type Order struct {
	ID       string            `json:"id"`
	Amount   int               `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes"`
}

func NewClient(cfg config.Config, log *slog.Logger) *Client {
	return &Client{
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		baseURL:   strings.TrimRight(cfg.RazorpayBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// KeyID is exposed so the checkout response can hand the public key to the
// client-side widget.
func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) CreateOrder(ctx context.Context, amountMinorUnits int, currency string, notes map[string]string) (*Order, error) {
	payload := map[string]any{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  "receipt_" + uuid.NewString(),
		"notes":    notes,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	var order Order
	if err := c.do(req, &order); err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	return &order, nil
}

func (c *Client) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/orders/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	var order Order
	if err := c.do(req, &order); err != nil {
		return nil, fmt.Errorf("fetch razorpay order: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 over
// "orderID|paymentID" keyed with the key secret, hex encoded.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
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
			c.log.Error("razorpay request failed", "status", resp.StatusCode, "url", req.URL.Path, "body", truncateBody(rawBody))
		}
		return fmt.Errorf("razorpay error: status=%d body=%s", resp.StatusCode, truncateBody(rawBody))
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("decode razorpay response: %w (body=%s)", err, truncateBody(rawBody))
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
