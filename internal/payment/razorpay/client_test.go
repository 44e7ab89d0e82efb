package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainrotlabs/brainrot-api/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "rzp_test_secret",
		RazorpayBaseURL:   baseURL,
	}, nil)
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var payload struct {
			Amount   int               `json:"amount"`
			Currency string            `json:"currency"`
			Receipt  string            `json:"receipt"`
			Notes    map[string]string `json:"notes"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 1200, payload.Amount)
		assert.Equal(t, "USD", payload.Currency)
		assert.NotEmpty(t, payload.Receipt)
		assert.Equal(t, "basic", payload.Notes["plan"])

		_ = json.NewEncoder(w).Encode(Order{
			ID:       "order_123",
			Amount:   payload.Amount,
			Currency: payload.Currency,
			Status:   "created",
			Notes:    payload.Notes,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	order, err := client.CreateOrder(context.Background(), 1200, "USD", map[string]string{"plan": "basic", "user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, 1200, order.Amount)
}

func TestFetchOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders/order_123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Order{ID: "order_123", Status: "paid", Notes: map[string]string{"plan": "startup"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	order, err := client.FetchOrder(context.Background(), "order_123")
	require.NoError(t, err)
	assert.Equal(t, "paid", order.Status)
	assert.Equal(t, "startup", order.Notes["plan"])
}

func TestVerifySignature(t *testing.T) {
	client := newTestClient("http://localhost")

	mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
	mac.Write([]byte("order_123|pay_456"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifySignature("order_123", "pay_456", valid))
	assert.False(t, client.VerifySignature("order_123", "pay_456", "deadbeef"))
	assert.False(t, client.VerifySignature("order_999", "pay_456", valid))
}
