package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainrotlabs/brainrot-api/internal/config"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "pp_client", user)
		assert.Equal(t, "pp_secret", pass)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "pp_token"})
	})
	mux.HandleFunc("/", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(config.Config{
		PayPalClientID:     "pp_client",
		PayPalClientSecret: "pp_secret",
		PayPalBaseURL:      server.URL,
	}, nil)
	return server, client
}

func TestCreateOrder(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)
		assert.Equal(t, "Bearer pp_token", r.Header.Get("Authorization"))

		var payload struct {
			Intent        string `json:"intent"`
			PurchaseUnits []struct {
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
				CustomID string `json:"custom_id"`
			} `json:"purchase_units"`
			ApplicationContext struct {
				ReturnURL string `json:"return_url"`
				CancelURL string `json:"cancel_url"`
			} `json:"application_context"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "CAPTURE", payload.Intent)
		require.Len(t, payload.PurchaseUnits, 1)
		assert.Equal(t, "39.00", payload.PurchaseUnits[0].Amount.Value)
		assert.Equal(t, "USD", payload.PurchaseUnits[0].Amount.CurrencyCode)

		var orderCtx OrderContext
		require.NoError(t, json.Unmarshal([]byte(payload.PurchaseUnits[0].CustomID), &orderCtx))
		assert.Equal(t, "u1", orderCtx.UserID)
		assert.Equal(t, "startup", orderCtx.Plan)
		assert.Equal(t, 175, orderCtx.Credits)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "PAYPAL-ORDER-1",
			"status": "CREATED",
			"links": []map[string]string{
				{"rel": "self", "href": "https://paypal.test/self"},
				{"rel": "approve", "href": "https://paypal.test/approve"},
			},
		})
	})

	order, err := client.CreateOrder(context.Background(), 3900, "USD", "Startup Plan",
		OrderContext{UserID: "u1", Plan: "startup", Credits: 175},
		"https://app.test/payment/capture", "https://app.test/pricing")
	require.NoError(t, err)
	assert.Equal(t, "PAYPAL-ORDER-1", order.ID)
	assert.Equal(t, "https://paypal.test/approve", order.ApprovalURL)
}

func TestCaptureOrder(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders/PAYPAL-ORDER-1/capture", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "PAYPAL-ORDER-1", "status": "COMPLETED"})
	})

	order, err := client.CaptureOrder(context.Background(), "PAYPAL-ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", order.Status)
}

func TestGetOrderDecodesCustomID(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders/PAYPAL-ORDER-1", r.URL.Path)
		customID, _ := json.Marshal(OrderContext{UserID: "u1", Plan: "slayer", Credits: 350})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":             "PAYPAL-ORDER-1",
			"status":         "COMPLETED",
			"purchase_units": []map[string]string{{"custom_id": string(customID)}},
		})
	})

	order, err := client.GetOrder(context.Background(), "PAYPAL-ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", order.CustomContext.UserID)
	assert.Equal(t, "slayer", order.CustomContext.Plan)
	assert.Equal(t, 350, order.CustomContext.Credits)
}

func TestCreateOrderMissingApprovalLink(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "X", "status": "CREATED", "links": []any{}})
	})

	_, err := client.CreateOrder(context.Background(), 1200, "USD", "Basic", OrderContext{}, "r", "c")
	assert.Error(t, err)
}
