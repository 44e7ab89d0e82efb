package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/auth"
)

type createOrderRequest struct {
	Plan string `json:"plan"`
}

func (s *Server) handleCreateRazorpayOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	checkout, err := s.payments.CreateRazorpayOrder(r.Context(), userID, req.Plan)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, checkout)
}

type verifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type verifyResponse struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"`
	Plan         string     `json:"plan"`
	CreditsAdded int        `json:"creditsAdded,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

func (s *Server) handleVerifyRazorpay(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	result, err := s.payments.VerifyRazorpay(r.Context(), userID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	message := "payment verified"
	if result.AlreadyPaid {
		message = "payment already processed"
	}
	writeJSON(w, http.StatusOK, verifyResponse{
		Success:      true,
		Message:      message,
		Plan:         result.PlanCode,
		CreditsAdded: result.CreditsAdded,
		ExpiryDate:   result.PremiumUntil,
	})
}

func (s *Server) handleCreatePayPalOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	checkout, err := s.payments.CreatePayPalOrder(r.Context(), userID, req.Plan)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, checkout)
}

// handlePayPalCapture is the gateway redirect target. It is unauthenticated
// because the buyer arrives from PayPal without a session; the purchase
// context is recovered from the order itself.
func (s *Server) handlePayPalCapture(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("token")
	redirect := s.payments.CapturePayPal(r.Context(), orderID)
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.plans.ActivePlans(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}
