package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
	"github.com/brainrotlabs/brainrot-api/internal/payment/paypal"
	"github.com/brainrotlabs/brainrot-api/internal/payment/razorpay"
)

type RazorpayGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amountMinorUnits int, currency string, notes map[string]string) (*razorpay.Order, error)
	FetchOrder(ctx context.Context, orderID string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type PayPalGateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int, currency, description string, orderCtx paypal.OrderContext, returnURL, cancelURL string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	UpdateStatus(ctx context.Context, paymentID int64, status, paymentRef, payload string) error
	FindByProviderOrder(ctx context.Context, provider, orderID string) (*models.Payment, error)
}

type PlanStore interface {
	GetByCode(ctx context.Context, code string) (*models.Plan, error)
}

// EntitlementGranter is what a settled payment is allowed to do to the ledger.
type EntitlementGranter interface {
	GrantCredits(ctx context.Context, userID string, credits int) error
	ExtendPremium(ctx context.Context, userID string, days int) (time.Time, error)
}

type PaymentService struct {
	log          *slog.Logger
	razorpay     RazorpayGateway
	paypal       PayPalGateway
	payments     PaymentStore
	plans        PlanStore
	entitlements EntitlementGranter
	appBaseURL   string
}

// RazorpayCheckout is handed to the client-side checkout widget.
type RazorpayCheckout struct {
	OrderID  string `json:"orderId"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type PayPalCheckout struct {
	OrderID     string `json:"orderId"`
	ApprovalURL string `json:"approvalUrl"`
}

// PurchaseResult reports what a settled payment granted.
type PurchaseResult struct {
	PlanCode     string
	CreditsAdded int
	PremiumUntil *time.Time
	AlreadyPaid  bool
}

func NewPaymentService(log *slog.Logger, rz RazorpayGateway, pp PayPalGateway, payments PaymentStore, plans PlanStore, entitlements EntitlementGranter, appBaseURL string) *PaymentService {
	return &PaymentService{
		log:          log,
		razorpay:     rz,
		paypal:       pp,
		payments:     payments,
		plans:        plans,
		entitlements: entitlements,
		appBaseURL:   appBaseURL,
	}
}

func (s *PaymentService) activePlan(ctx context.Context, code string) (*models.Plan, error) {
	plan, err := s.plans.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperror.ValidationFailed("plan", "invalid plan selected")
	}
	return plan, nil
}

// CreateRazorpayOrder opens a gateway order for the plan. The purchase
// context rides in the order notes so verification can corroborate it from
// the gateway instead of trusting the client.
func (s *PaymentService) CreateRazorpayOrder(ctx context.Context, userID, planCode string) (*RazorpayCheckout, error) {
	plan, err := s.activePlan(ctx, planCode)
	if err != nil {
		return nil, err
	}

	notes := map[string]string{
		"user_id":  userID,
		"plan":     plan.Code,
		"credits":  strconv.Itoa(plan.Credits),
		"validity": strconv.Itoa(plan.ValidityDays),
	}
	order, err := s.razorpay.CreateOrder(ctx, plan.PriceMinorUnits, plan.Currency, notes)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	payment := &models.Payment{
		UserID:          userID,
		PlanCode:        plan.Code,
		Provider:        "razorpay",
		ProviderOrderID: order.ID,
		Currency:        plan.Currency,
		Amount:          plan.PriceMinorUnits,
		Status:          "created",
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &RazorpayCheckout{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      s.razorpay.KeyID(),
	}, nil
}

// VerifyRazorpay settles a checkout callback. The signature must validate
// and the order notes must name the calling user before anything is granted;
// a tampered callback leaves the ledger untouched.
func (s *PaymentService) VerifyRazorpay(ctx context.Context, userID, orderID, paymentID, signature string) (*PurchaseResult, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, apperror.ValidationFailed("payment", "missing verification fields")
	}

	if !s.razorpay.VerifySignature(orderID, paymentID, signature) {
		s.markFailed(ctx, "razorpay", orderID, "invalid signature")
		return nil, apperror.PaymentIntegrity("invalid payment signature")
	}

	order, err := s.razorpay.FetchOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}
	if order.Notes["user_id"] != userID {
		s.markFailed(ctx, "razorpay", orderID, "order does not belong to user")
		return nil, apperror.PaymentIntegrity("order does not belong to this user")
	}

	plan, err := s.activePlan(ctx, order.Notes["plan"])
	if err != nil {
		return nil, err
	}

	record, err := s.payments.FindByProviderOrder(ctx, "razorpay", orderID)
	if err != nil {
		return nil, err
	}
	if record != nil && record.Status == "paid" {
		return &PurchaseResult{PlanCode: plan.Code, AlreadyPaid: true}, nil
	}

	result, err := s.grant(ctx, userID, plan)
	if err != nil {
		return nil, err
	}

	if record != nil {
		payload, _ := json.Marshal(order)
		if err := s.payments.UpdateStatus(ctx, record.ID, "paid", paymentID, string(payload)); err != nil {
			s.log.Error("failed to mark payment paid", "order_id", orderID, "error", err)
		}
	}
	s.log.Info("razorpay payment settled", "user_id", userID, "order_id", orderID, "plan", plan.Code)
	return result, nil
}

// CreatePayPalOrder opens a redirect-flow order. The purchase context rides
// in custom_id because the capture redirect arrives without a session.
func (s *PaymentService) CreatePayPalOrder(ctx context.Context, userID, planCode string) (*PayPalCheckout, error) {
	plan, err := s.activePlan(ctx, planCode)
	if err != nil {
		return nil, err
	}

	orderCtx := paypal.OrderContext{
		UserID:   userID,
		Plan:     plan.Code,
		Credits:  plan.Credits,
		Validity: plan.ValidityDays,
	}
	order, err := s.paypal.CreateOrder(ctx, plan.PriceMinorUnits, plan.Currency, plan.Title+" Plan", orderCtx,
		s.appBaseURL+"/payment/capture", s.appBaseURL+"/pricing")
	if err != nil {
		return nil, fmt.Errorf("create paypal order: %w", err)
	}

	payment := &models.Payment{
		UserID:          userID,
		PlanCode:        plan.Code,
		Provider:        "paypal",
		ProviderOrderID: order.ID,
		Currency:        plan.Currency,
		Amount:          plan.PriceMinorUnits,
		Status:          "created",
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &PayPalCheckout{OrderID: order.ID, ApprovalURL: order.ApprovalURL}, nil
}

// CapturePayPal finishes the redirect flow. It always returns a URL to send
// the buyer to; failures map to categorized error query parameters on the
// pricing page.
func (s *PaymentService) CapturePayPal(ctx context.Context, orderID string) string {
	if orderID == "" {
		return s.pricingError("missing_order_id")
	}

	// A replayed capture redirect must not grant twice.
	if record, err := s.payments.FindByProviderOrder(ctx, "paypal", orderID); err == nil && record != nil && record.Status == "paid" {
		s.log.Info("paypal order already settled", "order_id", orderID)
		return s.appBaseURL + "/dashboard?payment=success"
	}

	captured, err := s.paypal.CaptureOrder(ctx, orderID)
	if err != nil {
		s.log.Error("paypal capture failed", "order_id", orderID, "error", err)
		return s.pricingError("capture_failed")
	}

	order, err := s.paypal.GetOrder(ctx, orderID)
	if err != nil {
		s.log.Error("paypal order lookup failed", "order_id", orderID, "error", err)
		return s.pricingError("order_details_failed")
	}
	orderCtx := order.CustomContext
	if orderCtx.UserID == "" || orderCtx.Plan == "" {
		s.log.Error("paypal order missing purchase context", "order_id", orderID)
		return s.pricingError("unknown")
	}

	plan, err := s.activePlan(ctx, orderCtx.Plan)
	if err != nil {
		s.log.Error("paypal order names unknown plan", "order_id", orderID, "plan", orderCtx.Plan, "error", err)
		return s.pricingError("unknown")
	}

	result, err := s.grant(ctx, orderCtx.UserID, plan)
	if err != nil {
		s.log.Error("paypal entitlement grant failed", "order_id", orderID, "error", err)
		return s.pricingError("database_error")
	}

	if record, findErr := s.payments.FindByProviderOrder(ctx, "paypal", orderID); findErr == nil && record != nil {
		payload, _ := json.Marshal(captured)
		if err := s.payments.UpdateStatus(ctx, record.ID, "paid", captured.ID, string(payload)); err != nil {
			s.log.Error("failed to mark payment paid", "order_id", orderID, "error", err)
		}
	}
	s.log.Info("paypal payment settled", "user_id", orderCtx.UserID, "order_id", orderID, "plan", plan.Code)

	values := url.Values{"payment": {"success"}}
	if result.PremiumUntil != nil {
		values.Set("expiry", result.PremiumUntil.Format(time.RFC3339))
	}
	if result.CreditsAdded > 0 {
		values.Set("credits", strconv.Itoa(result.CreditsAdded))
	}
	return s.appBaseURL + "/dashboard?" + values.Encode()
}

func (s *PaymentService) grant(ctx context.Context, userID string, plan *models.Plan) (*PurchaseResult, error) {
	result := &PurchaseResult{PlanCode: plan.Code}
	if plan.ValidityDays > 0 {
		until, err := s.entitlements.ExtendPremium(ctx, userID, plan.ValidityDays)
		if err != nil {
			return nil, err
		}
		result.PremiumUntil = &until
		return result, nil
	}
	if err := s.entitlements.GrantCredits(ctx, userID, plan.Credits); err != nil {
		return nil, err
	}
	result.CreditsAdded = plan.Credits
	return result, nil
}

func (s *PaymentService) markFailed(ctx context.Context, provider, orderID, reason string) {
	record, err := s.payments.FindByProviderOrder(ctx, provider, orderID)
	if err != nil || record == nil {
		return
	}
	if err := s.payments.UpdateStatus(ctx, record.ID, "failed", "", reason); err != nil {
		s.log.Error("failed to mark payment failed", "order_id", orderID, "error", err)
	}
}

func (s *PaymentService) pricingError(code string) string {
	return s.appBaseURL + "/pricing?error=" + code
}
