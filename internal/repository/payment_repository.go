package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	const query = `
INSERT INTO payments (user_id, plan_code, provider, provider_order_id, provider_payment_id, currency, amount, status, raw_payload)
VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, payment.UserID, payment.PlanCode, payment.Provider, payment.ProviderOrderID, payment.ProviderPayment, payment.Currency, payment.Amount, payment.Status, payment.RawPayload)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	payment.ID = id
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, paymentID int64, status, paymentRef, payload string) error {
	const query = `
UPDATE payments SET status = ?, provider_payment_id = COALESCE(NULLIF(?, ''), provider_payment_id), raw_payload = ?, updated_at = NOW()
WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, status, paymentRef, payload, paymentID); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindByProviderOrder(ctx context.Context, provider, orderID string) (*models.Payment, error) {
	const query = `
SELECT id, user_id, plan_code, provider, COALESCE(provider_order_id, ''), COALESCE(provider_payment_id, ''), currency, amount, status, COALESCE(raw_payload, ''), created_at, updated_at
FROM payments WHERE provider = ? AND provider_order_id = ? LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, provider, orderID)
	var p models.Payment
	if err := row.Scan(&p.ID, &p.UserID, &p.PlanCode, &p.Provider, &p.ProviderOrderID, &p.ProviderPayment, &p.Currency, &p.Amount, &p.Status, &p.RawPayload, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return &p, nil
}
