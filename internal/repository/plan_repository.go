package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, code, title, COALESCE(description, ''), currency, price_minor_units, credits, validity_days, is_active, created_at, updated_at`

func (r *PlanRepository) List(ctx context.Context) ([]models.Plan, error) {
	const query = `
SELECT ` + planColumns + `
FROM pricing_plans
ORDER BY price_minor_units ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := scanPlan(rows, &plan); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *PlanRepository) GetByCode(ctx context.Context, code string) (*models.Plan, error) {
	const query = `
SELECT ` + planColumns + `
FROM pricing_plans
WHERE code = ?`
	row := r.db.QueryRowContext(ctx, query, code)
	var plan models.Plan
	if err := scanPlan(row, &plan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	const query = `
SELECT ` + planColumns + `
FROM pricing_plans
WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	var plan models.Plan
	if err := scanPlan(row, &plan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	const query = `
INSERT INTO pricing_plans (code, title, description, currency, price_minor_units, credits, validity_days, is_active)
VALUES (?, ?, NULLIF(?, ''), ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, plan.Code, plan.Title, plan.Description, plan.Currency, plan.PriceMinorUnits, plan.Credits, plan.ValidityDays, plan.IsActive)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("plan last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *PlanRepository) Update(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	const query = `
UPDATE pricing_plans
SET code = ?, title = ?, description = NULLIF(?, ''), currency = ?, price_minor_units = ?, credits = ?, validity_days = ?, is_active = ?, updated_at = NOW()
WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, plan.Code, plan.Title, plan.Description, plan.Currency, plan.PriceMinorUnits, plan.Credits, plan.ValidityDays, plan.IsActive, plan.ID); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return r.GetByID(ctx, plan.ID)
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM pricing_plans WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// EnsureDefaults seeds the catalog on an empty table so a fresh deployment
// has something to sell.
func (r *PlanRepository) EnsureDefaults(ctx context.Context) error {
	const countQuery = `SELECT COUNT(*) FROM pricing_plans`
	var count int
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return fmt.Errorf("count plans: %w", err)
	}
	if count > 0 {
		return nil
	}
	defaults := []models.Plan{
		{Code: "basic", Title: "Basic Brainrot", Description: "50 generations for casual posters", Currency: "USD", PriceMinorUnits: 1200, Credits: 50, IsActive: true},
		{Code: "startup", Title: "Startup Grind", Description: "175 generations for serial thought leaders", Currency: "USD", PriceMinorUnits: 3900, Credits: 175, IsActive: true},
		{Code: "slayer", Title: "Engagement Slayer", Description: "350 generations for full-time reply guys", Currency: "USD", PriceMinorUnits: 6900, Credits: 350, IsActive: true},
	}
	for i := range defaults {
		if _, err := r.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	return nil
}

func scanPlan(row rowScanner, plan *models.Plan) error {
	isActive := 0
	if err := row.Scan(&plan.ID, &plan.Code, &plan.Title, &plan.Description, &plan.Currency, &plan.PriceMinorUnits, &plan.Credits, &plan.ValidityDays, &isActive, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan plan: %w", err)
	}
	plan.IsActive = isActive != 0
	return nil
}
