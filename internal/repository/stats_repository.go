package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) FindByUserID(ctx context.Context, userID string) (*models.UserStats, error) {
	const query = `
SELECT id, user_id, generation_count, credits, premium_until, last_generated_at, created_at, updated_at
FROM user_stats WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)
	var s models.UserStats
	var premiumUntil sql.NullTime
	if err := row.Scan(&s.ID, &s.UserID, &s.GenerationCount, &s.Credits, &premiumUntil, &s.LastGeneratedAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user stats: %w", err)
	}
	if premiumUntil.Valid {
		s.PremiumUntil = &premiumUntil.Time
	}
	return &s, nil
}

func (r *StatsRepository) Create(ctx context.Context, userID string, credits int) (*models.UserStats, error) {
	const query = `
INSERT INTO user_stats (user_id, generation_count, credits)
VALUES (?, 0, ?)`
	res, err := r.db.ExecContext(ctx, query, userID, credits)
	if err != nil {
		return nil, fmt.Errorf("insert user stats: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	now := time.Now()
	return &models.UserStats{
		ID:              id,
		UserID:          userID,
		Credits:         credits,
		LastGeneratedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Ensure returns the stats row for the user, creating it with the free
// starting balance on first sight.
func (r *StatsRepository) Ensure(ctx context.Context, userID string, freeCredits int) (*models.UserStats, error) {
	stats, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		return stats, nil
	}
	created, err := r.Create(ctx, userID, freeCredits)
	if err == nil {
		return created, nil
	}
	// A concurrent first request may have created the row between the
	// lookup and the insert. Re-read before giving up.
	stats, lookupErr := r.FindByUserID(ctx, userID)
	if lookupErr == nil && stats != nil {
		return stats, nil
	}
	return nil, err
}

// ConsumeCredit spends one credit and bumps the generation counter in a
// single conditional statement. It reports false when the balance was
// already empty, without mutating the row.
func (r *StatsRepository) ConsumeCredit(ctx context.Context, userID string) (bool, error) {
	const query = `
UPDATE user_stats
SET credits = credits - 1, generation_count = generation_count + 1, last_generated_at = NOW(), updated_at = NOW()
WHERE user_id = ? AND credits > 0`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("consume credit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// RecordPremiumGeneration bumps the usage counters without touching the
// credit balance. Used while the premium window is active.
func (r *StatsRepository) RecordPremiumGeneration(ctx context.Context, userID string) error {
	const query = `
UPDATE user_stats
SET generation_count = generation_count + 1, last_generated_at = NOW(), updated_at = NOW()
WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("record premium generation: %w", err)
	}
	return nil
}

func (r *StatsRepository) AddCredits(ctx context.Context, userID string, delta int) error {
	const query = `UPDATE user_stats SET credits = GREATEST(credits + ?, 0), updated_at = NOW() WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, delta, userID); err != nil {
		return fmt.Errorf("add credits: %w", err)
	}
	return nil
}

func (r *StatsRepository) SetPremiumUntil(ctx context.Context, userID string, until time.Time) error {
	const query = `UPDATE user_stats SET premium_until = ?, updated_at = NOW() WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, until, userID); err != nil {
		return fmt.Errorf("set premium until: %w", err)
	}
	return nil
}
