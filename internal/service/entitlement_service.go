package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
)

// StatsStore is the persistence surface the entitlement service needs.
type StatsStore interface {
	Ensure(ctx context.Context, userID string, freeCredits int) (*models.UserStats, error)
	ConsumeCredit(ctx context.Context, userID string) (bool, error)
	RecordPremiumGeneration(ctx context.Context, userID string) error
	AddCredits(ctx context.Context, userID string, delta int) error
	SetPremiumUntil(ctx context.Context, userID string, until time.Time) error
}

// EntitlementService owns the credit ledger. A generation costs one credit
// unless the user holds an active premium window, which bypasses the balance.
type EntitlementService struct {
	log         *slog.Logger
	stats       StatsStore
	freeCredits int
	now         func() time.Time
}

func NewEntitlementService(log *slog.Logger, stats StatsStore, freeCredits int) *EntitlementService {
	return &EntitlementService{
		log:         log,
		stats:       stats,
		freeCredits: freeCredits,
		now:         time.Now,
	}
}

// Stats returns the ledger row, lazily created with the free starting balance.
func (s *EntitlementService) Stats(ctx context.Context, userID string) (*models.UserStats, error) {
	return s.stats.Ensure(ctx, userID, s.freeCredits)
}

// Charge spends one generation. Premium users are not decremented; everyone
// else pays a credit through a conditional update, so two concurrent requests
// can never both spend the last one.
func (s *EntitlementService) Charge(ctx context.Context, userID string) (*models.UserStats, error) {
	stats, err := s.stats.Ensure(ctx, userID, s.freeCredits)
	if err != nil {
		return nil, err
	}

	if stats.IsPremium(s.now()) {
		if err := s.stats.RecordPremiumGeneration(ctx, userID); err != nil {
			return nil, err
		}
		stats.GenerationCount++
		return stats, nil
	}

	ok, err := s.stats.ConsumeCredit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.EntitlementExhausted()
	}
	stats.Credits--
	stats.GenerationCount++
	return stats, nil
}

// GrantCredits tops up the balance after a purchase or promo redemption.
func (s *EntitlementService) GrantCredits(ctx context.Context, userID string, credits int) error {
	if _, err := s.stats.Ensure(ctx, userID, s.freeCredits); err != nil {
		return err
	}
	if err := s.stats.AddCredits(ctx, userID, credits); err != nil {
		return err
	}
	s.log.Info("credits granted", "user_id", userID, "credits", credits)
	return nil
}

// ExtendPremium pushes the premium window out by the given number of days.
// An active window is extended from its current expiry, not from now, so
// buying early never costs the user remaining time.
func (s *EntitlementService) ExtendPremium(ctx context.Context, userID string, days int) (time.Time, error) {
	stats, err := s.stats.Ensure(ctx, userID, s.freeCredits)
	if err != nil {
		return time.Time{}, err
	}

	until := NextPremiumExpiry(stats.PremiumUntil, s.now(), days)
	if err := s.stats.SetPremiumUntil(ctx, userID, until); err != nil {
		return time.Time{}, err
	}
	s.log.Info("premium extended", "user_id", userID, "days", days, "until", until)
	return until, nil
}

// NextPremiumExpiry computes the new expiry for a premium purchase of the
// given validity.
func NextPremiumExpiry(current *time.Time, now time.Time, days int) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.AddDate(0, 0, days)
}
