package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/repository"
)

type PromoService struct {
	log          *slog.Logger
	promos       *repository.PromoRepository
	entitlements EntitlementGranter
}

func NewPromoService(log *slog.Logger, promos *repository.PromoRepository, entitlements EntitlementGranter) *PromoService {
	return &PromoService{log: log, promos: promos, entitlements: entitlements}
}

// Redeem grants a promo's credits once per user. The usage counter is bumped
// conditionally so the last slot cannot be redeemed twice.
func (s *PromoService) Redeem(ctx context.Context, userID, code string) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, apperror.ValidationFailed("code", "cannot be empty")
	}

	promo, err := s.promos.GetByCode(ctx, code)
	if err != nil {
		return 0, err
	}
	if promo == nil {
		return 0, apperror.NotFound("promo code", code)
	}

	redeemed, err := s.promos.HasUserRedeemed(ctx, userID, promo.ID)
	if err != nil {
		return 0, err
	}
	if redeemed {
		return 0, apperror.ValidationFailed("code", "already redeemed")
	}

	ok, err := s.promos.IncrementUsage(ctx, promo.ID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperror.ValidationFailed("code", "promo code exhausted")
	}

	if err := s.promos.RecordRedemption(ctx, userID, promo.ID); err != nil {
		return 0, err
	}
	if err := s.entitlements.GrantCredits(ctx, userID, promo.Credits); err != nil {
		return 0, err
	}
	s.log.Info("promo redeemed", "user_id", userID, "code", code, "credits", promo.Credits)
	return promo.Credits, nil
}
