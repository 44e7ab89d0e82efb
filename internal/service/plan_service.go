package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
	"github.com/brainrotlabs/brainrot-api/internal/repository"
)

// PlanService manages the purchasable catalog. Listing is public; mutation
// is reserved for the admin surface.
type PlanService struct {
	log   *slog.Logger
	plans *repository.PlanRepository
}

func NewPlanService(log *slog.Logger, plans *repository.PlanRepository) *PlanService {
	return &PlanService{log: log, plans: plans}
}

func (s *PlanService) ActivePlans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	active := plans[:0]
	for _, plan := range plans {
		if plan.IsActive {
			active = append(active, plan)
		}
	}
	return active, nil
}

func (s *PlanService) List(ctx context.Context) ([]models.Plan, error) {
	return s.plans.List(ctx)
}

func (s *PlanService) Get(ctx context.Context, id int64) (*models.Plan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan", "")
	}
	return plan, nil
}

func validatePlan(plan *models.Plan) error {
	if strings.TrimSpace(plan.Code) == "" {
		return apperror.ValidationFailed("code", "cannot be empty")
	}
	if strings.TrimSpace(plan.Title) == "" {
		return apperror.ValidationFailed("title", "cannot be empty")
	}
	if plan.PriceMinorUnits <= 0 {
		return apperror.ValidationFailed("priceMinorUnits", "must be positive")
	}
	if plan.Credits <= 0 && plan.ValidityDays <= 0 {
		return apperror.ValidationFailed("credits", "plan must grant credits or premium days")
	}
	if plan.Currency == "" {
		plan.Currency = "USD"
	}
	return nil
}

func (s *PlanService) Create(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.log.Info("plan created", "code", created.Code, "price", created.PriceMinorUnits)
	return created, nil
}

func (s *PlanService) Update(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	existing, err := s.plans.GetByID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("plan", "")
	}
	updated, err := s.plans.Update(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.log.Info("plan updated", "code", updated.Code)
	return updated, nil
}

func (s *PlanService) Delete(ctx context.Context, id int64) error {
	existing, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("plan", "")
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("plan deleted", "code", existing.Code)
	return nil
}
