package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
	"github.com/brainrotlabs/brainrot-api/internal/repository"
)

const (
	maxCustomHandles   = 20
	maxCustomTemplates = 20
)

type ProfileService struct {
	log      *slog.Logger
	profiles *repository.ProfileRepository
}

type UpdateProfileRequest struct {
	DisplayName         string
	DefaultAuthorName   string
	DefaultAuthorHandle string
	EmailNotifications  bool
	AutoSaveDrafts      bool
	FavoriteCategories  []string
	CustomHandles       []models.CustomHandle
	CustomTemplates     []models.CustomTemplate
}

func NewProfileService(log *slog.Logger, profiles *repository.ProfileRepository) *ProfileService {
	return &ProfileService{log: log, profiles: profiles}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.profiles.Ensure(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*models.UserProfile, error) {
	if len(req.CustomHandles) > maxCustomHandles {
		return nil, apperror.ValidationFailed("customHandles", "too many custom handles")
	}
	if len(req.CustomTemplates) > maxCustomTemplates {
		return nil, apperror.ValidationFailed("customTemplates", "too many custom templates")
	}
	for _, handle := range req.CustomHandles {
		if strings.TrimSpace(handle.Name) == "" || strings.TrimSpace(handle.Handle) == "" {
			return nil, apperror.ValidationFailed("customHandles", "name and handle are required")
		}
	}
	for _, template := range req.CustomTemplates {
		if strings.TrimSpace(template.Name) == "" || strings.TrimSpace(template.Content) == "" {
			return nil, apperror.ValidationFailed("customTemplates", "name and content are required")
		}
	}

	profile, err := s.profiles.Ensure(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = req.DisplayName
	profile.DefaultAuthorName = req.DefaultAuthorName
	profile.DefaultAuthorHandle = req.DefaultAuthorHandle
	profile.EmailNotifications = req.EmailNotifications
	profile.AutoSaveDrafts = req.AutoSaveDrafts
	profile.FavoriteCategories = req.FavoriteCategories
	profile.CustomHandles = req.CustomHandles
	profile.CustomTemplates = req.CustomTemplates

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
