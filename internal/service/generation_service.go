package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/gemini"
	"github.com/brainrotlabs/brainrot-api/internal/generator"
	"github.com/brainrotlabs/brainrot-api/internal/models"
)

// RemoteGenerator is the AI backend. Failures are absorbed by the template
// fallback and never surface to callers.
type RemoteGenerator interface {
	GeneratePost(ctx context.Context, opts gemini.GenerateOptions) (string, error)
}

type GenerationService struct {
	log          *slog.Logger
	entitlements *EntitlementService
	engine       *generator.Engine
	remote       RemoteGenerator
	now          func() time.Time
}

type GenerateRequest struct {
	ToxicityLevel int
	Categories    []string
	SpecialMode   models.SpecialMode
	PostType      string
	Topic         string
	Tones         []string
}

type GenerateResult struct {
	Content      string
	Author       models.Author
	ToxicityTier models.ToxicityTier
	FromTemplate bool
	Notice       string
	Metadata     models.PostMetadata
	Stats        *models.UserStats
}

func NewGenerationService(log *slog.Logger, entitlements *EntitlementService, engine *generator.Engine, remote RemoteGenerator) *GenerationService {
	return &GenerationService{
		log:          log,
		entitlements: entitlements,
		engine:       engine,
		remote:       remote,
		now:          time.Now,
	}
}

// Generate charges the entitlement and produces a post. Once the charge
// succeeds the call cannot fail: special modes and the template engine are
// local, and a remote model failure falls back to templates with a notice.
func (s *GenerationService) Generate(ctx context.Context, userID string, req GenerateRequest) (*GenerateResult, error) {
	if req.ToxicityLevel < 0 || req.ToxicityLevel > 10 {
		return nil, apperror.ValidationFailed("toxicityLevel", "must be between 0 and 10")
	}
	if postType := strings.TrimSpace(req.PostType); postType == "" || len([]rune(postType)) > 100 {
		return nil, apperror.ValidationFailed("postType", "must be between 1 and 100 characters")
	}
	if req.SpecialMode != "" && generator.SpecialModeTitle(req.SpecialMode) == "" {
		return nil, apperror.ValidationFailed("specialMode", "unknown special mode")
	}

	stats, err := s.entitlements.Charge(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		ToxicityTier: models.TierFromScalar(req.ToxicityLevel),
		Stats:        stats,
	}

	switch {
	case req.SpecialMode != "":
		content, author, err := s.engine.GenerateSpecial(req.SpecialMode, req.ToxicityLevel)
		if err != nil {
			return nil, err
		}
		result.Content = content
		result.Author = author
		result.FromTemplate = true
	case s.remote != nil:
		content, err := s.remote.GeneratePost(ctx, gemini.GenerateOptions{
			PostType:      req.PostType,
			ToxicityLevel: req.ToxicityLevel,
			Topic:         req.Topic,
			Tones:         req.Tones,
		})
		if err == nil {
			result.Content = generator.Shorten(content, 280)
			result.Author = s.engine.RandomAuthor()
			break
		}
		s.log.Warn("remote generation failed, serving from templates", "error", err)
		content, author := s.engine.Generate(req.ToxicityLevel, req.Categories)
		result.Content = content
		result.Author = author
		result.FromTemplate = true
		result.Notice = "AI generation is temporarily unavailable, served a template post instead"
	default:
		content, author := s.engine.Generate(req.ToxicityLevel, req.Categories)
		result.Content = content
		result.Author = author
		result.FromTemplate = true
	}

	result.Metadata = s.engine.Metadata(result.Content, req.Categories, s.now())
	return result, nil
}
