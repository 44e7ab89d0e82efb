package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Post, error)
	GetByID(ctx context.Context, id, userID string) (*models.Post, error)
	SetFavorite(ctx context.Context, id, userID string, favorite bool) (bool, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

const (
	defaultHistoryLimit = 50
	saveAttempts        = 3
	saveRetryDelay      = time.Second
)

type PostService struct {
	log   *slog.Logger
	posts PostStore
	sleep func(time.Duration)
}

type SavePostRequest struct {
	Content       string
	AuthorName    string
	AuthorHandle  string
	ToxicityLevel int
	Categories    []string
	SpecialMode   models.SpecialMode
	IsFavorite    bool
	Metadata      models.PostMetadata
}

func NewPostService(log *slog.Logger, posts PostStore) *PostService {
	return &PostService{
		log:   log,
		posts: posts,
		sleep: time.Sleep,
	}
}

// Save persists a post the user chose to keep, retrying transient failures.
func (s *PostService) Save(ctx context.Context, userID string, req SavePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.ValidationFailed("content", "cannot be empty")
	}
	if req.ToxicityLevel < 0 || req.ToxicityLevel > 10 {
		return nil, apperror.ValidationFailed("toxicityLevel", "must be between 0 and 10")
	}

	post := &models.Post{
		ID:            uuid.NewString(),
		UserID:        userID,
		Content:       req.Content,
		AuthorName:    req.AuthorName,
		AuthorHandle:  req.AuthorHandle,
		ToxicityLevel: models.TierFromScalar(req.ToxicityLevel),
		Categories:    req.Categories,
		SpecialMode:   req.SpecialMode,
		IsFavorite:    req.IsFavorite,
		Metadata:      req.Metadata,
		CreatedAt:     time.Now(),
	}

	var err error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		err = s.posts.Create(ctx, post)
		if err == nil {
			return post, nil
		}
		s.log.Warn("post save failed", "attempt", attempt, "error", err)
		if attempt < saveAttempts {
			s.sleep(saveRetryDelay)
		}
	}
	return nil, err
}

func (s *PostService) History(ctx context.Context, userID string, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}
	return s.posts.ListByUser(ctx, userID, limit)
}

func (s *PostService) Get(ctx context.Context, userID, postID string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post", postID)
	}
	return post, nil
}

func (s *PostService) SetFavorite(ctx context.Context, userID, postID string, favorite bool) error {
	ok, err := s.posts.SetFavorite(ctx, postID, userID, favorite)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("post", postID)
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	ok, err := s.posts.Delete(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("post", postID)
	}
	return nil
}
