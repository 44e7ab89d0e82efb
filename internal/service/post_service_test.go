package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type fakePostStore struct {
	posts      map[string]*models.Post
	failCreate int
	creates    int
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]*models.Post{}}
}

func (f *fakePostStore) Create(_ context.Context, post *models.Post) error {
	f.creates++
	if f.creates <= f.failCreate {
		return errors.New("connection reset")
	}
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostStore) ListByUser(_ context.Context, userID string, limit int) ([]models.Post, error) {
	var out []models.Post
	for _, post := range f.posts {
		if post.UserID == userID && len(out) < limit {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (f *fakePostStore) GetByID(_ context.Context, id, userID string) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.UserID != userID {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostStore) SetFavorite(_ context.Context, id, userID string, favorite bool) (bool, error) {
	post, ok := f.posts[id]
	if !ok || post.UserID != userID {
		return false, nil
	}
	post.IsFavorite = favorite
	return true, nil
}

func (f *fakePostStore) Delete(_ context.Context, id, userID string) (bool, error) {
	post, ok := f.posts[id]
	if !ok || post.UserID != userID {
		return false, nil
	}
	delete(f.posts, id)
	return true, nil
}

func newPostService(store *fakePostStore) *PostService {
	svc := NewPostService(testLogger(), store)
	svc.sleep = func(time.Duration) {}
	return svc
}

func TestSavePost(t *testing.T) {
	store := newFakePostStore()
	svc := newPostService(store)

	post, err := svc.Save(context.Background(), "u1", SavePostRequest{
		Content:       "peak brainrot content",
		AuthorName:    "Rahul Founder",
		AuthorHandle:  "@RahulFounderAI",
		ToxicityLevel: 9,
		Categories:    []string{"Startups"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.TierHigh, post.ToxicityLevel)
	assert.Contains(t, store.posts, post.ID)
}

func TestSavePostRetriesTransientFailures(t *testing.T) {
	store := newFakePostStore()
	store.failCreate = 2
	svc := newPostService(store)

	var slept []time.Duration
	svc.sleep = func(d time.Duration) { slept = append(slept, d) }

	post, err := svc.Save(context.Background(), "u1", SavePostRequest{Content: "x", ToxicityLevel: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, store.creates)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)
	assert.Contains(t, store.posts, post.ID)
}

func TestSavePostGivesUpAfterThreeAttempts(t *testing.T) {
	store := newFakePostStore()
	store.failCreate = 3
	svc := newPostService(store)

	_, err := svc.Save(context.Background(), "u1", SavePostRequest{Content: "x", ToxicityLevel: 1})
	assert.Error(t, err)
	assert.Equal(t, 3, store.creates)
}

func TestSavePostValidation(t *testing.T) {
	svc := newPostService(newFakePostStore())

	_, err := svc.Save(context.Background(), "u1", SavePostRequest{Content: "   ", ToxicityLevel: 1})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Save(context.Background(), "u1", SavePostRequest{Content: "x", ToxicityLevel: 11})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestFavoriteAndDelete(t *testing.T) {
	store := newFakePostStore()
	svc := newPostService(store)

	post, err := svc.Save(context.Background(), "u1", SavePostRequest{Content: "keep me", ToxicityLevel: 4})
	require.NoError(t, err)

	require.NoError(t, svc.SetFavorite(context.Background(), "u1", post.ID, true))
	got, err := svc.Get(context.Background(), "u1", post.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	// another user cannot touch the post
	err = svc.Delete(context.Background(), "u2", post.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), "u1", post.ID))
	_, err = svc.Get(context.Background(), "u1", post.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
