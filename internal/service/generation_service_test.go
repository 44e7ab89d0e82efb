package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/gemini"
	"github.com/brainrotlabs/brainrot-api/internal/generator"
	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type fakeRemote struct {
	content string
	err     error
	calls   int
}

func (f *fakeRemote) GeneratePost(_ context.Context, _ gemini.GenerateOptions) (string, error) {
	f.calls++
	return f.content, f.err
}

func newGenerationService(store *fakeStatsStore, remote RemoteGenerator) *GenerationService {
	entitlements := NewEntitlementService(testLogger(), store, 2)
	engine := generator.NewEngineWithSource(rand.NewSource(11))
	return NewGenerationService(testLogger(), entitlements, engine, remote)
}

func TestGenerateFromRemote(t *testing.T) {
	store := newFakeStatsStore()
	remote := &fakeRemote{content: "certified AI shitpost"}
	svc := newGenerationService(store, remote)

	result, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 6, PostType: "Startup Grind"})
	require.NoError(t, err)
	assert.Equal(t, "certified AI shitpost", result.Content)
	assert.False(t, result.FromTemplate)
	assert.Empty(t, result.Notice)
	assert.Equal(t, models.TierMedium, result.ToxicityTier)
	assert.NotEmpty(t, result.Author.Handle)
	assert.Equal(t, 1, store.rows["u1"].GenerationCount)
	assert.Equal(t, 1, store.rows["u1"].Credits)
}

func TestGenerateFallsBackToTemplates(t *testing.T) {
	store := newFakeStatsStore()
	remote := &fakeRemote{err: errors.New("quota exceeded")}
	svc := newGenerationService(store, remote)

	result, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 8, PostType: "Hustle Culture", Categories: []string{"Startups"}})
	require.NoError(t, err, "remote failure must never surface to the caller")
	assert.True(t, result.FromTemplate)
	assert.NotEmpty(t, result.Notice)
	assert.NotEmpty(t, result.Content)
	assert.NotContains(t, result.Content, "{")
}

func TestGenerateWithoutRemoteUsesTemplates(t *testing.T) {
	store := newFakeStatsStore()
	svc := newGenerationService(store, nil)

	result, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 2, PostType: "Humble Brag"})
	require.NoError(t, err)
	assert.True(t, result.FromTemplate)
	assert.Empty(t, result.Notice)
}

func TestGenerateSpecialModeSkipsRemote(t *testing.T) {
	store := newFakeStatsStore()
	remote := &fakeRemote{content: "should not be used"}
	svc := newGenerationService(store, remote)

	result, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: "VC Wisdom", SpecialMode: models.ModeFakeVCTakes})
	require.NoError(t, err)
	assert.True(t, result.FromTemplate)
	assert.Equal(t, "@TheVikramVC", result.Author.Handle)
	assert.Zero(t, remote.calls)
}

func TestGenerateExhaustedDoesNotCallRemote(t *testing.T) {
	store := newFakeStatsStore()
	store.rows["u1"] = &models.UserStats{UserID: "u1", Credits: 0}
	remote := &fakeRemote{content: "nope"}
	svc := newGenerationService(store, remote)

	_, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: "Startup Grind"})
	assert.ErrorIs(t, err, apperror.ErrEntitlementExhausted)
	assert.Zero(t, remote.calls)
}

func TestGenerateValidatesToxicity(t *testing.T) {
	store := newFakeStatsStore()
	svc := newGenerationService(store, nil)

	_, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 11, PostType: "Startup Grind"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: -1, PostType: "Startup Grind"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: "Startup Grind", SpecialMode: models.SpecialMode("Bogus")})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, store.rows, "validation failures must not create or charge ledgers")
}

func TestGenerateValidatesPostType(t *testing.T) {
	store := newFakeStatsStore()
	svc := newGenerationService(store, nil)

	_, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: "   "})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: strings.Repeat("x", 101)})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, store.rows, "rejected post types must not charge the ledger")

	_, err = svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: strings.Repeat("x", 100)})
	assert.NoError(t, err)
}

func TestGenerateShortensLongRemoteOutput(t *testing.T) {
	store := newFakeStatsStore()
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'x'
	}
	remote := &fakeRemote{content: string(long)}
	svc := newGenerationService(store, remote)

	result, err := svc.Generate(context.Background(), "u1", GenerateRequest{ToxicityLevel: 5, PostType: "Startup Grind"})
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(result.Content)), 280)
}
