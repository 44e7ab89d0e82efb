package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type fakeStatsStore struct {
	rows       map[string]*models.UserStats
	consumeErr error
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{rows: map[string]*models.UserStats{}}
}

func (f *fakeStatsStore) Ensure(_ context.Context, userID string, freeCredits int) (*models.UserStats, error) {
	if row, ok := f.rows[userID]; ok {
		copied := *row
		return &copied, nil
	}
	row := &models.UserStats{UserID: userID, Credits: freeCredits}
	f.rows[userID] = row
	copied := *row
	return &copied, nil
}

func (f *fakeStatsStore) ConsumeCredit(_ context.Context, userID string) (bool, error) {
	if f.consumeErr != nil {
		return false, f.consumeErr
	}
	row := f.rows[userID]
	if row == nil || row.Credits <= 0 {
		return false, nil
	}
	row.Credits--
	row.GenerationCount++
	return true, nil
}

func (f *fakeStatsStore) RecordPremiumGeneration(_ context.Context, userID string) error {
	f.rows[userID].GenerationCount++
	return nil
}

func (f *fakeStatsStore) AddCredits(_ context.Context, userID string, delta int) error {
	f.rows[userID].Credits += delta
	return nil
}

func (f *fakeStatsStore) SetPremiumUntil(_ context.Context, userID string, until time.Time) error {
	f.rows[userID].PremiumUntil = &until
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChargeConsumesOneCredit(t *testing.T) {
	store := newFakeStatsStore()
	svc := NewEntitlementService(testLogger(), store, 2)

	stats, err := svc.Charge(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Credits)
	assert.Equal(t, 1, stats.GenerationCount)
	assert.Equal(t, 1, store.rows["u1"].Credits)
}

func TestChargeExhaustedLeavesLedgerUntouched(t *testing.T) {
	store := newFakeStatsStore()
	store.rows["u1"] = &models.UserStats{UserID: "u1", Credits: 0, GenerationCount: 5}
	svc := NewEntitlementService(testLogger(), store, 2)

	_, err := svc.Charge(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrEntitlementExhausted)
	assert.Equal(t, 0, store.rows["u1"].Credits)
	assert.Equal(t, 5, store.rows["u1"].GenerationCount)
}

func TestChargePremiumBypassesCredits(t *testing.T) {
	store := newFakeStatsStore()
	until := time.Now().Add(24 * time.Hour)
	store.rows["u1"] = &models.UserStats{UserID: "u1", Credits: 0, PremiumUntil: &until}
	svc := NewEntitlementService(testLogger(), store, 2)

	stats, err := svc.Charge(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Credits)
	assert.Equal(t, 1, stats.GenerationCount)
}

func TestChargeLapsedPremiumPaysCredits(t *testing.T) {
	store := newFakeStatsStore()
	until := time.Now().Add(-time.Hour)
	store.rows["u1"] = &models.UserStats{UserID: "u1", Credits: 3, PremiumUntil: &until}
	svc := NewEntitlementService(testLogger(), store, 2)

	stats, err := svc.Charge(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Credits)
}

func TestStatsLazilyCreatesRow(t *testing.T) {
	store := newFakeStatsStore()
	svc := NewEntitlementService(testLogger(), store, 2)

	stats, err := svc.Stats(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Credits)
	assert.Equal(t, 0, stats.GenerationCount)
}

func TestGrantCredits(t *testing.T) {
	store := newFakeStatsStore()
	store.rows["u1"] = &models.UserStats{UserID: "u1", Credits: 1}
	svc := NewEntitlementService(testLogger(), store, 2)

	require.NoError(t, svc.GrantCredits(context.Background(), "u1", 175))
	assert.Equal(t, 176, store.rows["u1"].Credits)
}

func TestExtendPremiumStacksOnActiveWindow(t *testing.T) {
	store := newFakeStatsStore()
	now := time.Now()
	current := now.Add(10 * 24 * time.Hour)
	store.rows["u1"] = &models.UserStats{UserID: "u1", PremiumUntil: &current}
	svc := NewEntitlementService(testLogger(), store, 2)

	until, err := svc.ExtendPremium(context.Background(), "u1", 30)
	require.NoError(t, err)
	assert.WithinDuration(t, current.AddDate(0, 0, 30), until, time.Second)
}

func TestNextPremiumExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no window starts from now", func(t *testing.T) {
		until := NextPremiumExpiry(nil, now, 30)
		assert.Equal(t, now.AddDate(0, 0, 30), until)
	})

	t.Run("lapsed window starts from now", func(t *testing.T) {
		lapsed := now.Add(-time.Hour)
		until := NextPremiumExpiry(&lapsed, now, 30)
		assert.Equal(t, now.AddDate(0, 0, 30), until)
	})

	t.Run("active window extends from expiry", func(t *testing.T) {
		active := now.AddDate(0, 0, 12)
		until := NextPremiumExpiry(&active, now, 30)
		assert.Equal(t, active.AddDate(0, 0, 30), until)
	})
}
