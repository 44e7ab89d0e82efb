package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

func TestTierFromScalar(t *testing.T) {
	assert.Equal(t, models.TierLow, models.TierFromScalar(0))
	assert.Equal(t, models.TierLow, models.TierFromScalar(3))
	assert.Equal(t, models.TierMedium, models.TierFromScalar(4))
	assert.Equal(t, models.TierMedium, models.TierFromScalar(7))
	assert.Equal(t, models.TierHigh, models.TierFromScalar(8))
	assert.Equal(t, models.TierHigh, models.TierFromScalar(10))
}

func TestGenerateFillsEveryPlaceholder(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(42))
	for level := 0; level <= 10; level++ {
		for i := 0; i < 200; i++ {
			post, author := engine.Generate(level, []string{"Startups", "AI/ML"})
			assert.NotContains(t, post, "{", "level %d run %d: %s", level, i, post)
			assert.NotContains(t, post, "}", "level %d run %d: %s", level, i, post)
			assert.NotEmpty(t, post)
			assert.NotEmpty(t, author.Name)
			assert.True(t, strings.HasPrefix(author.Handle, "@"))
		}
	}
}

func TestGenerateUsesTierCorpus(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(7))
	post, _ := engine.Generate(0, nil)
	assert.NotEmpty(t, post)

	// High tier templates carry distinctly harsher language than Low.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		high, _ := engine.Generate(10, nil)
		seen[high] = true
	}
	assert.Greater(t, len(seen), 1, "repeated draws should vary")
}

func TestHashtags(t *testing.T) {
	tags := Hashtags([]string{"Startups", "AI/ML", "Crypto", "Hustle"})
	assert.Equal(t, []string{"#startuplife", "#AIrevolution", "#crypto"}, tags)

	assert.Empty(t, Hashtags([]string{"Unknown"}))
	assert.Empty(t, Hashtags(nil))
}

func TestMetadata(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(1))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	meta := engine.Metadata("one\n\ntwo\n\nthree", []string{"Crypto"}, now)

	assert.Equal(t, []string{"#crypto"}, meta.Hashtags)
	assert.Equal(t, 3, meta.ThreadLength)
	assert.Equal(t, now.Format(time.RFC3339), meta.BestTimeToPost)
	assert.GreaterOrEqual(t, meta.EstimatedReach, 500)
	assert.Less(t, meta.EstimatedReach, 1500)
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", Shorten("short", 280))

	long := strings.Repeat("a", 300)
	shortened := Shorten(long, 280)
	assert.Len(t, []rune(shortened), 280)
	assert.True(t, strings.HasSuffix(shortened, "..."))
}

func TestGenerateSpecialSinglePost(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		post, author, err := engine.GenerateSpecial(models.ModeFounderMeltdown, 5)
		require.NoError(t, err)
		assert.NotEmpty(t, post)
		assert.NotContains(t, post, "\n\n")
		assert.Equal(t, "@RahulFounderAI", author.Handle)
	}
}

func TestGenerateSpecialThread(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		post, author, err := engine.GenerateSpecial(models.ModeIITBaitThread, 9)
		require.NoError(t, err)
		parts := strings.Split(post, "\n\n")
		assert.GreaterOrEqual(t, len(parts), 3)
		assert.LessOrEqual(t, len(parts), 5)
		assert.Equal(t, "@KaranMehraIIT", author.Handle)
	}
}

func TestGenerateSpecialUnknownMode(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(1))
	_, _, err := engine.GenerateSpecial(models.SpecialMode("NotAMode"), 5)
	assert.Error(t, err)
}
