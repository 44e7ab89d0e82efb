package generator

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

// Engine produces posts from the offline template corpus. It never fails,
// which makes it the fallback path when the remote model is unavailable.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewEngineWithSource builds an engine over a fixed source, for deterministic
// output in tests.
func NewEngineWithSource(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// Generate renders a post for the 0-10 toxicity level. Every placeholder in
// the chosen template is filled; the returned content never contains braces.
func (e *Engine) Generate(toxicityLevel int, categories []string) (string, models.Author) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tier := models.TierFromScalar(toxicityLevel)
	templates := tierTemplates[tier]
	post := templates[e.rng.Intn(len(templates))]

	post = e.fill(post)
	post = e.spliceHinglish(post)
	post = e.decorate(post, tier)

	author := authors[e.rng.Intn(len(authors))]
	return post, author
}

func (e *Engine) fill(post string) string {
	for key, options := range phrases {
		placeholder := "{" + key + "}"
		for strings.Contains(post, placeholder) {
			post = strings.Replace(post, placeholder, options[e.rng.Intn(len(options))], 1)
		}
	}
	for strings.Contains(post, "{buzzword}") {
		post = strings.Replace(post, "{buzzword}", buzzwords[e.rng.Intn(len(buzzwords))], 1)
	}
	for strings.Contains(post, "{comparison}") {
		post = strings.Replace(post, "{comparison}", comparisons[e.rng.Intn(len(comparisons))], 1)
	}
	return post
}

// spliceHinglish appends or inserts a Hinglish phrase about 40% of the time.
func (e *Engine) spliceHinglish(post string) string {
	if e.rng.Float64() <= 0.6 {
		return post
	}
	phrase := hinglishPhrases[e.rng.Intn(len(hinglishPhrases))]
	if e.rng.Float64() > 0.5 && len(post) < 220 {
		return post + " " + phrase
	}
	sentences := strings.Split(post, ". ")
	if len(sentences) > 1 {
		position := e.rng.Intn(len(sentences))
		sentences[position] += " " + phrase
		return strings.Join(sentences, ". ")
	}
	return post + " " + phrase
}

// decorate sprinkles 1-3 emoji with a probability that scales with toxicity.
func (e *Engine) decorate(post string, tier models.ToxicityTier) string {
	chance := 0.3
	switch tier {
	case models.TierMedium:
		chance = 0.5
	case models.TierHigh:
		chance = 0.7
	}
	if e.rng.Float64() >= chance {
		return post
	}
	count := e.rng.Intn(3) + 1
	var picked strings.Builder
	for i := 0; i < count; i++ {
		picked.WriteString(emojis[e.rng.Intn(len(emojis))])
	}
	selected := picked.String()

	if e.rng.Float64() > 0.7 {
		return post + " " + selected
	}
	words := strings.Split(post, " ")
	if len(words) > 5 {
		position := e.rng.Intn(len(words)-3) + 3
		words[position] += " " + selected
		return strings.Join(words, " ")
	}
	return post + " " + selected
}

// RandomAuthor picks a satirical author identity from the fixed roster.
func (e *Engine) RandomAuthor() models.Author {
	e.mu.Lock()
	defer e.mu.Unlock()
	return authors[e.rng.Intn(len(authors))]
}

// Hashtags maps the selected categories to at most three hashtags.
func Hashtags(categories []string) []string {
	var tags []string
	for _, category := range categories {
		if tag, ok := categoryHashtags[category]; ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) > 3 {
		tags = tags[:3]
	}
	return tags
}

// Metadata builds the decorative per-post detail stored alongside the content.
func (e *Engine) Metadata(content string, categories []string, now time.Time) models.PostMetadata {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.PostMetadata{
		Hashtags:       Hashtags(categories),
		BestTimeToPost: now.Format(time.RFC3339),
		EstimatedReach: e.rng.Intn(1000) + 500,
		ThreadLength:   strings.Count(content, "\n\n") + 1,
	}
}

// Shorten truncates text to max runes, ellipsis included.
func Shorten(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
