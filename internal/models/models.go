package models

import "time"

// ToxicityTier buckets the 0-10 toxicity scalar for template selection.
// The scalar is the canonical wire representation; tiers are derived.
type ToxicityTier string

const (
	TierLow    ToxicityTier = "Low"
	TierMedium ToxicityTier = "Medium"
	TierHigh   ToxicityTier = "High"
)

// TierFromScalar maps the 0-10 toxicity knob to a tier.
func TierFromScalar(level int) ToxicityTier {
	switch {
	case level <= 3:
		return TierLow
	case level <= 7:
		return TierMedium
	default:
		return TierHigh
	}
}

// SpecialMode is a named generation variant with its own template corpus
// and a fixed author identity.
type SpecialMode string

const (
	ModeFounderMeltdown SpecialMode = "FounderMeltdown"
	ModeFakeVCTakes     SpecialMode = "FakeVCTakes"
	ModeIITBaitThread   SpecialMode = "IITBaitThread"
)

// UserStats is the per-user entitlement row. Credits are the canonical
// gating model; an active PremiumUntil bypasses the credit check entirely.
type UserStats struct {
	ID              int64
	UserID          string
	GenerationCount int
	Credits         int
	PremiumUntil    *time.Time
	LastGeneratedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPremium reports whether the user holds an active premium window at now.
func (s *UserStats) IsPremium(now time.Time) bool {
	return s.PremiumUntil != nil && s.PremiumUntil.After(now)
}

type Author struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// PostMetadata is decorative per-post detail, stored as JSON.
type PostMetadata struct {
	Hashtags       []string `json:"hashtags,omitempty"`
	BestTimeToPost string   `json:"best_time_to_post,omitempty"`
	EstimatedReach int      `json:"estimated_reach,omitempty"`
	ThreadLength   int      `json:"thread_length,omitempty"`
}

// Post is a generated post the user chose to keep.
type Post struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Content       string       `json:"content"`
	AuthorName    string       `json:"author_name"`
	AuthorHandle  string       `json:"author_handle"`
	ToxicityLevel ToxicityTier `json:"toxicity_level"`
	Categories    []string     `json:"categories"`
	SpecialMode   SpecialMode  `json:"special_mode,omitempty"`
	IsFavorite    bool         `json:"is_favorite"`
	Metadata      PostMetadata `json:"metadata"`
	CreatedAt     time.Time    `json:"created_at"`
}

// CustomHandle is a user-defined author identity for generated posts.
type CustomHandle struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// CustomTemplate is a user-authored template with its placeholder names.
type CustomTemplate struct {
	Name      string   `json:"name"`
	Content   string   `json:"content"`
	Variables []string `json:"variables"`
}

// UserProfile holds per-user personalization settings.
type UserProfile struct {
	UserID              string
	DisplayName         string
	DefaultAuthorName   string
	DefaultAuthorHandle string
	EmailNotifications  bool
	AutoSaveDrafts      bool
	FavoriteCategories  []string
	CustomHandles       []CustomHandle
	CustomTemplates     []CustomTemplate
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Plan is a purchasable credit pack. ValidityDays is the legacy premium-window
// alternative: when non-zero the purchase extends PremiumUntil instead of
// adding credits.
type Plan struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Currency        string    `json:"currency"`
	PriceMinorUnits int       `json:"price_minor_units"`
	Credits         int       `json:"credits"`
	ValidityDays    int       `json:"validity_days"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Payment struct {
	ID              int64
	UserID          string
	PlanCode        string
	Provider        string
	ProviderOrderID string
	ProviderPayment string
	Currency        string
	Amount          int
	Status          string
	RawPayload      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PromoCode struct {
	ID        int64
	Code      string
	Credits   int
	MaxUses   int
	Uses      int
	CreatedAt time.Time
}
