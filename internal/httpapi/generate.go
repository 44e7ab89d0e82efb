package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/auth"
	"github.com/brainrotlabs/brainrot-api/internal/models"
	"github.com/brainrotlabs/brainrot-api/internal/service"
)

type generateRequest struct {
	ToxicityLevel int      `json:"toxicityLevel"`
	Categories    []string `json:"categories"`
	SpecialMode   string   `json:"specialMode"`
	PostType      string   `json:"postType"`
	Topic         string   `json:"topic"`
	Tones         []string `json:"tones"`
}

type generateResponse struct {
	GeneratedPost  string              `json:"generatedPost"`
	Author         models.Author       `json:"author"`
	ToxicityTier   string              `json:"toxicityTier"`
	IsFromTemplate bool                `json:"isFromTemplate"`
	Notice         string              `json:"notice,omitempty"`
	Metadata       models.PostMetadata `json:"metadata"`
	CreditsLeft    int                 `json:"creditsLeft"`
	IsPremium      bool                `json:"isPremium"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	result, err := s.generation.Generate(r.Context(), userID, service.GenerateRequest{
		ToxicityLevel: req.ToxicityLevel,
		Categories:    req.Categories,
		SpecialMode:   models.SpecialMode(req.SpecialMode),
		PostType:      req.PostType,
		Topic:         req.Topic,
		Tones:         req.Tones,
	})
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		GeneratedPost:  result.Content,
		Author:         result.Author,
		ToxicityTier:   string(result.ToxicityTier),
		IsFromTemplate: result.FromTemplate,
		Notice:         result.Notice,
		Metadata:       result.Metadata,
		CreditsLeft:    result.Stats.Credits,
		IsPremium:      result.Stats.IsPremium(time.Now()),
	})
}

type statsResponse struct {
	Credits         int        `json:"credits"`
	GenerationCount int        `json:"generationCount"`
	IsPremium       bool       `json:"isPremium"`
	PremiumUntil    *time.Time `json:"premiumUntil,omitempty"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	stats, err := s.entitlements.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Credits:         stats.Credits,
		GenerationCount: stats.GenerationCount,
		IsPremium:       stats.IsPremium(time.Now()),
		PremiumUntil:    stats.PremiumUntil,
	})
}

type redeemRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleRedeemPromo(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	credits, err := s.promos.Redeem(r.Context(), userID, req.Code)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"creditsAdded": credits})
}
