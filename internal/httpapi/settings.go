package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/brainrotlabs/brainrot-api/internal/auth"
	"github.com/brainrotlabs/brainrot-api/internal/models"
	"github.com/brainrotlabs/brainrot-api/internal/service"
)

type settingsPayload struct {
	DisplayName         string                  `json:"display_name"`
	DefaultAuthorName   string                  `json:"default_author_name"`
	DefaultAuthorHandle string                  `json:"default_author_handle"`
	EmailNotifications  bool                    `json:"email_notifications"`
	AutoSaveDrafts      bool                    `json:"auto_save_drafts"`
	FavoriteCategories  []string                `json:"favorite_categories"`
	CustomHandles       []models.CustomHandle   `json:"custom_handles"`
	CustomTemplates     []models.CustomTemplate `json:"custom_templates"`
}

func settingsFromProfile(profile *models.UserProfile) settingsPayload {
	return settingsPayload{
		DisplayName:         profile.DisplayName,
		DefaultAuthorName:   profile.DefaultAuthorName,
		DefaultAuthorHandle: profile.DefaultAuthorHandle,
		EmailNotifications:  profile.EmailNotifications,
		AutoSaveDrafts:      profile.AutoSaveDrafts,
		FavoriteCategories:  profile.FavoriteCategories,
		CustomHandles:       profile.CustomHandles,
		CustomTemplates:     profile.CustomTemplates,
	}
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	profile, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsFromProfile(profile))
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	profile, err := s.profiles.Update(r.Context(), userID, service.UpdateProfileRequest{
		DisplayName:         req.DisplayName,
		DefaultAuthorName:   req.DefaultAuthorName,
		DefaultAuthorHandle: req.DefaultAuthorHandle,
		EmailNotifications:  req.EmailNotifications,
		AutoSaveDrafts:      req.AutoSaveDrafts,
		FavoriteCategories:  req.FavoriteCategories,
		CustomHandles:       req.CustomHandles,
		CustomTemplates:     req.CustomTemplates,
	})
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsFromProfile(profile))
}
