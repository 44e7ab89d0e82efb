package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brainrotlabs/brainrot-api/internal/auth"
	"github.com/brainrotlabs/brainrot-api/internal/models"
	"github.com/brainrotlabs/brainrot-api/internal/service"
)

type savePostRequest struct {
	Content       string              `json:"content"`
	AuthorName    string              `json:"author_name"`
	AuthorHandle  string              `json:"author_handle"`
	ToxicityLevel int                 `json:"toxicity_level"`
	Categories    []string            `json:"categories"`
	SpecialMode   string              `json:"special_mode"`
	IsFavorite    bool                `json:"is_favorite"`
	Metadata      models.PostMetadata `json:"metadata"`
}

func (s *Server) handleSavePost(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req savePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	post, err := s.posts.Save(r.Context(), userID, service.SavePostRequest{
		Content:       req.Content,
		AuthorName:    req.AuthorName,
		AuthorHandle:  req.AuthorHandle,
		ToxicityLevel: req.ToxicityLevel,
		Categories:    req.Categories,
		SpecialMode:   models.SpecialMode(req.SpecialMode),
		IsFavorite:    req.IsFavorite,
		Metadata:      req.Metadata,
	})
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := s.posts.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

type favoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

func (s *Server) handleFavoritePost(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	if err := s.posts.SetFavorite(r.Context(), userID, chi.URLParam(r, "id"), req.IsFavorite); err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_favorite": req.IsFavorite})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	if err := s.posts.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSharePost(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if s.publisher == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "sharing is not configured"})
		return
	}

	post, err := s.posts.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if err := s.publisher.Publish(post); err != nil {
		s.log.Error("share post", "post_id", post.ID, "err", err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "failed to share post"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"shared": true})
}

func (s *Server) handleExportPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if s.exporter == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "export is not configured"})
		return
	}

	posts, err := s.posts.History(r.Context(), userID, 200)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if len(posts) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "nothing to export"})
		return
	}

	url, err := s.exporter.ExportHistory(r.Context(), userID, posts)
	if err != nil {
		s.log.Error("export posts", "user_id", userID, "err", err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "failed to export history"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
