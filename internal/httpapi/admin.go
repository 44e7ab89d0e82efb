package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type planRequest struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Currency        string `json:"currency"`
	PriceMinorUnits int    `json:"price_minor_units"`
	Credits         int    `json:"credits"`
	ValidityDays    int    `json:"validity_days"`
	IsActive        *bool  `json:"is_active"`
}

func (req planRequest) toModel() *models.Plan {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Plan{
		Code:            req.Code,
		Title:           req.Title,
		Description:     req.Description,
		Currency:        req.Currency,
		PriceMinorUnits: req.PriceMinorUnits,
		Credits:         req.Credits,
		ValidityDays:    req.ValidityDays,
		IsActive:        active,
	}
}

func (s *Server) handleAdminListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.plans.List(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleAdminCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	created, err := s.plans.Create(r.Context(), req.toModel())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAdminUpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	plan := req.toModel()
	plan.ID = id
	updated, err := s.plans.Update(r.Context(), plan)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleAdminDeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	if err := s.plans.Delete(r.Context(), id); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}
