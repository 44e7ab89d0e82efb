package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brainrotlabs/brainrot-api/internal/apperror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error        string `json:"error"`
	Field        string `json:"field,omitempty"`
	NeedsUpgrade bool   `json:"needsUpgrade,omitempty"`
}

// writeError maps domain errors onto the wire. An exhausted entitlement is a
// 403 carrying needsUpgrade so the client can route to the pricing page.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		log.Error("handler error", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	body := errorBody{Error: appErr.Message, Field: appErr.Field}
	switch {
	case errors.Is(err, apperror.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, body)
	case errors.Is(err, apperror.ErrEntitlementExhausted):
		body.NeedsUpgrade = true
		writeJSON(w, http.StatusForbidden, body)
	case errors.Is(err, apperror.ErrNotFound):
		writeJSON(w, http.StatusNotFound, body)
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrPaymentIntegrity):
		writeJSON(w, http.StatusBadRequest, body)
	default:
		log.Error("handler error", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func badJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
}
