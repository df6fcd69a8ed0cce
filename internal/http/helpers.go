package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"expensetracker/internal/core"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Response encoding failed", "error", err, "url", r.URL.Path)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	writeJSON(w, r, status, errorResponse{Code: code, Error: err.Error()})
}

// writeDomainError maps validation sentinels to 422 with a machine
// readable code; anything unrecognized becomes a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code, ok := domainErrorCode(err)
	if !ok {
		slog.ErrorContext(r.Context(), "Unexpected domain error", "error", err, "url", r.URL.Path)
		writeError(w, r, http.StatusInternalServerError, "internal", err)
		return
	}
	writeError(w, r, http.StatusUnprocessableEntity, code, err)
}

func domainErrorCode(err error) (string, bool) {
	switch {
	case errors.Is(err, core.ErrMissingDate):
		return "missing_date", true
	case errors.Is(err, core.ErrNoItems):
		return "no_items", true
	case errors.Is(err, core.ErrInvalidItem):
		return "invalid_item", true
	case errors.Is(err, core.ErrEmptyName):
		return "empty_name", true
	case errors.Is(err, core.ErrDuplicateCategory):
		return "duplicate_category", true
	case errors.Is(err, core.ErrProtectedCategory):
		return "protected_category", true
	case errors.Is(err, core.ErrCategoryInUse):
		return "category_in_use", true
	case errors.Is(err, core.ErrInvalidAmount):
		return "invalid_amount", true
	}
	return "", false
}

// decodeJSON decodes a request body, rejecting unknown fields so typos
// in payloads fail loudly instead of silently dropping data.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	w.WriteHeader(http.StatusMethodNotAllowed)
}
