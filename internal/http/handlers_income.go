package http

import (
	"net/http"

	"expensetracker/internal/core"
)

type incomeRequest struct {
	Amount string `json:"amount"`
}

type incomeResponse struct {
	Income core.Money `json:"income_cents"`
}

func (s *Server) handleIncome(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, incomeResponse{Income: s.tracker.Income()})
	case http.MethodPut:
		s.updateIncome(w, r)
	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

func (s *Server) updateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := s.tracker.SetIncome(r.Context(), req.Amount); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, incomeResponse{Income: s.tracker.Income()})
}
