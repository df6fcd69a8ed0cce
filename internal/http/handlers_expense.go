package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"expensetracker/internal/tracker"
)

type lineItemRequest struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type expenseRequest struct {
	Date     string            `json:"date"`
	Category string            `json:"category"`
	Items    []lineItemRequest `json:"items"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r)
	case http.MethodPost:
		s.createExpense(w, r)
	case http.MethodDelete:
		s.deleteExpense(w, r)
	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.tracker.Expenses())
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err)
		return
	}

	items := make([]tracker.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, tracker.ItemInput{Name: it.Name, Amount: it.Amount})
	}

	exp, err := s.tracker.AddExpense(r.Context(), req.Date, req.Category, items)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, exp)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", errors.New("id must be an integer"))
		return
	}
	s.tracker.DeleteExpense(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}
