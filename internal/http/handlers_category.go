package http

import (
	"errors"
	"net/http"
	"strings"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, categoriesResponse{Categories: s.tracker.Categories()})
	case http.MethodPost:
		s.createCategory(w, r)
	case http.MethodDelete:
		s.deleteCategory(w, r)
	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := s.tracker.AddCategory(r.Context(), req.Name); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, categoriesResponse{Categories: s.tracker.Categories()})
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", errors.New("name query parameter is required"))
		return
	}
	if err := s.tracker.DeleteCategory(r.Context(), name); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, categoriesResponse{Categories: s.tracker.Categories()})
}
