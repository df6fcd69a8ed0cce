package http

import (
	"net/http"

	"expensetracker/internal/notify"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	writeJSON(w, r, http.StatusOK, s.cachedSummary())
}

type notificationResponse struct {
	Notification *notify.Message `json:"notification"`
}

// handleNotification returns the current transient message, or a null
// notification once it has expired.
func (s *Server) handleNotification(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	resp := notificationResponse{}
	if msg, ok := s.tracker.Notification(); ok {
		resp.Notification = &msg
	}
	writeJSON(w, r, http.StatusOK, resp)
}
