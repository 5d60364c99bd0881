package httpserver

import "net/http"

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	resp, err := s.notifications.Handler.ListNotificationsHandler(r.Context(), actor.UserID, unreadOnly)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	resp, err := s.notifications.Handler.MarkReadHandler(r.Context(), actor.UserID, r.PathValue("notification_id"))
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
