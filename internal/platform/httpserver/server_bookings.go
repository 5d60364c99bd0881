package httpserver

import (
	"encoding/json"
	"net/http"

	placementhttp "admarket/contexts/marketplace-core/placement-service/transport/http"
)

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	var req placementhttp.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlacementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.placement.Handler.CreateBookingHandler(r.Context(), actor, req)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	query := r.URL.Query()
	resp, err := s.placement.Handler.ListBookingsHandler(
		r.Context(),
		actor,
		query.Get("opportunity_id"),
		query.Get("status"),
	)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	resp, err := s.placement.Handler.GetBookingHandler(r.Context(), actor, r.PathValue("booking_id"))
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMutateBooking(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	var req placementhttp.MutateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlacementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.placement.Handler.MutateBookingHandler(r.Context(), actor, r.PathValue("booking_id"), req)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	resp, err := s.placement.Handler.CreatePaymentIntentHandler(r.Context(), actor, r.PathValue("booking_id"))
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
