package httpserver

import (
	"encoding/json"
	"net/http"

	placementhttp "admarket/contexts/marketplace-core/placement-service/transport/http"
)

func (s *Server) handleCreateOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	var req placementhttp.CreateOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlacementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.placement.Handler.CreateOpportunityHandler(r.Context(), actor, req)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeAuthError(w, err)
		return
	}

	query := r.URL.Query()
	resp, err := s.placement.Handler.ListOpportunitiesHandler(
		r.Context(),
		query.Get("publisher_id"),
		query.Get("status"),
	)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeAuthError(w, err)
		return
	}

	resp, err := s.placement.Handler.GetOpportunityHandler(r.Context(), r.PathValue("opportunity_id"))
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeOpportunityStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	var req placementhttp.OpportunityStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlacementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.placement.Handler.ChangeOpportunityStatusHandler(
		r.Context(),
		actor,
		r.PathValue("opportunity_id"),
		req,
	)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAvailability(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeAuthError(w, err)
		return
	}

	resp, err := s.placement.Handler.ListAvailabilityHandler(r.Context(), r.PathValue("opportunity_id"))
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProposeOffer(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	var req placementhttp.ProposeOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlacementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.placement.Handler.ProposeOfferHandler(r.Context(), actor, req)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	query := r.URL.Query()
	resp, err := s.placement.Handler.ListOffersHandler(
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

func (s *Server) handleGetOffer(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	resp, err := s.placement.Handler.GetOfferHandler(r.Context(), actor, r.PathValue("offer_id"))
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMutateOffer(w http.ResponseWriter, r *http.Request) {
	actor, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	var req placementhttp.MutateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlacementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.placement.Handler.MutateOfferHandler(r.Context(), actor, r.PathValue("offer_id"), req)
	if err != nil {
		writePlacementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
