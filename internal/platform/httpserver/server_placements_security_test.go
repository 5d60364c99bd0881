package httpserver

import (
	"net/http"
	"testing"

	sessionentities "admarket/contexts/identity-access/session-service/domain/entities"
)

func TestCreateOpportunityRequiresAuthorization(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/opportunities", "", map[string]any{
		"title":      "Homepage banner",
		"base_price": 1000.0,
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateOpportunityRejectsGarbageToken(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/opportunities", "Bearer not-a-jwt", map[string]any{
		"title":      "Homepage banner",
		"base_price": 1000.0,
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateOpportunityRejectsAdvertiserRole(t *testing.T) {
	server := newTestServer()
	auth := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/opportunities", auth, map[string]any{
		"title":      "Homepage banner",
		"base_price": 1000.0,
		"currency":   "USD",
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestChangeStatusRejectsForeignPublisher(t *testing.T) {
	server := newTestServer()
	owner := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	intruder := bearerToken(t, server, "pub-2", sessionentities.RolePublisher)

	opportunityID := mustCreatePublishedOpportunity(t, server, owner, "", "")

	rr := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/opportunities/"+opportunityID+"/status",
		intruder, map[string]any{"action": "pause"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestArchivedOpportunityCannotBeRepublished(t *testing.T) {
	server := newTestServer()
	auth := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)

	opportunityID := mustCreatePublishedOpportunity(t, server, auth, "", "")

	archiveRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/opportunities/"+opportunityID+"/status",
		auth, map[string]any{"action": "archive"})
	if archiveRR.Code != http.StatusOK {
		t.Fatalf("expected 200 archive, got %d body=%s", archiveRR.Code, archiveRR.Body.String())
	}

	publishRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/opportunities/"+opportunityID+"/status",
		auth, map[string]any{"action": "publish"})
	if publishRR.Code != http.StatusConflict {
		t.Fatalf("expected 409 republish, got %d body=%s", publishRR.Code, publishRR.Body.String())
	}
}

func TestProposeOfferRejectsPublisherRole(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/offers", publisher, map[string]any{
		"opportunity_id": opportunityID,
		"proposed_price": 500.0,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProposeOfferAgainstDraftReturnsNotFound(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	createRR := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/opportunities", publisher, map[string]any{
		"title":      "Sidebar slot",
		"base_price": 200.0,
		"currency":   "USD",
	})
	if createRR.Code != http.StatusCreated {
		t.Fatalf("expected 201 create, got %d body=%s", createRR.Code, createRR.Body.String())
	}
	var created struct {
		Opportunity struct {
			OpportunityID string `json:"opportunity_id"`
		} `json:"opportunity"`
	}
	decodeBody(t, createRR, &created)

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/offers", advertiser, map[string]any{
		"opportunity_id": created.Opportunity.OpportunityID,
		"proposed_price": 150.0,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft opportunity, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetOfferHiddenFromThirdParties(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)
	outsider := bearerToken(t, server, "adv-2", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")

	proposeRR := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/offers", advertiser, map[string]any{
		"opportunity_id": opportunityID,
		"proposed_price": 800.0,
	})
	if proposeRR.Code != http.StatusCreated {
		t.Fatalf("expected 201 propose, got %d body=%s", proposeRR.Code, proposeRR.Body.String())
	}
	var proposed struct {
		Offer struct {
			OfferID string `json:"offer_id"`
		} `json:"offer"`
	}
	decodeBody(t, proposeRR, &proposed)

	rr := doJSON(t, server, http.MethodGet, "/api/marketplace/v1/offers/"+proposed.Offer.OfferID, outsider, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for third party, got %d body=%s", rr.Code, rr.Body.String())
	}
}
