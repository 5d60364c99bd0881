package httpserver

import (
	"net/http"
	"testing"

	sessionentities "admarket/contexts/identity-access/session-service/domain/entities"
	placementhttp "admarket/contexts/marketplace-core/placement-service/transport/http"
)

func proposeOffer(t *testing.T, server *Server, auth, opportunityID, start, end string, price float64) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/offers", auth, map[string]any{
		"opportunity_id": opportunityID,
		"pricing_type":   "flat",
		"proposed_price": price,
		"currency":       "USD",
		"proposed_start": start,
		"proposed_end":   end,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 propose, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp placementhttp.ProposeOfferResponse
	decodeBody(t, rr, &resp)
	return resp.Offer.OfferID
}

func TestNegotiationCounterThenAccept(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher,
		"2026-09-01T00:00:00Z", "2026-10-01T00:00:00Z")
	offerID := proposeOffer(t, server, advertiser, opportunityID,
		"2026-09-01T00:00:00Z", "2026-09-05T00:00:00Z", 800)

	counterRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+offerID+"/actions",
		publisher, map[string]any{"action": "counter", "proposed_price": 950.0})
	if counterRR.Code != http.StatusOK {
		t.Fatalf("expected 200 counter, got %d body=%s", counterRR.Code, counterRR.Body.String())
	}
	var countered placementhttp.MutateOfferResponse
	decodeBody(t, counterRR, &countered)
	if countered.Offer.Status != "countered" {
		t.Fatalf("expected countered status, got %q", countered.Offer.Status)
	}
	if countered.Offer.ProposedPrice != 950 {
		t.Fatalf("expected countered price 950, got %v", countered.Offer.ProposedPrice)
	}
	if countered.Offer.ProposedStart == "" {
		t.Fatal("counter must retain the proposed window")
	}

	acceptRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+offerID+"/actions",
		publisher, map[string]any{"action": "accept"})
	if acceptRR.Code != http.StatusOK {
		t.Fatalf("expected 200 accept, got %d body=%s", acceptRR.Code, acceptRR.Body.String())
	}
	var accepted placementhttp.MutateOfferResponse
	decodeBody(t, acceptRR, &accepted)
	if accepted.Offer.Status != "accepted" {
		t.Fatalf("expected accepted status, got %q", accepted.Offer.Status)
	}
	if accepted.Offer.AcceptedAt == "" {
		t.Fatal("accepted offer must carry accepted_at")
	}

	oppRR := doJSON(t, server, http.MethodGet,
		"/api/marketplace/v1/opportunities/"+opportunityID, publisher, nil)
	if oppRR.Code != http.StatusOK {
		t.Fatalf("expected 200 get, got %d", oppRR.Code)
	}
	var opp placementhttp.GetOpportunityResponse
	decodeBody(t, oppRR, &opp)
	if opp.Opportunity.Status != "booked" {
		t.Fatalf("expected booked opportunity after accept, got %q", opp.Opportunity.Status)
	}

	availRR := doJSON(t, server, http.MethodGet,
		"/api/marketplace/v1/opportunities/"+opportunityID+"/availability", publisher, nil)
	if availRR.Code != http.StatusOK {
		t.Fatalf("expected 200 availability, got %d", availRR.Code)
	}
	var avail placementhttp.ListAvailabilityResponse
	decodeBody(t, availRR, &avail)
	if len(avail.Items) != 1 || !avail.Items[0].Booked {
		t.Fatalf("expected one booked ledger window, got %+v", avail.Items)
	}
}

func TestAcceptRejectsOverlappingWindow(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiserA := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)
	advertiserB := bearerToken(t, server, "adv-2", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	first := proposeOffer(t, server, advertiserA, opportunityID,
		"2026-09-01T00:00:00Z", "2026-09-05T00:00:00Z", 500)
	second := proposeOffer(t, server, advertiserB, opportunityID,
		"2026-09-03T00:00:00Z", "2026-09-07T00:00:00Z", 700)

	acceptFirst := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+first+"/actions",
		publisher, map[string]any{"action": "accept"})
	if acceptFirst.Code != http.StatusOK {
		t.Fatalf("expected 200 first accept, got %d body=%s", acceptFirst.Code, acceptFirst.Body.String())
	}

	acceptSecond := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+second+"/actions",
		publisher, map[string]any{"action": "accept"})
	if acceptSecond.Code != http.StatusConflict {
		t.Fatalf("expected 409 overlapping accept, got %d body=%s", acceptSecond.Code, acceptSecond.Body.String())
	}

	// The conflicting acceptance must leave no partial writes.
	offerRR := doJSON(t, server, http.MethodGet,
		"/api/marketplace/v1/offers/"+second, advertiserB, nil)
	var offer placementhttp.GetOfferResponse
	decodeBody(t, offerRR, &offer)
	if offer.Offer.Status != "pending" {
		t.Fatalf("expected second offer untouched, got %q", offer.Offer.Status)
	}

	availRR := doJSON(t, server, http.MethodGet,
		"/api/marketplace/v1/opportunities/"+opportunityID+"/availability", publisher, nil)
	var avail placementhttp.ListAvailabilityResponse
	decodeBody(t, availRR, &avail)
	if len(avail.Items) != 1 {
		t.Fatalf("expected a single ledger window, got %d", len(avail.Items))
	}
}

func TestTerminalOfferRejectsFurtherActions(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	offerID := proposeOffer(t, server, advertiser, opportunityID,
		"2026-09-01T00:00:00Z", "2026-09-05T00:00:00Z", 500)

	declineRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+offerID+"/actions",
		publisher, map[string]any{"action": "decline"})
	if declineRR.Code != http.StatusOK {
		t.Fatalf("expected 200 decline, got %d body=%s", declineRR.Code, declineRR.Body.String())
	}

	for _, action := range []string{"accept", "counter", "withdraw", "decline"} {
		rr := doJSON(t, server, http.MethodPost,
			"/api/marketplace/v1/offers/"+offerID+"/actions",
			publisher, map[string]any{"action": action})
		if rr.Code != http.StatusConflict {
			t.Fatalf("action %q on declined offer: expected 409, got %d body=%s", action, rr.Code, rr.Body.String())
		}
	}
}

func TestAcceptWithoutResolvedWindowReturnsBadRequest(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")

	proposeRR := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/offers", advertiser, map[string]any{
		"opportunity_id": opportunityID,
		"proposed_price": 500.0,
	})
	if proposeRR.Code != http.StatusCreated {
		t.Fatalf("expected 201 propose, got %d body=%s", proposeRR.Code, proposeRR.Body.String())
	}
	var proposed placementhttp.ProposeOfferResponse
	decodeBody(t, proposeRR, &proposed)

	rr := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+proposed.Offer.OfferID+"/actions",
		publisher, map[string]any{"action": "accept"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 accept without window, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestOfferLifecycleEmitsNotifications(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	offerID := proposeOffer(t, server, advertiser, opportunityID,
		"2026-09-01T00:00:00Z", "2026-09-05T00:00:00Z", 500)

	acceptRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/offers/"+offerID+"/actions",
		publisher, map[string]any{"action": "accept"})
	if acceptRR.Code != http.StatusOK {
		t.Fatalf("expected 200 accept, got %d body=%s", acceptRR.Code, acceptRR.Body.String())
	}

	listRR := doJSON(t, server, http.MethodGet, "/api/notifications/v1/notifications?unread=true", advertiser, nil)
	if listRR.Code != http.StatusOK {
		t.Fatalf("expected 200 notifications, got %d body=%s", listRR.Code, listRR.Body.String())
	}
	var list struct {
		Items []struct {
			NotificationID string `json:"notification_id"`
			Kind           string `json:"kind"`
			ReferenceID    string `json:"reference_id"`
		} `json:"items"`
	}
	decodeBody(t, listRR, &list)

	var acceptedNote string
	for _, item := range list.Items {
		if item.Kind == "offer_accepted" && item.ReferenceID == offerID {
			acceptedNote = item.NotificationID
		}
	}
	if acceptedNote == "" {
		t.Fatalf("expected offer_accepted notification for advertiser, got %+v", list.Items)
	}

	readRR := doJSON(t, server, http.MethodPost,
		"/api/notifications/v1/notifications/"+acceptedNote+"/read", advertiser, nil)
	if readRR.Code != http.StatusOK {
		t.Fatalf("expected 200 mark read, got %d body=%s", readRR.Code, readRR.Body.String())
	}

	foreignRR := doJSON(t, server, http.MethodPost,
		"/api/notifications/v1/notifications/"+acceptedNote+"/read", publisher, nil)
	if foreignRR.Code != http.StatusForbidden {
		t.Fatalf("expected 403 foreign mark read, got %d body=%s", foreignRR.Code, foreignRR.Body.String())
	}
}
