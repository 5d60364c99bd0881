package httpserver

import (
	"net/http"
	"testing"

	sessionentities "admarket/contexts/identity-access/session-service/domain/entities"
	placementhttp "admarket/contexts/marketplace-core/placement-service/transport/http"
)

func createBooking(t *testing.T, server *Server, auth, opportunityID, start, end string, price float64) placementhttp.BookingDTO {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/bookings", auth, map[string]any{
		"opportunity_id":  opportunityID,
		"requested_start": start,
		"requested_end":   end,
		"selected_price":  price,
		"currency":        "USD",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 booking, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp placementhttp.CreateBookingResponse
	decodeBody(t, rr, &resp)
	return resp.Booking
}

func bookingAction(t *testing.T, server *Server, auth, bookingID string, payload map[string]any) *placementhttp.MutateBookingResponse {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/bookings/"+bookingID+"/actions", auth, payload)
	if rr.Code != http.StatusOK {
		t.Fatalf("action %v: expected 200, got %d body=%s", payload["action"], rr.Code, rr.Body.String())
	}
	var resp placementhttp.MutateBookingResponse
	decodeBody(t, rr, &resp)
	return &resp
}

func TestDirectBookingLifecycle(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher,
		"2026-09-01T00:00:00Z", "2026-10-01T00:00:00Z")
	booking := createBooking(t, server, advertiser, opportunityID,
		"2026-09-10T00:00:00Z", "2026-09-15T00:00:00Z", 1000)
	if booking.Status != "pending" || booking.PaymentStatus != "pending" {
		t.Fatalf("expected pending/pending start, got %s/%s", booking.Status, booking.PaymentStatus)
	}

	accepted := bookingAction(t, server, publisher, booking.BookingID, map[string]any{"action": "accept"})
	if accepted.Booking.Status != "accepted" {
		t.Fatalf("expected accepted, got %q", accepted.Booking.Status)
	}

	delivered := bookingAction(t, server, publisher, booking.BookingID, map[string]any{
		"action":          "deliver",
		"delivered_files": []string{"https://cdn.example.com/banner-proof.png"},
		"delivery_notes":  "Ran the full window",
	})
	if delivered.Booking.Status != "delivered" || delivered.Booking.DeliveredAt == "" {
		t.Fatalf("expected delivered with timestamp, got %+v", delivered.Booking)
	}

	approved := bookingAction(t, server, advertiser, booking.BookingID, map[string]any{"action": "approve"})
	if approved.Booking.Status != "completed" || approved.Booking.ApprovedAt == "" {
		t.Fatalf("expected completed with approval, got %+v", approved.Booking)
	}
}

func TestBookingOutsideAvailabilityBounds(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher,
		"2026-09-01T00:00:00Z", "2026-09-30T00:00:00Z")

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/bookings", advertiser, map[string]any{
		"opportunity_id":  opportunityID,
		"requested_start": "2026-09-25T00:00:00Z",
		"requested_end":   "2026-10-05T00:00:00Z",
		"selected_price":  1000.0,
		"currency":        "USD",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 out-of-bounds booking, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBookingInvertedWindowRejected(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")

	rr := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/bookings", advertiser, map[string]any{
		"opportunity_id":  opportunityID,
		"requested_start": "2026-09-15T00:00:00Z",
		"requested_end":   "2026-09-10T00:00:00Z",
		"selected_price":  1000.0,
		"currency":        "USD",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 inverted window, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeliverRequiresAcceptedBooking(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	booking := createBooking(t, server, advertiser, opportunityID,
		"2026-09-10T00:00:00Z", "2026-09-15T00:00:00Z", 1000)

	rr := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/bookings/"+booking.BookingID+"/actions",
		publisher, map[string]any{"action": "deliver"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 deliver on pending, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBookingPermissionMatrix(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	booking := createBooking(t, server, advertiser, opportunityID,
		"2026-09-10T00:00:00Z", "2026-09-15T00:00:00Z", 1000)

	// The advertiser cannot act on the publisher's side of the matrix.
	for _, action := range []string{"accept", "reject", "deliver"} {
		rr := doJSON(t, server, http.MethodPost,
			"/api/marketplace/v1/bookings/"+booking.BookingID+"/actions",
			advertiser, map[string]any{"action": action})
		if rr.Code != http.StatusForbidden {
			t.Fatalf("advertiser action %q: expected 403, got %d body=%s", action, rr.Code, rr.Body.String())
		}
	}

	bookingAction(t, server, publisher, booking.BookingID, map[string]any{"action": "accept"})
	bookingAction(t, server, publisher, booking.BookingID, map[string]any{
		"action":          "deliver",
		"delivered_files": []string{"https://cdn.example.com/proof.png"},
	})

	// The publisher cannot approve or dispute their own delivery.
	for _, action := range []string{"approve", "dispute"} {
		rr := doJSON(t, server, http.MethodPost,
			"/api/marketplace/v1/bookings/"+booking.BookingID+"/actions",
			publisher, map[string]any{"action": action, "dispute_reason": "x"})
		if rr.Code != http.StatusForbidden {
			t.Fatalf("publisher action %q: expected 403, got %d body=%s", action, rr.Code, rr.Body.String())
		}
	}
}

func TestDisputeFromDelivered(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	booking := createBooking(t, server, advertiser, opportunityID,
		"2026-09-10T00:00:00Z", "2026-09-15T00:00:00Z", 1000)

	bookingAction(t, server, publisher, booking.BookingID, map[string]any{"action": "accept"})
	bookingAction(t, server, publisher, booking.BookingID, map[string]any{"action": "deliver"})

	disputed := bookingAction(t, server, advertiser, booking.BookingID, map[string]any{
		"action":         "dispute",
		"dispute_reason": "Creative never ran",
	})
	if disputed.Booking.Status != "disputed" || disputed.Booking.DisputeReason == "" {
		t.Fatalf("expected disputed with reason, got %+v", disputed.Booking)
	}
}

func TestPaymentIntentMintedAtMostOnce(t *testing.T) {
	server := newTestServer()
	publisher := bearerToken(t, server, "pub-1", sessionentities.RolePublisher)
	advertiser := bearerToken(t, server, "adv-1", sessionentities.RoleAdvertiser)

	opportunityID := mustCreatePublishedOpportunity(t, server, publisher, "", "")
	booking := createBooking(t, server, advertiser, opportunityID,
		"2026-09-10T00:00:00Z", "2026-09-15T00:00:00Z", 1000)

	// Payment requires an accepted booking.
	earlyRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/bookings/"+booking.BookingID+"/payment-intent", advertiser, nil)
	if earlyRR.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 payment on pending, got %d body=%s", earlyRR.Code, earlyRR.Body.String())
	}

	bookingAction(t, server, publisher, booking.BookingID, map[string]any{"action": "accept"})

	// The publisher is not the payer.
	forbiddenRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/bookings/"+booking.BookingID+"/payment-intent", publisher, nil)
	if forbiddenRR.Code != http.StatusForbidden {
		t.Fatalf("expected 403 publisher payment, got %d body=%s", forbiddenRR.Code, forbiddenRR.Body.String())
	}

	firstRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/bookings/"+booking.BookingID+"/payment-intent", advertiser, nil)
	if firstRR.Code != http.StatusOK {
		t.Fatalf("expected 200 payment intent, got %d body=%s", firstRR.Code, firstRR.Body.String())
	}
	var first placementhttp.CreatePaymentIntentResponse
	decodeBody(t, firstRR, &first)
	if first.Replayed {
		t.Fatal("first mint must not be a replay")
	}
	if first.PaymentIntentID == "" || first.ClientSecret == "" {
		t.Fatalf("expected intent id and client secret, got %+v", first)
	}
	if first.PlatformFee != 100 || first.PublisherPayout != 900 {
		t.Fatalf("expected 10%% fee split 100/900, got %v/%v", first.PlatformFee, first.PublisherPayout)
	}

	secondRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/bookings/"+booking.BookingID+"/payment-intent", advertiser, nil)
	if secondRR.Code != http.StatusOK {
		t.Fatalf("expected 200 replay, got %d body=%s", secondRR.Code, secondRR.Body.String())
	}
	var second placementhttp.CreatePaymentIntentResponse
	decodeBody(t, secondRR, &second)
	if !second.Replayed {
		t.Fatal("second mint must be a replay")
	}
	if second.PaymentIntentID != first.PaymentIntentID {
		t.Fatalf("replay must return the stored intent id, got %q vs %q", second.PaymentIntentID, first.PaymentIntentID)
	}
	if second.ClientSecret != "" {
		t.Fatal("replay must not return a client secret")
	}
}
