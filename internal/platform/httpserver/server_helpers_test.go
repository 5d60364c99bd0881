package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionservice "admarket/contexts/identity-access/session-service"
	sessionentities "admarket/contexts/identity-access/session-service/domain/entities"
	notificationservice "admarket/contexts/internal-ops/notification-service"
	notificationapp "admarket/contexts/internal-ops/notification-service/application"
	placementservice "admarket/contexts/marketplace-core/placement-service"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

const testSessionSecret = "test-session-secret"

// recordingNotifier routes placement notifications synchronously into the
// notification service, standing in for the async bus.
type recordingNotifier struct {
	service notificationapp.Service
}

func (n recordingNotifier) Notify(ctx context.Context, note ports.Notification) error {
	_, err := n.service.Record(ctx, notificationapp.RecordInput{
		RecipientID: note.RecipientID,
		ActorID:     note.ActorID,
		Kind:        note.Kind,
		ReferenceID: note.ReferenceID,
		Message:     note.Message,
	})
	return err
}

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifications := notificationservice.NewInMemoryModule(logger)
	placement := placementservice.NewInMemoryModule(nil, recordingNotifier{service: notifications.Service}, logger)
	sessions := sessionservice.NewModule(testSessionSecret, time.Hour)
	return New(placement, notifications, sessions, logger, ":0")
}

func bearerToken(t *testing.T, server *Server, userID string, role sessionentities.Role) string {
	t.Helper()
	token, err := server.sessions.Tokens.Issue(sessionentities.Session{UserID: userID, Role: role}, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, server *Server, method, path, auth string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %s: %v", rr.Body.String(), err)
	}
}

func mustCreatePublishedOpportunity(t *testing.T, server *Server, publisherAuth string, from, to string) string {
	t.Helper()
	createRR := doJSON(t, server, http.MethodPost, "/api/marketplace/v1/opportunities", publisherAuth, map[string]any{
		"title":          "Homepage banner",
		"description":    "Top slot on the homepage",
		"base_price":     1000.0,
		"currency":       "USD",
		"available_from": from,
		"available_to":   to,
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

	publishRR := doJSON(t, server, http.MethodPost,
		"/api/marketplace/v1/opportunities/"+created.Opportunity.OpportunityID+"/status",
		publisherAuth, map[string]any{"action": "publish"})
	if publishRR.Code != http.StatusOK {
		t.Fatalf("expected 200 publish, got %d body=%s", publishRR.Code, publishRR.Body.String())
	}
	return created.Opportunity.OpportunityID
}
