package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sessionservice "admarket/contexts/identity-access/session-service"
	sessionerrors "admarket/contexts/identity-access/session-service/domain/errors"
	notificationservice "admarket/contexts/internal-ops/notification-service"
	notificationerrors "admarket/contexts/internal-ops/notification-service/domain/errors"
	notificationhttp "admarket/contexts/internal-ops/notification-service/transport/http"
	placementservice "admarket/contexts/marketplace-core/placement-service"
	placementerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	placementhttp "admarket/contexts/marketplace-core/placement-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "admarket/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	placement     placementservice.Module
	notifications notificationservice.Module
	sessions      sessionservice.Module
}

func New(
	placement placementservice.Module,
	notifications notificationservice.Module,
	sessions sessionservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		placement:     placement,
		notifications: notifications,
		sessions:      sessions,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/marketplace/v1/opportunities", s.handleCreateOpportunity)
	s.mux.HandleFunc("GET /api/marketplace/v1/opportunities", s.handleListOpportunities)
	s.mux.HandleFunc("GET /api/marketplace/v1/opportunities/{opportunity_id}", s.handleGetOpportunity)
	s.mux.HandleFunc("POST /api/marketplace/v1/opportunities/{opportunity_id}/status", s.handleChangeOpportunityStatus)
	s.mux.HandleFunc("GET /api/marketplace/v1/opportunities/{opportunity_id}/availability", s.handleListAvailability)

	s.mux.HandleFunc("POST /api/marketplace/v1/offers", s.handleProposeOffer)
	s.mux.HandleFunc("GET /api/marketplace/v1/offers", s.handleListOffers)
	s.mux.HandleFunc("GET /api/marketplace/v1/offers/{offer_id}", s.handleGetOffer)
	s.mux.HandleFunc("POST /api/marketplace/v1/offers/{offer_id}/actions", s.handleMutateOffer)

	s.mux.HandleFunc("POST /api/marketplace/v1/bookings", s.handleCreateBooking)
	s.mux.HandleFunc("GET /api/marketplace/v1/bookings", s.handleListBookings)
	s.mux.HandleFunc("GET /api/marketplace/v1/bookings/{booking_id}", s.handleGetBooking)
	s.mux.HandleFunc("POST /api/marketplace/v1/bookings/{booking_id}/actions", s.handleMutateBooking)
	s.mux.HandleFunc("POST /api/marketplace/v1/bookings/{booking_id}/payment-intent", s.handleCreatePaymentIntent)

	s.mux.HandleFunc("GET /api/notifications/v1/notifications", s.handleListNotifications)
	s.mux.HandleFunc("POST /api/notifications/v1/notifications/{notification_id}/read", s.handleMarkNotificationRead)
}

// authenticate resolves the caller from the Authorization header. Every
// marketplace route requires it; there is no anonymous surface.
func (s *Server) authenticate(r *http.Request) (entities.Actor, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return entities.Actor{}, sessionerrors.ErrMissingToken
	}
	token := header
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		token = strings.TrimSpace(header[len("Bearer "):])
	}

	session, err := s.sessions.Tokens.Verify(token)
	if err != nil {
		return entities.Actor{}, err
	}
	return entities.Actor{
		UserID: session.UserID,
		Role:   entities.ActorRole(session.Role),
	}, nil
}

func writePlacementDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, placementerrors.ErrOpportunityNotFound),
		errors.Is(err, placementerrors.ErrOpportunityNotBookable):
		writePlacementError(w, http.StatusNotFound, "opportunity_not_found", err.Error())
	case errors.Is(err, placementerrors.ErrOfferNotFound):
		writePlacementError(w, http.StatusNotFound, "offer_not_found", err.Error())
	case errors.Is(err, placementerrors.ErrBookingNotFound):
		writePlacementError(w, http.StatusNotFound, "booking_not_found", err.Error())
	case errors.Is(err, placementerrors.ErrForbidden):
		writePlacementError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, placementerrors.ErrOfferTerminal):
		writePlacementError(w, http.StatusConflict, "offer_terminal", err.Error())
	case errors.Is(err, placementerrors.ErrWindowConflict):
		writePlacementError(w, http.StatusConflict, "window_conflict", err.Error())
	case errors.Is(err, placementerrors.ErrInvalidOpportunityTransition):
		writePlacementError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, placementerrors.ErrInvalidWindow):
		writePlacementError(w, http.StatusBadRequest, "invalid_window", err.Error())
	case errors.Is(err, placementerrors.ErrInvalidOffer):
		writePlacementError(w, http.StatusBadRequest, "invalid_offer", err.Error())
	case errors.Is(err, placementerrors.ErrInvalidBookingState):
		writePlacementError(w, http.StatusBadRequest, "invalid_booking_state", err.Error())
	case errors.Is(err, placementerrors.ErrAlreadyPaid):
		writePlacementError(w, http.StatusBadRequest, "already_paid", err.Error())
	case errors.Is(err, placementerrors.ErrInvalidInput):
		writePlacementError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writePlacementError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrNotificationNotFound):
		writeNotificationError(w, http.StatusNotFound, "notification_not_found", err.Error())
	case errors.Is(err, notificationerrors.ErrForbidden):
		writeNotificationError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, notificationerrors.ErrInvalidNotification):
		writeNotificationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeNotificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	message := "authentication required"
	if err != nil {
		message = err.Error()
	}
	writePlacementError(w, http.StatusUnauthorized, "unauthorized", message)
}

func writePlacementError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, placementhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeNotificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, notificationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
