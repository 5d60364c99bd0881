package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	sessionservice "admarket/contexts/identity-access/session-service"
	notificationservice "admarket/contexts/internal-ops/notification-service"
	notificationapp "admarket/contexts/internal-ops/notification-service/application"
	notificationpostgres "admarket/contexts/internal-ops/notification-service/adapters/postgres"
	placementservice "admarket/contexts/marketplace-core/placement-service"
	placementpostgres "admarket/contexts/marketplace-core/placement-service/adapters/postgres"
	stripeadapter "admarket/contexts/marketplace-core/placement-service/adapters/stripe"
	placementports "admarket/contexts/marketplace-core/placement-service/ports"
	"admarket/internal/platform/config"
	"admarket/internal/platform/db"
	"admarket/internal/platform/httpserver"
	"admarket/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server               *httpserver.Server
	postgres             *db.Postgres
	bus                  *messaging.Bus
	notificationsService notificationapp.Service
	fanout               bool
	logger               *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	bus := messaging.NewBus(logger)

	var (
		pg            *db.Postgres
		placement     placementservice.Module
		notifications notificationservice.Module
	)

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		repo := placementpostgres.NewRepository(pg.DB, logger)
		var processor placementports.PaymentProcessor
		if strings.TrimSpace(cfg.StripeSecretKey) != "" {
			processor = stripeadapter.NewProcessor(cfg.StripeSecretKey, logger)
		}
		placement = placementservice.NewModule(placementservice.Dependencies{
			Opportunities: repo,
			Offers:        repo,
			Ledger:        repo,
			Acceptance:    repo,
			Bookings:      repo,
			Processor:     processor,
			Payouts:       repo,
			Notifier:      bus,
			Clock:         placementpostgres.SystemClock{},
			IDGenerator:   placementpostgres.UUIDGenerator{},
			Logger:        logger,
		})

		notifications = notificationservice.NewModule(notificationservice.Dependencies{
			Repository:  notificationpostgres.NewRepository(pg.DB, logger),
			Clock:       notificationpostgres.SystemClock{},
			IDGenerator: notificationpostgres.UUIDGenerator{},
			Logger:      logger,
		})
	} else {
		// Development fallback: everything in memory, payments recorded by
		// the store's processor fake.
		notifications = notificationservice.NewInMemoryModule(logger)
		placement = placementservice.NewInMemoryModule(nil, bus, logger)
	}

	sessions := sessionservice.NewModule(cfg.SessionSecret, cfg.SessionTTL)

	server := httpserver.New(placement, notifications, sessions, logger, normalizeAddr(cfg.HTTPPort))
	app := &APIApp{
		server:   server,
		postgres: pg,
		bus:      bus,
		fanout:   cfg.EnableNotificationFanout,
		logger:   logger,
	}
	app.notificationsService = notifications.Service
	return app, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.fanout {
		if err := a.subscribeNotifications(ctx); err != nil {
			return err
		}
	}
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) subscribeNotifications(ctx context.Context) error {
	service := a.notificationsService
	return a.bus.Subscribe(ctx, "notification-service-cg",
		func(ctx context.Context, note placementports.Notification) error {
			_, err := service.Record(ctx, notificationapp.RecordInput{
				RecipientID: note.RecipientID,
				ActorID:     note.ActorID,
				Kind:        note.Kind,
				ReferenceID: note.ReferenceID,
				Message:     note.Message,
			})
			return err
		})
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
