package placementservice

import (
	"log/slog"

	httpadapter "admarket/contexts/marketplace-core/placement-service/adapters/http"
	"admarket/contexts/marketplace-core/placement-service/adapters/memory"
	"admarket/contexts/marketplace-core/placement-service/application/commands"
	"admarket/contexts/marketplace-core/placement-service/application/queries"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Opportunities ports.OpportunityRepository
	Offers        ports.OfferRepository
	Ledger        ports.AvailabilityLedger
	Acceptance    ports.AcceptanceStore
	Bookings      ports.BookingRepository
	Processor     ports.PaymentProcessor
	Payouts       ports.PayoutDirectory
	Notifier      ports.NotificationEmitter
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createOpportunity := commands.CreateOpportunityUseCase{
		Opportunities: deps.Opportunities,
		Clock:         deps.Clock,
		IDGenerator:   deps.IDGenerator,
		Logger:        deps.Logger,
	}
	changeOpportunityStatus := commands.ChangeOpportunityStatusUseCase{
		Opportunities: deps.Opportunities,
		Clock:         deps.Clock,
		Logger:        deps.Logger,
	}
	proposeOffer := commands.ProposeOfferUseCase{
		Opportunities: deps.Opportunities,
		Offers:        deps.Offers,
		Notifier:      deps.Notifier,
		Clock:         deps.Clock,
		IDGenerator:   deps.IDGenerator,
		Logger:        deps.Logger,
	}
	mutateOffer := commands.MutateOfferUseCase{
		Offers:      deps.Offers,
		Ledger:      deps.Ledger,
		Acceptance:  deps.Acceptance,
		Notifier:    deps.Notifier,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	createBooking := commands.CreateBookingUseCase{
		Opportunities: deps.Opportunities,
		Offers:        deps.Offers,
		Bookings:      deps.Bookings,
		Notifier:      deps.Notifier,
		Clock:         deps.Clock,
		IDGenerator:   deps.IDGenerator,
		Logger:        deps.Logger,
	}
	transitionBooking := commands.TransitionBookingUseCase{
		Bookings: deps.Bookings,
		Notifier: deps.Notifier,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	createPaymentIntent := commands.CreatePaymentIntentUseCase{
		Bookings:  deps.Bookings,
		Processor: deps.Processor,
		Payouts:   deps.Payouts,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateOpportunity:       createOpportunity,
			ChangeOpportunityStatus: changeOpportunityStatus,
			ProposeOffer:            proposeOffer,
			MutateOffer:             mutateOffer,
			CreateBooking:           createBooking,
			TransitionBooking:       transitionBooking,
			CreatePaymentIntent:     createPaymentIntent,
			GetOpportunity:          queries.GetOpportunityUseCase{Opportunities: deps.Opportunities, Logger: deps.Logger},
			ListOpportunities:       queries.ListOpportunitiesUseCase{Opportunities: deps.Opportunities, Logger: deps.Logger},
			ListAvailability:        queries.ListAvailabilityUseCase{Opportunities: deps.Opportunities, Ledger: deps.Ledger, Logger: deps.Logger},
			GetOffer:                queries.GetOfferUseCase{Offers: deps.Offers, Logger: deps.Logger},
			ListOffers:              queries.ListOffersUseCase{Offers: deps.Offers, Logger: deps.Logger},
			GetBooking:              queries.GetBookingUseCase{Bookings: deps.Bookings, Logger: deps.Logger},
			ListBookings:            queries.ListBookingsUseCase{Bookings: deps.Bookings, Logger: deps.Logger},
			Logger:                  deps.Logger,
		},
	}
}

// NewInMemoryModule wires every port to one in-memory store. The store also
// serves as the recording notification emitter and payment processor, which
// is what the application tests and the dev runtime use. Pass a non-nil
// notifier to route notifications elsewhere.
func NewInMemoryModule(seed []entities.Opportunity, notifier ports.NotificationEmitter, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	if notifier == nil {
		notifier = store
	}
	module := NewModule(Dependencies{
		Opportunities: store,
		Offers:        store,
		Ledger:        store,
		Acceptance:    store,
		Bookings:      store,
		Processor:     store,
		Payouts:       store,
		Notifier:      notifier,
		Clock:         store,
		IDGenerator:   store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
