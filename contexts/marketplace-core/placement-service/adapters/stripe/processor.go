package stripeadapter

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"admarket/contexts/marketplace-core/placement-service/ports"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Processor mints payment intents against the Stripe API. Amounts arrive in
// major units and are converted to minor units before the call.
type Processor struct {
	api    *client.API
	logger *slog.Logger
}

func NewProcessor(secretKey string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Processor{
		api:    api,
		logger: logger,
	}
}

func (p *Processor) CreateIntent(ctx context.Context, req ports.PaymentIntentRequest) (ports.PaymentIntentResult, error) {
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(toMinorUnits(req.Amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", req.BookingID)
	if strings.TrimSpace(req.PayoutAccountID) != "" {
		params.ApplicationFeeAmount = stripe.Int64(toMinorUnits(req.ApplicationFee))
		params.TransferData = &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(strings.TrimSpace(req.PayoutAccountID)),
		}
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.logger.ErrorContext(ctx, "stripe payment intent creation failed",
			"event", "payment_intent_failed",
			"module", "placement",
			"layer", "adapter",
			"booking_id", req.BookingID,
			"error", err,
		)
		return ports.PaymentIntentResult{}, err
	}

	return ports.PaymentIntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
