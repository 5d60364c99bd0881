package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"admarket/contexts/marketplace-core/placement-service/adapters/memory"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

func seedOpportunity() entities.Opportunity {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return entities.Opportunity{
		OpportunityID: "opp-1",
		PublisherID:   "pub-1",
		Title:         "Homepage banner",
		BasePrice:     1000,
		Currency:      "USD",
		Status:        entities.OpportunityStatusPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func acceptedOffer(id string) entities.Offer {
	now := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	return entities.Offer{
		OfferID:       id,
		OpportunityID: "opp-1",
		AdvertiserID:  "adv-" + id,
		PublisherID:   "pub-1",
		Status:        entities.OfferStatusAccepted,
		ProposedPrice: 1000,
		Currency:      "USD",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func window(id string, start, end time.Time) entities.AvailabilityWindow {
	return entities.AvailabilityWindow{
		WindowID:      id,
		OpportunityID: "opp-1",
		StartAt:       start,
		EndAt:         end,
		Booked:        true,
		CreatedAt:     start,
	}
}

func TestCommitAcceptanceRejectsOverlap(t *testing.T) {
	store := memory.NewStore([]entities.Opportunity{seedOpportunity()})
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	for _, id := range []string{"off-1", "off-2"} {
		if err := store.CreateOffer(ctx, acceptedOffer(id)); err != nil {
			t.Fatalf("create offer %s: %v", id, err)
		}
	}

	if err := store.CommitAcceptance(ctx, acceptedOffer("off-1"), window("win-1", start, end)); err != nil {
		t.Fatalf("first acceptance: %v", err)
	}
	err := store.CommitAcceptance(ctx, acceptedOffer("off-2"), window("win-2", start.AddDate(0, 0, 2), end.AddDate(0, 0, 2)))
	if !errors.Is(err, domainerrors.ErrWindowConflict) {
		t.Fatalf("expected window conflict, got %v", err)
	}

	windows, err := store.ListWindows(ctx, "opp-1")
	if err != nil {
		t.Fatalf("list windows: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 ledger window, got %d", len(windows))
	}

	opportunity, err := store.GetOpportunity(ctx, "opp-1")
	if err != nil {
		t.Fatalf("get opportunity: %v", err)
	}
	if opportunity.Status != entities.OpportunityStatusBooked {
		t.Fatalf("opportunity not flipped, status %q", opportunity.Status)
	}
}

func TestCommitAcceptanceAllowsTouchingWindows(t *testing.T) {
	store := memory.NewStore([]entities.Opportunity{seedOpportunity()})
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mid := start.AddDate(0, 0, 5)
	end := mid.AddDate(0, 0, 5)

	for _, id := range []string{"off-1", "off-2"} {
		if err := store.CreateOffer(ctx, acceptedOffer(id)); err != nil {
			t.Fatalf("create offer %s: %v", id, err)
		}
	}

	if err := store.CommitAcceptance(ctx, acceptedOffer("off-1"), window("win-1", start, mid)); err != nil {
		t.Fatalf("first acceptance: %v", err)
	}
	if err := store.CommitAcceptance(ctx, acceptedOffer("off-2"), window("win-2", mid, end)); err != nil {
		t.Fatalf("back-to-back window rejected: %v", err)
	}
}

func TestCommitAcceptanceConcurrentWinnersExactlyOne(t *testing.T) {
	store := memory.NewStore([]entities.Opportunity{seedOpportunity()})
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	const contenders = 16
	for i := 0; i < contenders; i++ {
		id := fmt.Sprintf("off-%d", i)
		if err := store.CreateOffer(ctx, acceptedOffer(id)); err != nil {
			t.Fatalf("create offer %s: %v", id, err)
		}
	}

	errs := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("off-%d", i)
			errs[i] = store.CommitAcceptance(ctx, acceptedOffer(id), window("win-"+id, start, end))
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, domainerrors.ErrWindowConflict):
		default:
			t.Fatalf("contender %d: unexpected error %v", i, err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one acceptance to commit, got %d", winners)
	}

	windows, err := store.ListWindows(ctx, "opp-1")
	if err != nil {
		t.Fatalf("list windows: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 ledger window, got %d", len(windows))
	}
}

func TestCreateIntentRecordsMint(t *testing.T) {
	store := memory.NewStore(nil)

	result, err := store.CreateIntent(context.Background(), ports.PaymentIntentRequest{
		BookingID: "bk-1",
		Amount:    1000,
		Currency:  "USD",
	})
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if result.IntentID == "" || result.ClientSecret == "" {
		t.Fatalf("incomplete intent %+v", result)
	}
	if minted := store.MintedIntents(); len(minted) != 1 || minted[0].BookingID != "bk-1" {
		t.Fatalf("unexpected mint log %+v", minted)
	}
}
