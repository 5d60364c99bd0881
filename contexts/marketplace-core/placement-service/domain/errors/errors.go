package errors

import "errors"

var (
	ErrOpportunityNotFound    = errors.New("opportunity not found")
	ErrOpportunityNotBookable = errors.New("opportunity is not open for booking")
	ErrOfferNotFound          = errors.New("offer not found")
	ErrBookingNotFound        = errors.New("booking not found")

	ErrForbidden    = errors.New("actor is not permitted to perform this action")
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidWindow = errors.New("placement window is invalid or outside availability bounds")
	ErrInvalidOffer  = errors.New("offer does not match the requesting advertiser and opportunity")

	ErrOfferTerminal  = errors.New("offer is in a terminal state")
	ErrWindowConflict = errors.New("window overlaps an existing booked window")

	ErrInvalidOpportunityTransition = errors.New("invalid opportunity status transition")
	ErrInvalidBookingState          = errors.New("action is not valid for the booking's current status")
	ErrAlreadyPaid                  = errors.New("booking is already paid")
)
