package services

import "math"

// PlatformFeeRate is the marketplace's fixed cut of every booking.
const PlatformFeeRate = 0.10

// SplitPrice divides a booking price into the platform fee and the publisher
// payout. Amounts are rounded to cents; the payout absorbs the remainder so
// fee + payout always equals the rounded price.
func SplitPrice(price float64) (fee float64, payout float64) {
	gross := round2(price)
	fee = round2(gross * PlatformFeeRate)
	payout = round2(gross - fee)
	if payout < 0 {
		payout = 0
	}
	return fee, payout
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
