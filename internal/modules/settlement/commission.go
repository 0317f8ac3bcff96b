package settlement

import "math"

// Quote is the platform/owner split for one booking amount.
type Quote struct {
	Rate             float64 `json:"rate"`
	CommissionAmount float64 `json:"commission_amount"`
	OwnerPayout      float64 `json:"owner_payout"`
}

// CalculateCommission splits a booking amount between the platform and the
// owner at the given percentage rate. Money is rounded to 2 decimal places
// (half away from zero); the payout is derived by subtraction so that
// commission + payout always equals the booking amount exactly.
func CalculateCommission(bookingAmount, rate float64) Quote {
	commission := round2(bookingAmount * rate / 100)
	return Quote{
		Rate:             rate,
		CommissionAmount: commission,
		OwnerPayout:      round2(bookingAmount - commission),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
