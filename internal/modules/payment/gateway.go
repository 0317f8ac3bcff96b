package payment

import (
	"context"
	"math"
	"time"
)

// Order is the gateway-side payment order created for a booking. Amount is
// in minor currency units (paise for INR), so a 5000.00 booking becomes
// 500000.
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Gateway is the capability set the booking flow needs from a payment
// provider. Two variants implement it: MockGateway for local/test use and
// RazorpayGateway for the real provider. The booking flow never knows
// which one is wired in.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func nowUnix() int64 { return time.Now().Unix() }
