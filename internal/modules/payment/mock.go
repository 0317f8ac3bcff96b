package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// MockGateway stands in for the real provider so the booking flow can be
// exercised end to end without network access. Any non-empty signature
// verifies.
type MockGateway struct{}

func NewMockGateway() *MockGateway { return &MockGateway{} }

func (g *MockGateway) CreateOrder(_ context.Context, amount float64, currency, receipt string) (*Order, error) {
	return &Order{
		ID:        "order_" + randomHex(8),
		Amount:    minorUnits(amount),
		Currency:  currency,
		Receipt:   receipt,
		Status:    "created",
		CreatedAt: nowUnix(),
	}, nil
}

func (g *MockGateway) VerifySignature(_, _ string, signature string) bool {
	return strings.TrimSpace(signature) != ""
}

// SimulatePaymentSuccess fabricates the callback fields a client would
// normally get from the provider's checkout page.
func (g *MockGateway) SimulatePaymentSuccess(orderID string) (paymentID, signature string) {
	return "pay_" + randomHex(8), randomHex(16)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}
