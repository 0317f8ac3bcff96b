package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestMockGatewayCreateOrder(t *testing.T) {
	g := NewMockGateway()
	order, err := g.CreateOrder(context.Background(), 5000, "INR", "booking_1")
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if order.Amount != 500000 {
		t.Fatalf("expected amount in minor units 500000, got %d", order.Amount)
	}
	if order.Currency != "INR" || order.Receipt != "booking_1" {
		t.Fatalf("unexpected order fields: %+v", order)
	}
	if order.ID == "" || order.Status != "created" {
		t.Fatalf("unexpected order identity: %+v", order)
	}
}

func TestMockGatewaySignature(t *testing.T) {
	g := NewMockGateway()
	if !g.VerifySignature("order_x", "pay_y", "anything") {
		t.Fatal("expected non-empty signature to verify")
	}
	if g.VerifySignature("order_x", "pay_y", "") {
		t.Fatal("expected empty signature to fail")
	}
	if g.VerifySignature("order_x", "pay_y", "   ") {
		t.Fatal("expected whitespace signature to fail")
	}
}

func TestRazorpaySignatureRoundTrip(t *testing.T) {
	g := NewRazorpayGateway("key_id", "key_secret")

	mac := hmac.New(sha256.New, []byte("key_secret"))
	mac.Write([]byte("order_abc|pay_def"))
	signature := hex.EncodeToString(mac.Sum(nil))

	if !g.VerifySignature("order_abc", "pay_def", signature) {
		t.Fatal("expected valid signature to verify")
	}
	if g.VerifySignature("order_abc", "pay_zzz", signature) {
		t.Fatal("expected signature for a different payment to fail")
	}
	if g.VerifySignature("order_abc", "pay_def", signature[:len(signature)-2]+"00") {
		t.Fatal("expected altered signature to fail")
	}
	if g.VerifySignature("order_abc", "pay_def", "") {
		t.Fatal("expected empty signature to fail")
	}
}

func TestMinorUnitsRounding(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{5000, 500000},
		{2833.33, 283333},
		{0.1, 10},
		{4250.5, 425050},
	}
	for _, tc := range cases {
		if got := minorUnits(tc.amount); got != tc.want {
			t.Fatalf("minorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
