package settlement

import "testing"

func TestCalculateCommission(t *testing.T) {
	q := CalculateCommission(5000, 15)
	if q.CommissionAmount != 750 {
		t.Fatalf("expected commission 750, got %.2f", q.CommissionAmount)
	}
	if q.OwnerPayout != 4250 {
		t.Fatalf("expected payout 4250, got %.2f", q.OwnerPayout)
	}
	if q.Rate != 15 {
		t.Fatalf("expected rate 15, got %.2f", q.Rate)
	}
}

func TestCalculateCommissionRoundsToPaise(t *testing.T) {
	q := CalculateCommission(3333.33, 15)
	if q.CommissionAmount != 500 {
		t.Fatalf("expected commission 500.00, got %.4f", q.CommissionAmount)
	}
	if q.OwnerPayout != 2833.33 {
		t.Fatalf("expected payout 2833.33, got %.4f", q.OwnerPayout)
	}
	// payout derives from the rounded commission so the parts always sum back
	if q.CommissionAmount+q.OwnerPayout != 3333.33 {
		t.Fatalf("parts do not sum to the amount: %.4f + %.4f", q.CommissionAmount, q.OwnerPayout)
	}
}

func TestCalculateCommissionZeroRate(t *testing.T) {
	q := CalculateCommission(5000, 0)
	if q.CommissionAmount != 0 {
		t.Fatalf("expected zero commission, got %.2f", q.CommissionAmount)
	}
	if q.OwnerPayout != 5000 {
		t.Fatalf("expected full payout, got %.2f", q.OwnerPayout)
	}
}
