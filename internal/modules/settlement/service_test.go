package settlement

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"hostelhub/internal/domain"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:settlement_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Commission{}, &domain.Settlement{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db), db
}

func seedCommission(t *testing.T, db *gorm.DB, ownerID int64, amount float64, createdAt time.Time) *domain.Commission {
	t.Helper()
	q := CalculateCommission(amount, 15)
	c := &domain.Commission{
		BookingID:        time.Now().UnixNano(), // unique per row
		HostelID:         1,
		OwnerID:          ownerID,
		BookingAmount:    amount,
		CommissionRate:   q.Rate,
		CommissionAmount: q.CommissionAmount,
		OwnerPayout:      q.OwnerPayout,
		Status:           domain.CommissionPending,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to seed commission: %v", err)
	}
	if err := db.Model(c).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate commission: %v", err)
	}
	c.CreatedAt = createdAt
	return c
}

func TestGenerateMonthlySettlementsAggregatesPerOwner(t *testing.T) {
	svc, db := setupTestService(t)
	inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	seedCommission(t, db, 100, 5000, inMonth)
	seedCommission(t, db, 100, 5000, inMonth.AddDate(0, 0, 5))
	seedCommission(t, db, 200, 8000, inMonth)
	// outside the window, must not be touched
	outside := seedCommission(t, db, 100, 9999, inMonth.AddDate(0, 1, 3))

	settlements, err := svc.GenerateMonthlySettlements(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("GenerateMonthlySettlements returned error: %v", err)
	}
	if len(settlements) != 2 {
		t.Fatalf("expected 2 settlements, got %d", len(settlements))
	}

	var first domain.Settlement
	if err := db.Where("owner_id = ?", 100).First(&first).Error; err != nil {
		t.Fatalf("expected settlement for owner 100: %v", err)
	}
	if first.TotalBookings != 2 {
		t.Fatalf("expected 2 bookings, got %d", first.TotalBookings)
	}
	if first.TotalRevenue != 10000 {
		t.Fatalf("expected revenue 10000, got %.2f", first.TotalRevenue)
	}
	if first.TotalCommission != 1500 {
		t.Fatalf("expected commission 1500, got %.2f", first.TotalCommission)
	}
	if first.NetPayout != 8500 {
		t.Fatalf("expected payout 8500, got %.2f", first.NetPayout)
	}
	if first.Status != domain.SettlementPending {
		t.Fatalf("expected pending settlement, got %s", first.Status)
	}

	var settled int64
	db.Model(&domain.Commission{}).Where("status = ?", domain.CommissionSettled).Count(&settled)
	if settled != 3 {
		t.Fatalf("expected 3 settled commissions, got %d", settled)
	}

	var untouched domain.Commission
	db.First(&untouched, outside.ID)
	if untouched.Status != domain.CommissionPending {
		t.Fatalf("commission outside the window was settled")
	}
}

func TestGenerateMonthlySettlementsIsIdempotent(t *testing.T) {
	svc, db := setupTestService(t)
	inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedCommission(t, db, 100, 5000, inMonth)

	first, err := svc.GenerateMonthlySettlements(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 settlement on first run, got %d", len(first))
	}

	second, err := svc.GenerateMonthlySettlements(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected no settlements on second run, got %d", len(second))
	}

	var count int64
	db.Model(&domain.Settlement{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 settlement row, got %d", count)
	}
}

func TestGenerateMonthlySettlementsRejectsBadPeriod(t *testing.T) {
	svc, _ := setupTestService(t)
	if _, err := svc.GenerateMonthlySettlements(context.Background(), 13, 2026); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod for month 13, got %v", err)
	}
	if _, err := svc.GenerateMonthlySettlements(context.Background(), 1, 1999); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod for year 1999, got %v", err)
	}
}

func TestMarkSettlementPaidGuardsDoublePay(t *testing.T) {
	svc, db := setupTestService(t)
	inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedCommission(t, db, 100, 5000, inMonth)

	generated, err := svc.GenerateMonthlySettlements(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("GenerateMonthlySettlements returned error: %v", err)
	}

	paid, err := svc.MarkSettlementPaid(context.Background(), generated[0].ID, "NEFT-12345")
	if err != nil {
		t.Fatalf("MarkSettlementPaid returned error: %v", err)
	}
	if paid.Status != domain.SettlementPaid {
		t.Fatalf("expected paid status, got %s", paid.Status)
	}
	if paid.PaymentReference != "NEFT-12345" {
		t.Fatalf("expected payment reference, got %q", paid.PaymentReference)
	}
	if paid.PaymentDate == nil {
		t.Fatal("expected payment date to be set")
	}

	if _, err := svc.MarkSettlementPaid(context.Background(), generated[0].ID, "NEFT-99999"); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid on second pay, got %v", err)
	}

	var reloaded domain.Settlement
	db.First(&reloaded, generated[0].ID)
	if reloaded.PaymentReference != "NEFT-12345" {
		t.Fatalf("second pay overwrote the reference: %q", reloaded.PaymentReference)
	}
}

func TestMarkSettlementPaidUnknownID(t *testing.T) {
	svc, _ := setupTestService(t)
	if _, err := svc.MarkSettlementPaid(context.Background(), 404, "ref"); !errors.Is(err, ErrSettlementNotFound) {
		t.Fatalf("expected ErrSettlementNotFound, got %v", err)
	}
}

func TestGetSettlementStats(t *testing.T) {
	svc, db := setupTestService(t)
	inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedCommission(t, db, 100, 5000, inMonth)
	seedCommission(t, db, 200, 8000, inMonth)

	generated, err := svc.GenerateMonthlySettlements(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("GenerateMonthlySettlements returned error: %v", err)
	}
	if _, err := svc.MarkSettlementPaid(context.Background(), generated[0].ID, "ref"); err != nil {
		t.Fatalf("MarkSettlementPaid returned error: %v", err)
	}

	stats, err := svc.GetSettlementStats(context.Background())
	if err != nil {
		t.Fatalf("GetSettlementStats returned error: %v", err)
	}
	if stats.Pending.Count != 1 || stats.Paid.Count != 1 {
		t.Fatalf("expected 1 pending and 1 paid, got %+v", stats)
	}
	if stats.Pending.Total+stats.Paid.Total != 4250+6800 {
		t.Fatalf("unexpected payout totals: %+v", stats)
	}
}
