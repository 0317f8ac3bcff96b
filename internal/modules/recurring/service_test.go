package recurring

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
	dsn := fmt.Sprintf("file:recurring_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Booking{}, &domain.MonthlyPayment{}, &domain.ClosedDate{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db), db
}

func seedMonthlyBooking(t *testing.T, db *gorm.DB, status domain.PaymentStatus) *domain.Booking {
	t.Helper()
	booking := &domain.Booking{
		UserID:        10,
		HostelID:      20,
		RoomCode:      "A101",
		RoomType:      domain.RoomSingle,
		CheckInDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PricePerMonth: 8000,
		PriceTotal:    8000,
		PaymentStatus: status,
		BookingType:   domain.BookingMonthly,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}

func TestCreateScheduleFirstChargeDueOneMonthAfterCheckIn(t *testing.T) {
	svc, db := setupTestService(t)
	booking := seedMonthlyBooking(t, db, domain.PaymentPaid)

	if err := svc.CreateSchedule(context.Background(), booking.ID); err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}

	var payment domain.MonthlyPayment
	if err := db.Where("booking_id = ?", booking.ID).First(&payment).Error; err != nil {
		t.Fatalf("expected a scheduled payment: %v", err)
	}
	wantDue := booking.CheckInDate.AddDate(0, 1, 0)
	if !payment.DueDate.Equal(wantDue) {
		t.Fatalf("expected due date %s, got %s", wantDue, payment.DueDate)
	}
	if payment.Amount != booking.PricePerMonth {
		t.Fatalf("expected amount %.2f, got %.2f", booking.PricePerMonth, payment.Amount)
	}
	if payment.Month != 4 || payment.Year != 2026 {
		t.Fatalf("expected period 4/2026, got %d/%d", payment.Month, payment.Year)
	}
	if payment.PaymentStatus != domain.MonthlyPaymentPending {
		t.Fatalf("expected pending status, got %s", payment.PaymentStatus)
	}
}

func TestCreateScheduleSkipsFixedBookings(t *testing.T) {
	svc, db := setupTestService(t)
	checkOut := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		UserID:        11,
		HostelID:      20,
		RoomCode:      "A102",
		RoomType:      domain.RoomDouble,
		CheckInDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  &checkOut,
		PricePerMonth: 8000,
		PriceTotal:    2400,
		PaymentStatus: domain.PaymentPaid,
		BookingType:   domain.BookingFixed,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	if err := svc.CreateSchedule(context.Background(), booking.ID); err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}

	var count int64
	db.Model(&domain.MonthlyPayment{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no scheduled payments for fixed booking, got %d", count)
	}
}

func TestProcessPaymentSpawnsSuccessorOneMonthLater(t *testing.T) {
	svc, db := setupTestService(t)
	booking := seedMonthlyBooking(t, db, domain.PaymentPaid)
	if err := svc.CreateSchedule(context.Background(), booking.ID); err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}

	var first domain.MonthlyPayment
	if err := db.Where("booking_id = ?", booking.ID).First(&first).Error; err != nil {
		t.Fatalf("expected first payment: %v", err)
	}

	paid, err := svc.ProcessPayment(context.Background(), first.ID, booking.UserID)
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if paid.PaymentStatus != domain.MonthlyPaymentPaid {
		t.Fatalf("expected paid status, got %s", paid.PaymentStatus)
	}
	if paid.PaidAt == nil {
		t.Fatal("expected paid_at to be set")
	}

	var chain []domain.MonthlyPayment
	if err := db.Where("booking_id = ?", booking.ID).Order("due_date ASC").Find(&chain).Error; err != nil {
		t.Fatalf("failed to load chain: %v", err)
	}
	if len(chain) != 2 {
		t.Fatalf("expected 2 payments in chain, got %d", len(chain))
	}
	wantDue := first.DueDate.AddDate(0, 1, 0)
	if !chain[1].DueDate.Equal(wantDue) {
		t.Fatalf("expected successor due %s, got %s", wantDue, chain[1].DueDate)
	}
	if chain[1].Amount != first.Amount {
		t.Fatalf("expected successor amount %.2f, got %.2f", first.Amount, chain[1].Amount)
	}
	if chain[1].PaymentStatus != domain.MonthlyPaymentPending {
		t.Fatalf("expected successor pending, got %s", chain[1].PaymentStatus)
	}
}

func TestProcessPaymentStopsChainWhenBookingCancelled(t *testing.T) {
	svc, db := setupTestService(t)
	booking := seedMonthlyBooking(t, db, domain.PaymentPaid)
	if err := svc.CreateSchedule(context.Background(), booking.ID); err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}
	if err := db.Model(&domain.Booking{}).Where("id = ?", booking.ID).
		Update("payment_status", domain.PaymentCancelled).Error; err != nil {
		t.Fatalf("failed to cancel booking: %v", err)
	}

	var first domain.MonthlyPayment
	if err := db.Where("booking_id = ?", booking.ID).First(&first).Error; err != nil {
		t.Fatalf("expected first payment: %v", err)
	}

	paid, err := svc.ProcessPayment(context.Background(), first.ID, booking.UserID)
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if paid.PaymentStatus != domain.MonthlyPaymentPaid {
		t.Fatalf("expected the charge itself to settle, got %s", paid.PaymentStatus)
	}

	var count int64
	db.Model(&domain.MonthlyPayment{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected no successor after cancellation, got %d payments", count)
	}
}

func TestProcessPaymentRejectsDoublePay(t *testing.T) {
	svc, db := setupTestService(t)
	booking := seedMonthlyBooking(t, db, domain.PaymentPaid)
	if err := svc.CreateSchedule(context.Background(), booking.ID); err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}

	var first domain.MonthlyPayment
	if err := db.Where("booking_id = ?", booking.ID).First(&first).Error; err != nil {
		t.Fatalf("expected first payment: %v", err)
	}

	if _, err := svc.ProcessPayment(context.Background(), first.ID, booking.UserID); err != nil {
		t.Fatalf("first ProcessPayment returned error: %v", err)
	}
	if _, err := svc.ProcessPayment(context.Background(), first.ID, booking.UserID); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestProcessPaymentHidesOtherUsersPayments(t *testing.T) {
	svc, db := setupTestService(t)
	booking := seedMonthlyBooking(t, db, domain.PaymentPaid)
	if err := svc.CreateSchedule(context.Background(), booking.ID); err != nil {
		t.Fatalf("CreateSchedule returned error: %v", err)
	}

	var first domain.MonthlyPayment
	if err := db.Where("booking_id = ?", booking.ID).First(&first).Error; err != nil {
		t.Fatalf("expected first payment: %v", err)
	}

	if _, err := svc.ProcessPayment(context.Background(), first.ID, 9999); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound for other user, got %v", err)
	}
}

func TestSendRemindersFlagsUpcomingAndMarksOverdue(t *testing.T) {
	svc, db := setupTestService(t)
	now := time.Now()

	upcoming := domain.MonthlyPayment{
		BookingID: 1, UserID: 10, HostelID: 20,
		Month: int(now.Month()), Year: now.Year(),
		Amount: 8000, DueDate: now.Add(48 * time.Hour),
		PaymentStatus: domain.MonthlyPaymentPending,
	}
	farOut := domain.MonthlyPayment{
		BookingID: 2, UserID: 10, HostelID: 20,
		Month: int(now.Month()), Year: now.Year(),
		Amount: 8000, DueDate: now.Add(240 * time.Hour),
		PaymentStatus: domain.MonthlyPaymentPending,
	}
	pastDue := domain.MonthlyPayment{
		BookingID: 3, UserID: 10, HostelID: 20,
		Month: int(now.Month()), Year: now.Year(),
		Amount: 8000, DueDate: now.Add(-24 * time.Hour),
		PaymentStatus: domain.MonthlyPaymentPending,
	}
	for _, p := range []*domain.MonthlyPayment{&upcoming, &farOut, &pastDue} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to seed payment: %v", err)
		}
	}

	report, err := svc.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("SendReminders returned error: %v", err)
	}
	if report.RemindersSent != 1 {
		t.Fatalf("expected 1 reminder, got %d", report.RemindersSent)
	}
	if report.MarkedOverdue != 1 {
		t.Fatalf("expected 1 overdue, got %d", report.MarkedOverdue)
	}

	var reloaded domain.MonthlyPayment
	db.First(&reloaded, upcoming.ID)
	if !reloaded.ReminderSent {
		t.Fatal("expected reminder_sent on upcoming payment")
	}
	var reloadedPastDue domain.MonthlyPayment
	db.First(&reloadedPastDue, pastDue.ID)
	if reloadedPastDue.PaymentStatus != domain.MonthlyPaymentOverdue {
		t.Fatalf("expected overdue status, got %s", reloadedPastDue.PaymentStatus)
	}

	report, err = svc.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("second SendReminders returned error: %v", err)
	}
	if report.RemindersSent != 0 || report.MarkedOverdue != 0 {
		t.Fatalf("expected idempotent second sweep, got %+v", report)
	}
}

func TestCloseDatesAppendsRows(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := CloseDatesRequest{
		HostelID: 20,
		RoomID:   "A101",
		Dates:    []string{"2026-05-01", "2026-05-02"},
		Reason:   "maintenance",
	}
	rows, err := svc.CloseDates(ctx, req, 5)
	if err != nil {
		t.Fatalf("CloseDates returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	again, err := svc.CloseDates(ctx, CloseDatesRequest{HostelID: 20, RoomID: "A101", Dates: []string{"2026-05-01"}}, 5)
	if err != nil {
		t.Fatalf("re-closing a date returned error: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected append on re-close, got %d rows", len(again))
	}

	all, err := svc.GetClosedDates(ctx, 20, "A101")
	if err != nil {
		t.Fatalf("GetClosedDates returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 closed-date rows, got %d", len(all))
	}
}

func TestCloseDatesRejectsBadDate(t *testing.T) {
	svc, _ := setupTestService(t)
	_, err := svc.CloseDates(context.Background(), CloseDatesRequest{
		HostelID: 20, RoomID: "A101", Dates: []string{"01/05/2026"},
	}, 5)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
