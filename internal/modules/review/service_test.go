package review

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
	dsn := fmt.Sprintf("file:review_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Hostel{}, &domain.Booking{}, &domain.Review{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db), db
}

func seedHostelWithStay(t *testing.T, db *gorm.DB, userID int64) *domain.Hostel {
	t.Helper()
	h := &domain.Hostel{OwnerID: 1, Name: "Sunrise PG", Type: domain.HostelPG, City: "Pune", Phone: "123"}
	if err := db.Create(h).Error; err != nil {
		t.Fatalf("failed to seed hostel: %v", err)
	}
	b := &domain.Booking{
		UserID:        userID,
		HostelID:      h.ID,
		RoomCode:      "A101",
		RoomType:      domain.RoomSingle,
		CheckInDate:   time.Now().AddDate(0, -1, 0),
		PricePerMonth: 5000,
		PriceTotal:    5000,
		PaymentStatus: domain.PaymentPaid,
		BookingType:   domain.BookingMonthly,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return h
}

func TestSubmitReviewUpdatesHostelRating(t *testing.T) {
	svc, db := setupTestService(t)
	h := seedHostelWithStay(t, db, 42)

	_, err := svc.SubmitReview(context.Background(), 42, SubmitReviewRequest{
		HostelID: h.ID, Rating: 4, Comment: "clean rooms",
	})
	if err != nil {
		t.Fatalf("SubmitReview returned error: %v", err)
	}

	var reloaded domain.Hostel
	db.First(&reloaded, h.ID)
	if reloaded.Rating != 4.0 {
		t.Fatalf("expected rating 4.0, got %.1f", reloaded.Rating)
	}
	if reloaded.ReviewCount != 1 {
		t.Fatalf("expected review_count 1, got %d", reloaded.ReviewCount)
	}
}

func TestSubmitReviewTwiceOverwrites(t *testing.T) {
	svc, db := setupTestService(t)
	h := seedHostelWithStay(t, db, 42)
	ctx := context.Background()

	if _, err := svc.SubmitReview(ctx, 42, SubmitReviewRequest{HostelID: h.ID, Rating: 2}); err != nil {
		t.Fatalf("first SubmitReview returned error: %v", err)
	}
	if _, err := svc.SubmitReview(ctx, 42, SubmitReviewRequest{HostelID: h.ID, Rating: 5, Comment: "much better now"}); err != nil {
		t.Fatalf("second SubmitReview returned error: %v", err)
	}

	var count int64
	db.Model(&domain.Review{}).Where("hostel_id = ?", h.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single review row, got %d", count)
	}

	var reloaded domain.Hostel
	db.First(&reloaded, h.ID)
	if reloaded.Rating != 5.0 {
		t.Fatalf("expected rating 5.0 after overwrite, got %.1f", reloaded.Rating)
	}
	if reloaded.ReviewCount != 1 {
		t.Fatalf("expected review_count 1, got %d", reloaded.ReviewCount)
	}
}

func TestSubmitReviewAveragesAcrossUsers(t *testing.T) {
	svc, db := setupTestService(t)
	h := seedHostelWithStay(t, db, 42)
	b := &domain.Booking{
		UserID: 43, HostelID: h.ID, RoomCode: "A102", RoomType: domain.RoomDouble,
		CheckInDate: time.Now().AddDate(0, -1, 0), PricePerMonth: 6000, PriceTotal: 6000,
		PaymentStatus: domain.PaymentPaid, BookingType: domain.BookingMonthly,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("failed to seed second booking: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.SubmitReview(ctx, 42, SubmitReviewRequest{HostelID: h.ID, Rating: 4}); err != nil {
		t.Fatalf("SubmitReview returned error: %v", err)
	}
	if _, err := svc.SubmitReview(ctx, 43, SubmitReviewRequest{HostelID: h.ID, Rating: 5}); err != nil {
		t.Fatalf("SubmitReview returned error: %v", err)
	}

	var reloaded domain.Hostel
	db.First(&reloaded, h.ID)
	if reloaded.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %.1f", reloaded.Rating)
	}
	if reloaded.ReviewCount != 2 {
		t.Fatalf("expected review_count 2, got %d", reloaded.ReviewCount)
	}
}

func TestSubmitReviewRequiresPaidStay(t *testing.T) {
	svc, db := setupTestService(t)
	h := &domain.Hostel{OwnerID: 1, Name: "No Stay Inn", Type: domain.HostelPG, City: "Pune", Phone: "123"}
	if err := db.Create(h).Error; err != nil {
		t.Fatalf("failed to seed hostel: %v", err)
	}

	_, err := svc.SubmitReview(context.Background(), 42, SubmitReviewRequest{HostelID: h.ID, Rating: 5})
	if !errors.Is(err, ErrNotEligible) {
		t.Fatalf("expected ErrNotEligible, got %v", err)
	}
}

func TestSubmitReviewUnknownHostel(t *testing.T) {
	svc, _ := setupTestService(t)
	_, err := svc.SubmitReview(context.Background(), 42, SubmitReviewRequest{HostelID: 404, Rating: 3})
	if !errors.Is(err, ErrHostelNotFound) {
		t.Fatalf("expected ErrHostelNotFound, got %v", err)
	}
}
