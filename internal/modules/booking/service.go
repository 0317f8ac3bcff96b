package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"

	"hostelhub/internal/domain"
	"hostelhub/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingStore
	hostels  HostelStore
	orders   OrderCreator
	currency string
}

func NewService(bookings BookingStore, hostels HostelStore, orders OrderCreator, currency string) *Service {
	return &Service{bookings: bookings, hostels: hostels, orders: orders, currency: currency}
}

// CreateBooking prices the stay, persists it as pending and opens a payment
// order against it. Monthly bookings cost one month up front; fixed stays
// are priced per day off the monthly rate, days rounded up.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*CreateBookingResponse, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}

	bookingType := domain.BookingMonthly
	if req.BookingType != "" {
		bookingType = domain.BookingType(req.BookingType)
		if bookingType != domain.BookingMonthly && bookingType != domain.BookingFixed {
			return nil, ErrValidation
		}
	}

	source := domain.SourceWeb
	if req.Source != "" {
		source = domain.BookingSource(req.Source)
		if source != domain.SourceWeb && source != domain.SourceMobile {
			return nil, ErrValidation
		}
	}

	var checkOut *time.Time
	if req.CheckOutDate != "" {
		out, err := time.Parse(dateLayout, req.CheckOutDate)
		if err != nil {
			return nil, ErrValidation
		}
		checkOut = &out
	}
	if bookingType == domain.BookingFixed {
		if checkOut == nil || !checkOut.After(checkIn) {
			return nil, ErrValidation
		}
	}

	room, err := s.hostels.FindRoom(ctx, req.HostelID, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomMissing):
			return nil, ErrRoomNotFound
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrHostelNotFound
		}
		return nil, err
	}

	total := room.PricePerMonth
	if bookingType == domain.BookingFixed {
		days := math.Ceil(checkOut.Sub(checkIn).Hours() / 24)
		total = round2(room.PricePerMonth / 30 * days)
	}

	b := &domain.Booking{
		UserID:        userID,
		HostelID:      req.HostelID,
		RoomCode:      room.Code,
		RoomType:      room.Type,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		PricePerMonth: room.PricePerMonth,
		PriceTotal:    total,
		PaymentStatus: domain.PaymentPending,
		BookingType:   bookingType,
		Source:        source,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	order, err := s.orders.CreateOrder(ctx, b.PriceTotal, s.currency, fmt.Sprintf("booking_%d", b.ID))
	if err != nil {
		return nil, err
	}

	log.Printf("booking: created booking_id=%d user_id=%d hostel_id=%d total=%.2f type=%s",
		b.ID, userID, b.HostelID, b.PriceTotal, b.BookingType)
	return &CreateBookingResponse{Booking: b, Order: order}, nil
}

// GetBooking returns one booking to its customer, the hostel's owner or an
// admin. Everyone else gets ErrForbidden.
func (s *Service) GetBooking(ctx context.Context, bookingID, requesterID int64, role string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if err := s.authorize(ctx, b, requesterID, role); err != nil {
		return nil, err
	}
	return b, nil
}

// CancelBooking moves a booking to cancelled under the same access rule as
// GetBooking. Cancelling twice is an error; refunds are handled offline.
func (s *Service) CancelBooking(ctx context.Context, bookingID, requesterID int64, role string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if err := s.authorize(ctx, b, requesterID, role); err != nil {
		return nil, err
	}
	if b.PaymentStatus == domain.PaymentCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentCancelled); err != nil {
		return nil, err
	}
	b.PaymentStatus = domain.PaymentCancelled

	log.Printf("booking: cancelled booking_id=%d by user_id=%d role=%s", bookingID, requesterID, role)
	return b, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) authorize(ctx context.Context, b *domain.Booking, requesterID int64, role string) error {
	if role == string(domain.RoleAdmin) || b.UserID == requesterID {
		return nil
	}
	if role == string(domain.RoleHostelOwner) {
		ownerID, err := s.hostels.OwnerID(ctx, b.HostelID)
		if err != nil {
			return err
		}
		if ownerID == requesterID {
			return nil
		}
	}
	return ErrForbidden
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
