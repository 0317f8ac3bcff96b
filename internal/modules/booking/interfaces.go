package booking

import (
	"context"

	"hostelhub/internal/domain"
	"hostelhub/internal/modules/payment"
)

// BookingStore is the persistence surface this module needs.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error)
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
}

// HostelStore resolves rooms and ownership for pricing and access checks.
type HostelStore interface {
	FindRoom(ctx context.Context, hostelID int64, code string) (*domain.Room, error)
	OwnerID(ctx context.Context, hostelID int64) (int64, error)
}

// OrderCreator opens a payment order for a freshly created booking.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*payment.Order, error)
}
