package payment

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"hostelhub/internal/database"
	"hostelhub/internal/domain"
	"hostelhub/internal/modules/settlement"
)

type Service struct {
	db        *gorm.DB
	gateway   Gateway
	rates     RateProvider
	schedules ScheduleCreator
}

func NewService(db *gorm.DB, gateway Gateway, rates RateProvider, schedules ScheduleCreator) *Service {
	return &Service{db: db, gateway: gateway, rates: rates, schedules: schedules}
}

// Gateway exposes the wired gateway variant to collaborators that only
// need order creation.
func (s *Service) Gateway() Gateway { return s.gateway }

// ConfirmPayment verifies the callback signature and then, in a single
// transaction: marks the booking paid, records the commission, and seeds
// the first monthly charge for monthly bookings. A paid booking and its
// commission row can therefore never diverge; a duplicate confirmation
// loses the race on either the status guard or the commission unique
// index and reports a conflict.
func (s *Service) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*domain.Booking, *domain.Commission, error) {
	var booking domain.Booking
	if err := s.db.WithContext(ctx).First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, nil, ErrInvalidSignature
	}

	switch booking.PaymentStatus {
	case domain.PaymentPaid:
		return nil, nil, ErrAlreadyPaid
	case domain.PaymentCancelled, domain.PaymentRefunded, domain.PaymentFailed:
		return nil, nil, ErrNotPayable
	}

	rate := s.rates.Rate()

	var commission domain.Commission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Booking{}).
			Where("id = ? AND payment_status = ?", booking.ID, domain.PaymentPending).
			Update("payment_status", domain.PaymentPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyPaid
		}

		var hostel domain.Hostel
		if err := tx.Select("id", "owner_id").First(&hostel, booking.HostelID).Error; err != nil {
			return err
		}

		q := settlement.CalculateCommission(booking.PriceTotal, rate)
		commission = domain.Commission{
			BookingID:        booking.ID,
			HostelID:         booking.HostelID,
			OwnerID:          hostel.OwnerID,
			BookingAmount:    booking.PriceTotal,
			CommissionRate:   q.Rate,
			CommissionAmount: q.CommissionAmount,
			OwnerPayout:      q.OwnerPayout,
			Status:           domain.CommissionPending,
		}
		if err := tx.Create(&commission).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadyPaid
			}
			return err
		}

		if booking.BookingType == domain.BookingMonthly {
			if err := s.schedules.CreateScheduleTx(tx, &booking); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	booking.PaymentStatus = domain.PaymentPaid
	log.Printf("payment confirmed booking_id=%d amount=%.2f commission=%.2f payout=%.2f rate=%.2f",
		booking.ID, booking.PriceTotal, commission.CommissionAmount, commission.OwnerPayout, commission.CommissionRate)

	return &booking, &commission, nil
}
