package recurring

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"hostelhub/internal/domain"
)

// reminderWindow is how far ahead of the due date a reminder goes out.
const reminderWindow = 3 * 24 * time.Hour

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateSchedule opens the recurring chain for a monthly booking. The first
// charge comes due one month after check-in, at the booking's monthly price.
// Fixed-term bookings have no chain and this is a no-op for them.
func (s *Service) CreateSchedule(ctx context.Context, bookingID int64) error {
	var booking domain.Booking
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		return err
	}
	return s.CreateScheduleTx(s.db.WithContext(ctx), &booking)
}

// CreateScheduleTx is CreateSchedule inside a caller-owned transaction, so
// payment confirmation and the first scheduled charge commit together.
func (s *Service) CreateScheduleTx(tx *gorm.DB, b *domain.Booking) error {
	if b.BookingType != domain.BookingMonthly {
		return nil
	}

	due := b.CheckInDate.AddDate(0, 1, 0)
	payment := domain.MonthlyPayment{
		BookingID:     b.ID,
		UserID:        b.UserID,
		HostelID:      b.HostelID,
		Month:         int(due.Month()),
		Year:          due.Year(),
		Amount:        b.PricePerMonth,
		DueDate:       due,
		PaymentStatus: domain.MonthlyPaymentPending,
	}
	return tx.Create(&payment).Error
}

// ProcessPayment marks one due charge paid and schedules the next one a
// month later. The chain stops when the originating booking has been
// cancelled or refunded: the charge itself still settles, but no successor
// is created.
func (s *Service) ProcessPayment(ctx context.Context, paymentID, userID int64) (*domain.MonthlyPayment, error) {
	var payment domain.MonthlyPayment
	if err := s.db.WithContext(ctx).First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.UserID != userID {
		return nil, ErrPaymentNotFound
	}
	if payment.PaymentStatus == domain.MonthlyPaymentPaid {
		return nil, ErrAlreadyPaid
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&domain.MonthlyPayment{}).
			Where("id = ? AND payment_status IN ?", payment.ID,
				[]domain.MonthlyPaymentStatus{domain.MonthlyPaymentPending, domain.MonthlyPaymentOverdue}).
			Updates(map[string]interface{}{
				"payment_status": domain.MonthlyPaymentPaid,
				"paid_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyPaid
		}
		payment.PaymentStatus = domain.MonthlyPaymentPaid
		payment.PaidAt = &now

		var booking domain.Booking
		if err := tx.First(&booking, payment.BookingID).Error; err != nil {
			return err
		}
		if booking.PaymentStatus == domain.PaymentCancelled || booking.PaymentStatus == domain.PaymentRefunded {
			log.Printf("recurring: chain stopped booking_id=%d payment_id=%d booking_status=%s",
				booking.ID, payment.ID, booking.PaymentStatus)
			return nil
		}

		nextDue := payment.DueDate.AddDate(0, 1, 0)
		next := domain.MonthlyPayment{
			BookingID:     payment.BookingID,
			UserID:        payment.UserID,
			HostelID:      payment.HostelID,
			Month:         int(nextDue.Month()),
			Year:          nextDue.Year(),
			Amount:        payment.Amount,
			DueDate:       nextDue,
			PaymentStatus: domain.MonthlyPaymentPending,
		}
		return tx.Create(&next).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("recurring: payment processed payment_id=%d booking_id=%d amount=%.2f", payment.ID, payment.BookingID, payment.Amount)
	return &payment, nil
}

// SendReminders runs one sweep: flag charges due within the reminder window
// that haven't been reminded yet, then push past-due pending charges to
// overdue. Each payment gets at most one reminder.
func (s *Service) SendReminders(ctx context.Context) (*ReminderReport, error) {
	now := time.Now()
	cutoff := now.Add(reminderWindow)

	var due []domain.MonthlyPayment
	err := s.db.WithContext(ctx).
		Where("payment_status = ? AND reminder_sent = ? AND due_date <= ? AND due_date >= ?",
			domain.MonthlyPaymentPending, false, cutoff, now).
		Find(&due).Error
	if err != nil {
		return nil, err
	}

	report := &ReminderReport{}
	for _, p := range due {
		log.Printf("reminder: monthly payment due payment_id=%d user_id=%d amount=%.2f due=%s",
			p.ID, p.UserID, p.Amount, p.DueDate.Format("2006-01-02"))
		res := s.db.WithContext(ctx).Model(&domain.MonthlyPayment{}).
			Where("id = ?", p.ID).
			Update("reminder_sent", true)
		if res.Error != nil {
			return nil, res.Error
		}
		report.RemindersSent++
	}

	res := s.db.WithContext(ctx).Model(&domain.MonthlyPayment{}).
		Where("payment_status = ? AND due_date < ?", domain.MonthlyPaymentPending, now).
		Update("payment_status", domain.MonthlyPaymentOverdue)
	if res.Error != nil {
		return nil, res.Error
	}
	report.MarkedOverdue = int(res.RowsAffected)

	return report, nil
}

// GetPendingPayments lists a user's outstanding charges, soonest due first.
func (s *Service) GetPendingPayments(ctx context.Context, userID int64) ([]domain.MonthlyPayment, error) {
	var payments []domain.MonthlyPayment
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND payment_status IN ?", userID,
			[]domain.MonthlyPaymentStatus{domain.MonthlyPaymentPending, domain.MonthlyPaymentOverdue}).
		Order("due_date ASC").
		Find(&payments).Error
	return payments, err
}

// CloseDates blocks the given dates for a room. One row per date, append
// only; closing an already-closed date just adds another row.
func (s *Service) CloseDates(ctx context.Context, req CloseDatesRequest, closedBy int64) ([]domain.ClosedDate, error) {
	rows := make([]domain.ClosedDate, 0, len(req.Dates))
	for _, raw := range req.Dates {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, ErrValidation
		}
		rows = append(rows, domain.ClosedDate{
			HostelID: req.HostelID,
			RoomCode: req.RoomID,
			Date:     date,
			ClosedBy: closedBy,
			Reason:   req.Reason,
		})
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetClosedDates lists closed dates for a hostel, optionally for one room.
func (s *Service) GetClosedDates(ctx context.Context, hostelID int64, roomCode string) ([]domain.ClosedDate, error) {
	q := s.db.WithContext(ctx).Where("hostel_id = ?", hostelID)
	if roomCode != "" {
		q = q.Where("room_code = ?", roomCode)
	}

	var rows []domain.ClosedDate
	err := q.Order("date ASC").Find(&rows).Error
	return rows, err
}
