package domain

import "time"

type MonthlyPaymentStatus string

const (
	MonthlyPaymentPending MonthlyPaymentStatus = "pending"
	MonthlyPaymentPaid    MonthlyPaymentStatus = "paid"
	MonthlyPaymentOverdue MonthlyPaymentStatus = "overdue"
)

// MonthlyPayment is one due recurring charge in the chain that follows a
// monthly booking. Amount is the booking's per-month price, not its total.
// Paying one instance spawns the next, due one month later.
type MonthlyPayment struct {
	ID            int64                `json:"id" gorm:"primaryKey"`
	BookingID     int64                `json:"booking_id" gorm:"index;not null"`
	UserID        int64                `json:"user_id" gorm:"index;not null"`
	HostelID      int64                `json:"hostel_id" gorm:"index;not null"`
	Month         int                  `json:"month" gorm:"not null"`
	Year          int                  `json:"year" gorm:"not null"`
	Amount        float64              `json:"amount" gorm:"not null"`
	DueDate       time.Time            `json:"due_date" gorm:"index;not null"`
	PaymentStatus MonthlyPaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending';index"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
	ReminderSent  bool                 `json:"reminder_sent" gorm:"default:false"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func (MonthlyPayment) TableName() string { return "monthly_payments" }
