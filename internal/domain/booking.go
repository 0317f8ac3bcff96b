package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCancelled PaymentStatus = "cancelled"
)

type BookingType string

const (
	BookingMonthly BookingType = "monthly"
	BookingFixed   BookingType = "fixed"
)

type BookingSource string

const (
	SourceWeb    BookingSource = "web"
	SourceMobile BookingSource = "mobile"
)

// Booking is one reservation of one room for one user. PriceTotal is
// computed once at creation and never recomputed afterwards; the room
// type is snapshotted so later room edits don't rewrite history.
type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	UserID        int64         `json:"user_id" gorm:"index;not null"`
	HostelID      int64         `json:"hostel_id" gorm:"index;not null"`
	RoomCode      string        `json:"room_id" gorm:"not null"`
	RoomType      RoomType      `json:"room_type" gorm:"type:varchar(20);not null"`
	CheckInDate   time.Time     `json:"check_in_date" gorm:"not null"`
	CheckOutDate  *time.Time    `json:"check_out_date,omitempty"`
	PricePerMonth float64       `json:"price_per_month" gorm:"not null"`
	PriceTotal    float64       `json:"price_total" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending';index"`
	BookingType   BookingType   `json:"booking_type" gorm:"type:varchar(10);default:'monthly'"`
	Source        BookingSource `json:"source" gorm:"type:varchar(10);default:'web'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Hostel *Hostel `json:"hostel,omitempty" gorm:"foreignKey:HostelID"`
}

func (Booking) TableName() string { return "bookings" }
