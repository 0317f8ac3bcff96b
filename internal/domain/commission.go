package domain

import "time"

type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionSettled CommissionStatus = "settled"
)

// Commission is the platform's cut of one paid booking. The rate is
// snapshotted at computation time; a later rate change never reinterprets
// existing rows. The unique index on BookingID is what makes commission
// creation idempotent under concurrent payment confirmations.
type Commission struct {
	ID               int64            `json:"id" gorm:"primaryKey"`
	BookingID        int64            `json:"booking_id" gorm:"uniqueIndex;not null"`
	HostelID         int64            `json:"hostel_id" gorm:"index;not null"`
	OwnerID          int64            `json:"owner_id" gorm:"index:idx_owner_status;not null"`
	BookingAmount    float64          `json:"booking_amount" gorm:"not null"`
	CommissionRate   float64          `json:"commission_rate" gorm:"not null"`
	CommissionAmount float64          `json:"commission_amount" gorm:"not null"`
	OwnerPayout      float64          `json:"owner_payout" gorm:"not null"`
	Status           CommissionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index:idx_owner_status"`
	CreatedAt        time.Time        `json:"created_at" gorm:"index"`
	SettledAt        *time.Time       `json:"settled_at,omitempty"`
}

func (Commission) TableName() string { return "commissions" }
