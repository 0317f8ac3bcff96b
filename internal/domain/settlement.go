package domain

import "time"

type SettlementStatus string

const (
	SettlementPending    SettlementStatus = "pending"
	SettlementProcessing SettlementStatus = "processing"
	SettlementPaid       SettlementStatus = "paid"
	SettlementFailed     SettlementStatus = "failed"
)

// Settlement aggregates one owner's pending commissions for one calendar
// month. The composite unique index is the only guard against generating
// the same settlement twice: creation attempts the insert and treats a
// constraint violation as "already settled".
type Settlement struct {
	ID               int64            `json:"id" gorm:"primaryKey"`
	OwnerID          int64            `json:"owner_id" gorm:"uniqueIndex:idx_owner_period;not null"`
	Month            int              `json:"month" gorm:"uniqueIndex:idx_owner_period;not null"`
	Year             int              `json:"year" gorm:"uniqueIndex:idx_owner_period;not null"`
	TotalBookings    int              `json:"total_bookings" gorm:"not null;default:0"`
	TotalRevenue     float64          `json:"total_revenue" gorm:"not null;default:0"`
	TotalCommission  float64          `json:"total_commission" gorm:"not null;default:0"`
	NetPayout        float64          `json:"net_payout" gorm:"not null;default:0"`
	Status           SettlementStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentReference string           `json:"payment_reference,omitempty"`
	PaymentDate      *time.Time       `json:"payment_date,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (Settlement) TableName() string { return "settlements" }
