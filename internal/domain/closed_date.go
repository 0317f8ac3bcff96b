package domain

import "time"

// ClosedDate marks one date of one room as administratively closed
// (maintenance or manual block). Rows are append-only; nothing in the
// booking flow ever reopens a date.
type ClosedDate struct {
	ID       int64     `json:"id" gorm:"primaryKey"`
	HostelID int64     `json:"hostel_id" gorm:"index:idx_hostel_room_closed;not null"`
	RoomCode string    `json:"room_id" gorm:"index:idx_hostel_room_closed;not null"`
	Date     time.Time `json:"date" gorm:"not null"`
	ClosedBy int64     `json:"closed_by" gorm:"not null"`
	Reason   string    `json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (ClosedDate) TableName() string { return "closed_dates" }
