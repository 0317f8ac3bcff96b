package payment

import (
	"gorm.io/gorm"

	"hostelhub/internal/domain"
)

// RateProvider yields the commission rate in effect right now. The rate is
// read once per confirmation and snapshotted into the Commission row.
type RateProvider interface {
	Rate() float64
}

// ScheduleCreator sets up the first recurring charge for a monthly booking
// inside the same transaction that marks the booking paid.
type ScheduleCreator interface {
	CreateScheduleTx(tx *gorm.DB, b *domain.Booking) error
}
