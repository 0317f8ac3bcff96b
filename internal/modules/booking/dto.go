package booking

import (
	"hostelhub/internal/domain"
	"hostelhub/internal/modules/payment"
)

type CreateBookingRequest struct {
	HostelID     int64  `json:"hostel_id" binding:"required"`
	RoomID       string `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date"`
	BookingType  string `json:"booking_type"`
	Source       string `json:"source"`
}

// CreateBookingResponse pairs the pending booking with the gateway order
// the client pays against.
type CreateBookingResponse struct {
	Booking *domain.Booking `json:"booking"`
	Order   *payment.Order  `json:"order"`
}
