package payment

type ConfirmPaymentRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
