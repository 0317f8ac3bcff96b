package admin

type UpdateCommissionRateRequest struct {
	Rate *float64 `json:"rate" binding:"required"`
}

type VerifyHostelRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// PlatformStats is the admin dashboard snapshot.
type PlatformStats struct {
	TotalUsers       int64   `json:"total_users"`
	TotalHostels     int64   `json:"total_hostels"`
	VerifiedHostels  int64   `json:"verified_hostels"`
	TotalBookings    int64   `json:"total_bookings"`
	PaidBookings     int64   `json:"paid_bookings"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCommission  float64 `json:"total_commission"`
	PendingSettleSum float64 `json:"pending_settlement_amount"`
}
