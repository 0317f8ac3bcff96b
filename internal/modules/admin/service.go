package admin

import (
	"context"
	"log"

	"gorm.io/gorm"

	"hostelhub/internal/config"
	"hostelhub/internal/domain"
)

type Service struct {
	db   *gorm.DB
	rate *config.CommissionRateHolder
}

func NewService(db *gorm.DB, rate *config.CommissionRateHolder) *Service {
	return &Service{db: db, rate: rate}
}

// GetStats aggregates the dashboard counters in one pass per table.
func (s *Service) GetStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&domain.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Hostel{}).Count(&stats.TotalHostels).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Hostel{}).Where("verified = ?", true).Count(&stats.VerifiedHostels).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Booking{}).Where("payment_status = ?", domain.PaymentPaid).
		Count(&stats.PaidBookings).Error; err != nil {
		return nil, err
	}

	var sums struct {
		Revenue    float64
		Commission float64
	}
	err := db.Model(&domain.Commission{}).
		Select("COALESCE(SUM(booking_amount), 0) AS revenue, COALESCE(SUM(commission_amount), 0) AS commission").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = sums.Revenue
	stats.TotalCommission = sums.Commission

	err = db.Model(&domain.Settlement{}).
		Where("status = ?", domain.SettlementPending).
		Select("COALESCE(SUM(net_payout), 0)").
		Scan(&stats.PendingSettleSum).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Service) CommissionRate() float64 {
	return s.rate.Rate()
}

// UpdateCommissionRate changes the rate for commissions computed from now
// on. Existing commission rows keep the rate they were computed with.
func (s *Service) UpdateCommissionRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return ErrInvalidRate
	}
	old := s.rate.Rate()
	s.rate.Set(rate)
	log.Printf("admin: commission rate changed from=%.2f to=%.2f", old, rate)
	return nil
}
