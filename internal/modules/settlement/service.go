package settlement

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"hostelhub/internal/database"
	"hostelhub/internal/domain"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GenerateMonthlySettlements aggregates each owner's pending commissions
// created inside the given calendar month into one Settlement and marks
// those commissions settled. The settlement insert runs under the
// (owner, month, year) unique index; a violation means another run already
// settled that owner and the whole owner is skipped, so re-running for the
// same period creates nothing new. Owners with no pending commissions in
// the window get no settlement at all.
func (s *Service) GenerateMonthlySettlements(ctx context.Context, month, year int) ([]domain.Settlement, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var commissions []domain.Commission
	err := s.db.WithContext(ctx).
		Where("status = ? AND created_at >= ? AND created_at < ?", domain.CommissionPending, start, end).
		Order("owner_id, id").
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}

	byOwner := make(map[int64][]domain.Commission)
	order := make([]int64, 0)
	for _, c := range commissions {
		if _, ok := byOwner[c.OwnerID]; !ok {
			order = append(order, c.OwnerID)
		}
		byOwner[c.OwnerID] = append(byOwner[c.OwnerID], c)
	}

	created := make([]domain.Settlement, 0, len(order))
	for _, ownerID := range order {
		group := byOwner[ownerID]

		settlement := domain.Settlement{
			OwnerID: ownerID,
			Month:   month,
			Year:    year,
			Status:  domain.SettlementPending,
		}
		ids := make([]int64, 0, len(group))
		for _, c := range group {
			settlement.TotalBookings++
			settlement.TotalRevenue += c.BookingAmount
			settlement.TotalCommission += c.CommissionAmount
			settlement.NetPayout += c.OwnerPayout
			ids = append(ids, c.ID)
		}
		settlement.TotalRevenue = round2(settlement.TotalRevenue)
		settlement.TotalCommission = round2(settlement.TotalCommission)
		settlement.NetPayout = round2(settlement.NetPayout)

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&settlement).Error; err != nil {
				return err
			}
			now := time.Now().UTC()
			return tx.Model(&domain.Commission{}).
				Where("id IN ?", ids).
				Updates(map[string]any{"status": domain.CommissionSettled, "settled_at": now}).Error
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				log.Printf("settlement exists, skipping owner_id=%d period=%d/%d", ownerID, month, year)
				continue
			}
			return nil, err
		}
		created = append(created, settlement)
	}

	log.Printf("generated %d settlements for %d/%d", len(created), month, year)
	return created, nil
}

// MarkSettlementPaid records the external payout. The guarded update makes
// double-paying a settlement impossible: only a pending row transitions.
func (s *Service) MarkSettlementPaid(ctx context.Context, settlementID int64, reference string) (*domain.Settlement, error) {
	var settlement domain.Settlement
	if err := s.db.WithContext(ctx).First(&settlement, settlementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&domain.Settlement{}).
		Where("id = ? AND status = ?", settlementID, domain.SettlementPending).
		Updates(map[string]any{
			"status":            domain.SettlementPaid,
			"payment_reference": reference,
			"payment_date":      now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyPaid
	}

	settlement.Status = domain.SettlementPaid
	settlement.PaymentReference = reference
	settlement.PaymentDate = &now
	return &settlement, nil
}

// GetPendingSettlements lists unpaid settlements, optionally narrowed to
// one period.
func (s *Service) GetPendingSettlements(ctx context.Context, month, year int) ([]domain.Settlement, error) {
	q := s.db.WithContext(ctx).Where("status = ?", domain.SettlementPending)
	if month > 0 && year > 0 {
		q = q.Where("month = ? AND year = ?", month, year)
	}

	var settlements []domain.Settlement
	if err := q.Order("created_at DESC").Find(&settlements).Error; err != nil {
		return nil, err
	}
	return settlements, nil
}

func (s *Service) GetOwnerSettlements(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Settlement, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.Settlement{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var settlements []domain.Settlement
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("year DESC, month DESC").
		Limit(limit).
		Offset(offset).
		Find(&settlements).Error
	if err != nil {
		return nil, 0, err
	}
	return settlements, total, nil
}

type StatusTotal struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type Stats struct {
	Pending StatusTotal `json:"pending"`
	Paid    StatusTotal `json:"paid"`
}

func (s *Service) GetSettlementStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.statusTotal(ctx, domain.SettlementPending, &stats.Pending); err != nil {
		return nil, err
	}
	if err := s.statusTotal(ctx, domain.SettlementPaid, &stats.Paid); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Service) statusTotal(ctx context.Context, status domain.SettlementStatus, out *StatusTotal) error {
	return s.db.WithContext(ctx).Model(&domain.Settlement{}).
		Select("COALESCE(SUM(net_payout), 0) AS total, COUNT(1) AS count").
		Where("status = ?", status).
		Scan(out).Error
}
