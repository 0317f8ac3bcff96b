package review

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelhub/internal/domain"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SubmitReview records one rating per user per hostel. Submitting again
// overwrites the earlier rating. Only users with a paid booking at the
// hostel may review it, and the hostel's aggregate rating is recomputed in
// the same transaction as the upsert.
func (s *Service) SubmitReview(ctx context.Context, userID int64, req SubmitReviewRequest) (*domain.Review, error) {
	var hostel domain.Hostel
	if err := s.db.WithContext(ctx).Select("id").First(&hostel, req.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, err
	}

	var stays int64
	err := s.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("user_id = ? AND hostel_id = ? AND payment_status = ?", userID, req.HostelID, domain.PaymentPaid).
		Count(&stays).Error
	if err != nil {
		return nil, err
	}
	if stays == 0 {
		return nil, ErrNotEligible
	}

	review := &domain.Review{
		HostelID: req.HostelID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hostel_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).Create(review).Error; err != nil {
			return err
		}
		return recomputeRating(tx, req.HostelID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) ListHostelReviews(ctx context.Context, hostelID int64, limit, offset int) ([]domain.Review, int64, error) {
	q := s.db.WithContext(ctx).Model(&domain.Review{}).Where("hostel_id = ?", hostelID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var reviews []domain.Review
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

func recomputeRating(tx *gorm.DB, hostelID int64) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("hostel_id = ?", hostelID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	rating := math.Round(agg.Avg*10) / 10
	return tx.Model(&domain.Hostel{}).Where("id = ?", hostelID).
		Updates(map[string]interface{}{"rating": rating, "review_count": agg.Count}).Error
}
