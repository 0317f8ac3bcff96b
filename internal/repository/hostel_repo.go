package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hostelhub/internal/domain"
)

var ErrRoomMissing = errors.New("room not found in hostel")

type HostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) *HostelRepository {
	return &HostelRepository{db: db}
}

func (r *HostelRepository) Create(ctx context.Context, h *domain.Hostel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HostelRepository) GetByID(ctx context.Context, id int64) (*domain.Hostel, error) {
	var h domain.Hostel
	if err := r.db.WithContext(ctx).Preload("Rooms").First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// FindRoom resolves a room inside a hostel by its exact code. The caller
// can tell a missing hostel from a missing room by the returned error.
func (r *HostelRepository) FindRoom(ctx context.Context, hostelID int64, code string) (*domain.Room, error) {
	var h domain.Hostel
	if err := r.db.WithContext(ctx).Select("id").First(&h, hostelID).Error; err != nil {
		return nil, err
	}

	var room domain.Room
	err := r.db.WithContext(ctx).Where("hostel_id = ? AND code = ?", hostelID, code).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomMissing
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// OwnerID returns the owner of a hostel without loading the full record.
func (r *HostelRepository) OwnerID(ctx context.Context, hostelID int64) (int64, error) {
	var h domain.Hostel
	if err := r.db.WithContext(ctx).Select("owner_id").First(&h, hostelID).Error; err != nil {
		return 0, err
	}
	return h.OwnerID, nil
}

type HostelFilter struct {
	City     string
	Area     string
	Type     string
	MinPrice float64
	MaxPrice float64
	Verified *bool
	Limit    int
	Offset   int
}

func (r *HostelRepository) Search(ctx context.Context, f HostelFilter) ([]domain.Hostel, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Hostel{})

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Area != "" {
		q = q.Where("area = ?", f.Area)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Verified != nil {
		q = q.Where("verified = ?", *f.Verified)
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		sub := r.db.Model(&domain.Room{}).Select("hostel_id")
		if f.MinPrice > 0 {
			sub = sub.Where("price_per_month >= ?", f.MinPrice)
		}
		if f.MaxPrice > 0 {
			sub = sub.Where("price_per_month <= ?", f.MaxPrice)
		}
		q = q.Where("id IN (?)", sub)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var hostels []domain.Hostel
	err := q.Preload("Rooms").
		Order("rating DESC, id").
		Limit(limit).
		Offset(f.Offset).
		Find(&hostels).Error
	if err != nil {
		return nil, 0, err
	}
	return hostels, total, nil
}

func (r *HostelRepository) AddRoom(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *HostelRepository) UpdateRating(ctx context.Context, hostelID int64, rating float64, reviewCount int) error {
	return r.db.WithContext(ctx).Model(&domain.Hostel{}).Where("id = ?", hostelID).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount}).Error
}

func (r *HostelRepository) SetVerified(ctx context.Context, hostelID int64, verified bool) error {
	res := r.db.WithContext(ctx).Model(&domain.Hostel{}).Where("id = ?", hostelID).Update("verified", verified)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
