package catalog

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hostelhub/internal/database"
	"hostelhub/internal/domain"
	"hostelhub/internal/repository"
)

type SearchResult struct {
	Hostels []domain.Hostel `json:"hostels"`
	Total   int64           `json:"total"`
}

// Service owns the hostel catalog. Reads go through Redis when a client is
// configured; a nil client degrades to the database silently.
type Service struct {
	hostels *repository.HostelRepository
	rdb     *redis.Client
}

func NewService(hostels *repository.HostelRepository, rdb *redis.Client) *Service {
	return &Service{hostels: hostels, rdb: rdb}
}

// CreateHostel registers a new unverified listing with its rooms.
func (s *Service) CreateHostel(ctx context.Context, ownerID int64, req CreateHostelRequest) (*domain.Hostel, error) {
	h := &domain.Hostel{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.HostelType(req.Type),
		Street:      req.Street,
		Area:        req.Area,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Phone:       req.Phone,
		Email:       req.Email,
		Amenities:   strings.Join(req.Amenities, ","),
	}

	seen := make(map[string]bool, len(req.Rooms))
	for _, r := range req.Rooms {
		if seen[r.RoomID] {
			return nil, ErrDuplicateRoom
		}
		seen[r.RoomID] = true
		h.Rooms = append(h.Rooms, domain.Room{
			Code:              r.RoomID,
			Type:              domain.RoomType(r.Type),
			PricePerMonth:     r.PricePerMonth,
			Capacity:          r.Capacity,
			AvailabilityCount: r.Availability,
		})
	}

	if err := s.hostels.Create(ctx, h); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, err
	}

	log.Printf("catalog: hostel created hostel_id=%d owner_id=%d rooms=%d", h.ID, ownerID, len(h.Rooms))
	return h, nil
}

func (s *Service) GetHostel(ctx context.Context, id int64) (*domain.Hostel, error) {
	var cached domain.Hostel
	if getCached(ctx, s.rdb, hostelCacheKey(id), &cached) && cached.ID == id {
		return &cached, nil
	}

	h, err := s.hostels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, err
	}

	setCached(ctx, s.rdb, hostelCacheKey(id), h, hostelCacheTTL)
	return h, nil
}

// Search filters listings by location, type and room price. Results are
// cached per filter combination for a few minutes.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	f := repository.HostelFilter{
		City:     q.City,
		Area:     q.Area,
		Type:     q.Type,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Verified: q.Verified,
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	}

	key := searchCacheKey(f)
	var cached SearchResult
	if getCached(ctx, s.rdb, key, &cached) && cached.Hostels != nil {
		return &cached, nil
	}

	hostels, total, err := s.hostels.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Hostels: hostels, Total: total}
	setCached(ctx, s.rdb, key, result, searchCacheTTL)
	return result, nil
}

// AddRoom appends a room to a hostel owned by the caller. Admins can add
// rooms anywhere.
func (s *Service) AddRoom(ctx context.Context, hostelID, callerID int64, role string, req RoomInput) (*domain.Room, error) {
	ownerID, err := s.hostels.OwnerID(ctx, hostelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, err
	}
	if ownerID != callerID && role != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	room := &domain.Room{
		HostelID:          hostelID,
		Code:              req.RoomID,
		Type:              domain.RoomType(req.Type),
		PricePerMonth:     req.PricePerMonth,
		Capacity:          req.Capacity,
		AvailabilityCount: req.Availability,
	}
	if err := s.hostels.AddRoom(ctx, room); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, err
	}

	dropCached(ctx, s.rdb, hostelCacheKey(hostelID))
	return room, nil
}

// VerifyHostel flips the admin verification flag and drops the stale cache
// entry.
func (s *Service) VerifyHostel(ctx context.Context, hostelID int64, verified bool) error {
	if err := s.hostels.SetVerified(ctx, hostelID, verified); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHostelNotFound
		}
		return err
	}
	dropCached(ctx, s.rdb, hostelCacheKey(hostelID))
	log.Printf("catalog: hostel verification hostel_id=%d verified=%t", hostelID, verified)
	return nil
}
