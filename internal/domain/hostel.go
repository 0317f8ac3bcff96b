package domain

import "time"

type HostelType string

const (
	HostelBoys      HostelType = "boys"
	HostelGirls     HostelType = "girls"
	HostelPG        HostelType = "pg"
	HostelCoLiving  HostelType = "co-living"
	HostelTravelers HostelType = "travelers"
	HostelStudent   HostelType = "student"
)

type Hostel struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	OwnerID     int64      `json:"owner_id" gorm:"index;not null"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Type        HostelType `json:"type" gorm:"type:varchar(20);index;not null"`
	Street      string     `json:"street"`
	Area        string     `json:"area" gorm:"index:idx_city_area"`
	City        string     `json:"city" gorm:"index:idx_city_area"`
	State       string     `json:"state"`
	Pincode     string     `json:"pincode"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Amenities   string     `json:"amenities,omitempty" gorm:"type:text"`
	Verified    bool       `json:"verified" gorm:"default:false;index"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	ReviewCount int        `json:"review_count" gorm:"default:0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HostelID"`
}

func (Hostel) TableName() string { return "hostels" }

type RoomType string

const (
	RoomSingle    RoomType = "single"
	RoomDouble    RoomType = "double"
	RoomTriple    RoomType = "triple"
	RoomDormitory RoomType = "dormitory"
)

// Room belongs to a hostel. Code is the caller-facing room identifier;
// lookups from the booking flow match it by exact string.
type Room struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	HostelID          int64     `json:"hostel_id" gorm:"index;uniqueIndex:idx_hostel_room;not null"`
	Code              string    `json:"room_id" gorm:"column:code;uniqueIndex:idx_hostel_room;not null"`
	Type              RoomType  `json:"type" gorm:"type:varchar(20);not null"`
	PricePerMonth     float64   `json:"price_per_month" gorm:"not null"`
	Capacity          int       `json:"capacity" gorm:"not null"`
	AvailabilityCount int       `json:"availability_count" gorm:"default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
