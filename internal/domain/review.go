package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	HostelID  int64     `json:"hostel_id" gorm:"index;uniqueIndex:idx_hostel_user_review;not null"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_hostel_user_review;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
