package domain

import "time"

type UserRole string

const (
	RoleCustomer    UserRole = "customer"
	RoleHostelOwner UserRole = "hostel_owner"
	RoleAdmin       UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'customer'"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
