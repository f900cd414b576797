package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleDonor = "donor"
	RoleBuyer = "buyer"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:128;not null" json:"name"`
	Email         string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone         string         `gorm:"size:32" json:"phone"`
	PasswordHash  string         `gorm:"size:255" json:"-"`
	Role          string         `gorm:"size:20;not null;index" json:"role"` // donor | buyer
	Bio           string         `gorm:"type:text" json:"bio"`
	EmailVerified bool           `gorm:"default:false" json:"email_verified"`
	PhoneVerified bool           `gorm:"default:false" json:"phone_verified"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsDonor() bool { return u.Role == RoleDonor }
func (u *User) IsBuyer() bool { return u.Role == RoleBuyer }
