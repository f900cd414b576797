package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ListingAvailable = "available"
	ListingBooked    = "booked"
)

// CategoryOther is stored when a donor picks no category from FoodCategories.
const CategoryOther = "Other"

// FoodCategories is the fixed category set offered to donors.
var FoodCategories = []string{
	"🍕 Pizza",
	"🍜 Noodles",
	"🥗 Salad",
	"🍲 Soup",
	"🥘 Curry",
	"🍛 Rice Dishes",
	"🍞 Bread & Bakery",
	"🥩 Meat",
	"🍗 Poultry",
	"🐟 Seafood",
	"🥦 Vegetables",
	"🍰 Desserts",
	"🥛 Beverages",
	"🥫 Canned/Packaged",
}

type Listing struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	DonorID        uint           `gorm:"not null;index" json:"donor_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Quantity       string         `gorm:"size:128;not null" json:"quantity"` // free text, e.g. "3 boxes"
	Location       string         `gorm:"size:255;not null;index" json:"location"`
	PickupTime     time.Time      `gorm:"not null" json:"pickup_time"`
	Price          float64        `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 0 means free
	Category       string         `gorm:"size:64;index" json:"category"`
	PhotoURL       string         `gorm:"size:512" json:"photo_url"`
	ThumbnailURL   string         `gorm:"size:512" json:"thumbnail_url"`
	Status         string         `gorm:"size:20;not null;default:'available';index" json:"status"` // available | booked
	SafetyVerified bool           `gorm:"default:false" json:"safety_verified"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Donor User `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (Listing) TableName() string { return "listings" }

func (l *Listing) IsAvailable() bool { return l.Status == ListingAvailable }
func (l *Listing) IsFree() bool      { return l.Price == 0 }
