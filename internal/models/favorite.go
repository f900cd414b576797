package models

import "time"

// Favorite bookmarks a listing for a user. Rows are hard-deleted on toggle so
// the (user, listing) unique index stays reusable.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_fav_user_listing" json:"user_id"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_fav_user_listing" json:"listing_id"`
	CreatedAt time.Time `json:"added_at"`

	Listing Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (Favorite) TableName() string { return "favorites" }
