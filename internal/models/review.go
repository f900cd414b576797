package models

import "time"

// Review is an append-only rating of one user by another. There is
// deliberately no uniqueness on (from, to): a user may review the same
// counterpart more than once.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromUserID uint      `gorm:"not null;index" json:"from_user_id"`
	ToUserID   uint      `gorm:"not null;index" json:"to_user_id"`
	Rating     int       `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Text       string    `gorm:"type:text" json:"text"`
	CreatedAt  time.Time `json:"created_at"`

	From User `gorm:"foreignKey:FromUserID" json:"-"`
}

func (Review) TableName() string { return "reviews" }
