package models

import "time"

const (
	MessageTypeText    = "text"
	MessageTypeBooking = "booking"
)

// Conversation is the single message thread for a (buyer, donor, listing)
// triple. The composite unique index is the lookup key: repeated bookings of
// the same listing by the same buyer always land in the same thread.
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BuyerID   uint      `gorm:"not null;uniqueIndex:idx_conv_triple" json:"buyer_id"`
	DonorID   uint      `gorm:"not null;uniqueIndex:idx_conv_triple" json:"donor_id"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_conv_triple" json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`

	Buyer    User      `gorm:"foreignKey:BuyerID" json:"-"`
	Donor    User      `gorm:"foreignKey:DonorID" json:"-"`
	Listing  Listing   `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string { return "conversations" }

// Involves reports whether the user is one of the two participants.
func (c *Conversation) Involves(userID uint) bool {
	return c.BuyerID == userID || c.DonorID == userID
}

type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint      `gorm:"not null;index" json:"sender_id"`
	SenderName     string    `gorm:"size:128;not null" json:"sender_name"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	Type           string    `gorm:"size:20;not null;default:'text'" json:"type"` // text | booking
	CreatedAt      time.Time `json:"created_at"`
}

func (Message) TableName() string { return "messages" }
