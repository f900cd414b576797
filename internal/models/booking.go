package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingReady     = "ready"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// BookingCreatedLabel is written on the very first timeline event of every
// booking.
const BookingCreatedLabel = "Booking Created"

var statusLabels = map[string]string{
	BookingPending:   "Payment Pending",
	BookingConfirmed: "Confirmed by Donor",
	BookingReady:     "Ready for Pickup",
	BookingCompleted: "Completed",
	BookingCancelled: "Cancelled",
}

// StatusLabel returns the timeline label for a booking status. Unrecognized
// statuses fall back to the raw status string.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}

// ValidBookingStatus reports whether s is one of the five booking statuses.
func ValidBookingStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// bookingTransitions is the allowed status machine; completed and cancelled
// are terminal.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingReady, BookingCancelled},
	BookingReady:     {BookingCompleted, BookingCancelled},
}

// CanTransition reports whether a booking may move between the two statuses.
func CanTransition(from, to string) bool {
	for _, s := range bookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Booking is a buyer's claim on a listing. Bookings are never deleted; their
// history lives in the append-only Timeline.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	BuyerID   uint      `gorm:"not null;index" json:"buyer_id"`
	DonorID   uint      `gorm:"not null;index" json:"donor_id"`
	Quantity  string    `gorm:"size:128;not null" json:"quantity"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Status    string    `gorm:"size:20;not null;default:'pending';check:status IN ('pending','confirmed','ready','completed','cancelled')" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Listing  Listing        `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Buyer    User           `gorm:"foreignKey:BuyerID" json:"-"`
	Timeline []BookingEvent `gorm:"foreignKey:BookingID" json:"timeline,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// BookingEvent is one entry of a booking's status timeline. Events are only
// ever appended: the first is always pending/"Booking Created" and the last
// always mirrors the booking's current status.
type BookingEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index" json:"booking_id"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	Label     string    `gorm:"size:64;not null" json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

func (BookingEvent) TableName() string { return "booking_events" }
