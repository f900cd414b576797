package repository

import (
	"foodbridge/internal/domain"

	"gorm.io/gorm"
)

// UnitOfWork wires repositories into a single gorm transaction so a booking's
// multi-collection write commits or rolls back as one.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(fn func(r domain.Repos) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(domain.Repos{
			Listings:      NewListingRepository(tx),
			Bookings:      NewBookingRepository(tx),
			Conversations: NewConversationRepository(tx),
			Notifications: NewNotificationRepository(tx),
		})
	})
}
