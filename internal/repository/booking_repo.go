package repository

import (
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.Preload("Timeline", func(db *gorm.DB) *gorm.DB {
		return db.Order("booking_events.id ASC")
	}).Preload("Listing").First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Save(b *models.Booking) error {
	return r.db.Omit("Timeline", "Listing", "Buyer").Save(b).Error
}

func (r *BookingRepository) AppendEvent(e *models.BookingEvent) error {
	return r.db.Create(e).Error
}

// ListForUser returns bookings where the user is either buyer or donor.
func (r *BookingRepository) ListForUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Preload("Timeline", func(db *gorm.DB) *gorm.DB {
		return db.Order("booking_events.id ASC")
	}).Preload("Listing").
		Where("buyer_id = ? OR donor_id = ?", userID, userID).
		Order("id ASC").Find(&list).Error
	return list, err
}
