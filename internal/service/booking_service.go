package service

import (
	"errors"
	"fmt"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

// BookingService owns the booking status machine. Every status change appends
// a timeline event; bookings are never deleted.
type BookingService struct {
	bookings domain.BookingRepository
	listings domain.ListingRepository
}

func NewBookingService(bookings domain.BookingRepository, listings domain.ListingRepository) *BookingService {
	return &BookingService{bookings: bookings, listings: listings}
}

// Create opens a pending booking against an existing listing. The timeline
// starts with the single "Booking Created" event.
func (s *BookingService) Create(listingID, buyerID uint, quantity, notes string) (*models.Booking, error) {
	listing, err := s.listings.GetByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("listing %d: %w", listingID, domain.ErrNotFound)
		}
		return nil, err
	}
	b := &models.Booking{
		ListingID: listingID,
		BuyerID:   buyerID,
		DonorID:   listing.DonorID,
		Quantity:  quantity,
		Notes:     notes,
		Status:    models.BookingPending,
		Timeline: []models.BookingEvent{
			{Status: models.BookingPending, Label: models.BookingCreatedLabel},
		},
	}
	if err := s.bookings.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Transition moves a booking to a new status and appends the matching
// timeline event. Moves not in the status machine are rejected; completed and
// cancelled are terminal.
func (s *BookingService) Transition(bookingID uint, newStatus string) (*models.Booking, error) {
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", bookingID, domain.ErrNotFound)
		}
		return nil, err
	}
	if !models.ValidBookingStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}
	if !models.CanTransition(b.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, newStatus)
	}
	b.Status = newStatus
	if err := s.bookings.Save(b); err != nil {
		return nil, err
	}
	event := &models.BookingEvent{
		BookingID: b.ID,
		Status:    newStatus,
		Label:     models.StatusLabel(newStatus),
	}
	if err := s.bookings.AppendEvent(event); err != nil {
		return nil, err
	}
	b.Timeline = append(b.Timeline, *event)
	return b, nil
}

// ListForUser returns every booking the user participates in, as buyer or
// donor.
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	return s.bookings.ListForUser(userID)
}
