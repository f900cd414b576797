package service

import (
	"errors"
	"fmt"
	"strings"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

// CheckoutService sequences everything one booking touches: the booking row,
// the listing flip, the conversation message, and both notifications. The
// whole sequence runs inside one unit of work so a failure partway leaves no
// partial state behind.
type CheckoutService struct {
	uow   domain.UnitOfWork
	users domain.UserRepository
}

func NewCheckoutService(uow domain.UnitOfWork, users domain.UserRepository) *CheckoutService {
	return &CheckoutService{uow: uow, users: users}
}

// BookingReceipt is what a confirmed booking hands back to the buyer.
type BookingReceipt struct {
	Booking      *models.Booking      `json:"booking"`
	Conversation *models.Conversation `json:"conversation"`
}

// ConfirmBooking books a listing for the buyer: creates a pending booking,
// finds or creates the buyer/donor thread for the listing, drops a
// booking-type message into it, marks the listing booked and notifies both
// sides. There is deliberately no availability guard: booking an
// already-booked listing creates a second booking in the same thread, and the
// listing flip stays a no-op.
func (s *CheckoutService) ConfirmBooking(buyerID, listingID uint, quantity, notes string) (*BookingReceipt, error) {
	if strings.TrimSpace(quantity) == "" {
		return nil, fmt.Errorf("%w: quantity is required", domain.ErrValidation)
	}
	buyer, err := s.users.GetByID(buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("buyer %d: %w", buyerID, domain.ErrNotFound)
		}
		return nil, err
	}

	var receipt BookingReceipt
	err = s.uow.Do(func(r domain.Repos) error {
		listing, err := r.Listings.GetByID(listingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("listing %d: %w", listingID, domain.ErrNotFound)
			}
			return err
		}

		booking := &models.Booking{
			ListingID: listing.ID,
			BuyerID:   buyer.ID,
			DonorID:   listing.DonorID,
			Quantity:  quantity,
			Notes:     notes,
			Status:    models.BookingPending,
			Timeline: []models.BookingEvent{
				{Status: models.BookingPending, Label: models.BookingCreatedLabel},
			},
		}
		if err := r.Bookings.Create(booking); err != nil {
			return err
		}

		conv, err := r.Conversations.FindByTriple(buyer.ID, listing.DonorID, listing.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			conv = &models.Conversation{BuyerID: buyer.ID, DonorID: listing.DonorID, ListingID: listing.ID}
			err = r.Conversations.Create(conv)
		}
		if err != nil {
			return err
		}

		text := fmt.Sprintf("Hi! I'm interested in your %q. I need %s quantity.", listing.Name, quantity)
		if notes != "" {
			text += " Special instructions: " + notes
		}
		if err := r.Conversations.AppendMessage(&models.Message{
			ConversationID: conv.ID,
			SenderID:       buyer.ID,
			SenderName:     buyer.Name,
			Text:           text,
			Type:           models.MessageTypeBooking,
		}); err != nil {
			return err
		}

		if listing.Status != models.ListingBooked {
			listing.Status = models.ListingBooked
			if err := r.Listings.Save(listing); err != nil {
				return err
			}
		}

		if err := r.Notifications.Create(&models.Notification{
			UserID:  buyer.ID,
			Message: fmt.Sprintf("Booking confirmed for %q! 📦", listing.Name),
			Icon:    "✅",
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(&models.Notification{
			UserID:  listing.DonorID,
			Message: "New booking request from " + buyer.Name,
			Icon:    "📦",
		}); err != nil {
			return err
		}

		receipt.Booking = booking
		receipt.Conversation = conv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
