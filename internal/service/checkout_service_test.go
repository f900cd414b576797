package service

import (
	"errors"
	"testing"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type checkoutFixture struct {
	users         *MockUserRepository
	listings      *MockListingRepository
	bookings      *MockBookingRepository
	conversations *MockConversationRepository
	notifications *MockNotificationRepository
	svc           *CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		users:         new(MockUserRepository),
		listings:      new(MockListingRepository),
		bookings:      new(MockBookingRepository),
		conversations: new(MockConversationRepository),
		notifications: new(MockNotificationRepository),
	}
	uow := &fakeUnitOfWork{repos: domain.Repos{
		Listings:      f.listings,
		Bookings:      f.bookings,
		Conversations: f.conversations,
		Notifications: f.notifications,
	}}
	f.svc = NewCheckoutService(uow, f.users)
	return f
}

func TestConfirmBookingFirstTime(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("GetByID", uint(3)).Return(&models.User{ID: 3, Name: "Bella"}, nil)
	f.listings.On("GetByID", uint(7)).Return(&models.Listing{
		ID: 7, DonorID: 2, Name: "Fresh Bread", Status: models.ListingAvailable,
	}, nil)
	f.bookings.On("Create", mock.MatchedBy(func(b *models.Booking) bool {
		return b.ListingID == 7 && b.BuyerID == 3 && b.DonorID == 2 &&
			b.Status == models.BookingPending &&
			len(b.Timeline) == 1 && b.Timeline[0].Label == "Booking Created"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Booking).ID = 21
	}).Return(nil)
	f.conversations.On("FindByTriple", uint(3), uint(2), uint(7)).Return(nil, gorm.ErrRecordNotFound)
	f.conversations.On("Create", mock.MatchedBy(func(c *models.Conversation) bool {
		return c.BuyerID == 3 && c.DonorID == 2 && c.ListingID == 7
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Conversation).ID = 5
	}).Return(nil)
	f.conversations.On("AppendMessage", mock.MatchedBy(func(m *models.Message) bool {
		return m.ConversationID == 5 && m.SenderID == 3 && m.SenderName == "Bella" &&
			m.Type == models.MessageTypeBooking &&
			m.Text == `Hi! I'm interested in your "Fresh Bread". I need 2 boxes quantity. Special instructions: ring the bell`
	})).Return(nil)
	f.listings.On("Save", mock.MatchedBy(func(l *models.Listing) bool {
		return l.ID == 7 && l.Status == models.ListingBooked
	})).Return(nil)
	f.notifications.On("Create", mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 3 && n.Icon == "✅" && n.Message == `Booking confirmed for "Fresh Bread"! 📦`
	})).Return(nil)
	f.notifications.On("Create", mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 2 && n.Icon == "📦" && n.Message == "New booking request from Bella"
	})).Return(nil)

	receipt, err := f.svc.ConfirmBooking(3, 7, "2 boxes", "ring the bell")
	assert.NoError(t, err)
	assert.Equal(t, uint(21), receipt.Booking.ID)
	assert.Equal(t, uint(5), receipt.Conversation.ID)

	f.bookings.AssertExpectations(t)
	f.conversations.AssertExpectations(t)
	f.listings.AssertExpectations(t)
	f.notifications.AssertExpectations(t)
}

// A second booking on an already-booked listing reuses the existing thread and
// leaves the listing row untouched.
func TestConfirmBookingReusesConversation(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("GetByID", uint(3)).Return(&models.User{ID: 3, Name: "Bella"}, nil)
	f.listings.On("GetByID", uint(7)).Return(&models.Listing{
		ID: 7, DonorID: 2, Name: "Fresh Bread", Status: models.ListingBooked,
	}, nil)
	f.bookings.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Booking).ID = 22
	}).Return(nil)
	f.conversations.On("FindByTriple", uint(3), uint(2), uint(7)).Return(&models.Conversation{
		ID: 5, BuyerID: 3, DonorID: 2, ListingID: 7,
	}, nil)
	f.conversations.On("AppendMessage", mock.MatchedBy(func(m *models.Message) bool {
		return m.ConversationID == 5 &&
			m.Text == `Hi! I'm interested in your "Fresh Bread". I need 1 bag quantity.`
	})).Return(nil)
	f.notifications.On("Create", mock.Anything).Return(nil).Twice()

	receipt, err := f.svc.ConfirmBooking(3, 7, "1 bag", "")
	assert.NoError(t, err)
	assert.Equal(t, uint(22), receipt.Booking.ID)
	assert.Equal(t, uint(5), receipt.Conversation.ID)

	f.conversations.AssertNotCalled(t, "Create", mock.Anything)
	f.listings.AssertNotCalled(t, "Save", mock.Anything)
	f.notifications.AssertExpectations(t)
}

func TestConfirmBookingBlankQuantity(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.ConfirmBooking(3, 7, "   ", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestConfirmBookingMissingBuyer(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("GetByID", uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.ConfirmBooking(3, 7, "1 bag", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestConfirmBookingMissingListing(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("GetByID", uint(3)).Return(&models.User{ID: 3, Name: "Bella"}, nil)
	f.listings.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.ConfirmBooking(3, 99, "1 bag", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestConfirmBookingPropagatesStepFailure(t *testing.T) {
	f := newCheckoutFixture()
	boom := errors.New("insert failed")

	f.users.On("GetByID", uint(3)).Return(&models.User{ID: 3, Name: "Bella"}, nil)
	f.listings.On("GetByID", uint(7)).Return(&models.Listing{
		ID: 7, DonorID: 2, Name: "Fresh Bread", Status: models.ListingAvailable,
	}, nil)
	f.bookings.On("Create", mock.Anything).Return(boom)

	_, err := f.svc.ConfirmBooking(3, 7, "1 bag", "")
	assert.ErrorIs(t, err, boom)
	f.conversations.AssertNotCalled(t, "FindByTriple", mock.Anything, mock.Anything, mock.Anything)
	f.notifications.AssertNotCalled(t, "Create", mock.Anything)
}
