package service

import (
	"testing"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateBookingStartsPendingWithCreatedEvent(t *testing.T) {
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, listings)

	listings.On("GetByID", uint(7)).Return(&models.Listing{ID: 7, DonorID: 2, Name: "Fresh Bread"}, nil)
	bookings.On("Create", mock.AnythingOfType("*models.Booking")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Booking).ID = 11
	}).Return(nil)

	b, err := svc.Create(7, 3, "2 boxes", "ring the bell")
	assert.NoError(t, err)
	assert.Equal(t, uint(11), b.ID)
	assert.Equal(t, uint(2), b.DonorID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Len(t, b.Timeline, 1)
	assert.Equal(t, models.BookingPending, b.Timeline[0].Status)
	assert.Equal(t, "Booking Created", b.Timeline[0].Label)
	bookings.AssertExpectations(t)
}

func TestCreateBookingMissingListing(t *testing.T) {
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, listings)

	listings.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(99, 3, "1 bag", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	bookings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTransitionWalksTheStatusMachine(t *testing.T) {
	steps := []struct {
		from, to, label string
	}{
		{models.BookingPending, models.BookingConfirmed, "Confirmed by Donor"},
		{models.BookingConfirmed, models.BookingReady, "Ready for Pickup"},
		{models.BookingReady, models.BookingCompleted, "Completed"},
	}
	for _, step := range steps {
		listings := new(MockListingRepository)
		bookings := new(MockBookingRepository)
		svc := NewBookingService(bookings, listings)

		bookings.On("GetByID", uint(11)).Return(&models.Booking{
			ID: 11, Status: step.from,
			Timeline: []models.BookingEvent{{Status: models.BookingPending, Label: models.BookingCreatedLabel}},
		}, nil)
		bookings.On("Save", mock.MatchedBy(func(b *models.Booking) bool {
			return b.Status == step.to
		})).Return(nil)
		bookings.On("AppendEvent", mock.MatchedBy(func(e *models.BookingEvent) bool {
			return e.BookingID == 11 && e.Status == step.to && e.Label == step.label
		})).Return(nil)

		b, err := svc.Transition(11, step.to)
		assert.NoError(t, err)
		assert.Equal(t, step.to, b.Status)
		assert.Equal(t, step.to, b.Timeline[len(b.Timeline)-1].Status)
		assert.Equal(t, step.label, b.Timeline[len(b.Timeline)-1].Label)
		bookings.AssertExpectations(t)
	}
}

func TestTransitionCancelAllowedFromEveryLiveStatus(t *testing.T) {
	for _, from := range []string{models.BookingPending, models.BookingConfirmed, models.BookingReady} {
		listings := new(MockListingRepository)
		bookings := new(MockBookingRepository)
		svc := NewBookingService(bookings, listings)

		bookings.On("GetByID", uint(4)).Return(&models.Booking{ID: 4, Status: from}, nil)
		bookings.On("Save", mock.Anything).Return(nil)
		bookings.On("AppendEvent", mock.MatchedBy(func(e *models.BookingEvent) bool {
			return e.Status == models.BookingCancelled && e.Label == "Cancelled"
		})).Return(nil)

		b, err := svc.Transition(4, models.BookingCancelled)
		assert.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, b.Status)
	}
}

func TestTransitionRejectsIllegalMoves(t *testing.T) {
	cases := []struct{ from, to string }{
		{models.BookingPending, models.BookingReady},
		{models.BookingPending, models.BookingCompleted},
		{models.BookingConfirmed, models.BookingCompleted},
		{models.BookingCompleted, models.BookingPending},
		{models.BookingCancelled, models.BookingConfirmed},
	}
	for _, tc := range cases {
		listings := new(MockListingRepository)
		bookings := new(MockBookingRepository)
		svc := NewBookingService(bookings, listings)

		bookings.On("GetByID", uint(4)).Return(&models.Booking{ID: 4, Status: tc.from}, nil)

		_, err := svc.Transition(4, tc.to)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		bookings.AssertNotCalled(t, "Save", mock.Anything)
		bookings.AssertNotCalled(t, "AppendEvent", mock.Anything)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, listings)

	bookings.On("GetByID", uint(4)).Return(&models.Booking{ID: 4, Status: models.BookingPending}, nil)

	_, err := svc.Transition(4, "shipped")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransitionMissingBooking(t *testing.T) {
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, listings)

	bookings.On("GetByID", uint(123)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Transition(123, models.BookingConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForUserPassesThrough(t *testing.T) {
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(bookings, listings)

	want := []models.Booking{{ID: 1, BuyerID: 3}, {ID: 2, DonorID: 3}}
	bookings.On("ListForUser", uint(3)).Return(want, nil)

	got, err := svc.ListForUser(3)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
