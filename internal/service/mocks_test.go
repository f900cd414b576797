package service

import (
	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(u *models.User) error { return m.Called(u).Error(0) }
func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) Update(u *models.User) error { return m.Called(u).Error(0) }

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Create(l *models.Listing) error { return m.Called(l).Error(0) }
func (m *MockListingRepository) GetByID(id uint) (*models.Listing, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}
func (m *MockListingRepository) Save(l *models.Listing) error { return m.Called(l).Error(0) }
func (m *MockListingRepository) Delete(id uint) error         { return m.Called(id).Error(0) }
func (m *MockListingRepository) ListAvailable(f domain.ListingFilter) ([]models.Listing, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}
func (m *MockListingRepository) ListByDonor(donorID uint) ([]models.Listing, error) {
	args := m.Called(donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}
func (m *MockListingRepository) Locations() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Create(b *models.Booking) error { return m.Called(b).Error(0) }
func (m *MockBookingRepository) GetByID(id uint) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *MockBookingRepository) Save(b *models.Booking) error { return m.Called(b).Error(0) }
func (m *MockBookingRepository) AppendEvent(e *models.BookingEvent) error {
	return m.Called(e).Error(0)
}
func (m *MockBookingRepository) ListForUser(userID uint) ([]models.Booking, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockConversationRepository struct{ mock.Mock }

func (m *MockConversationRepository) FindByTriple(buyerID, donorID, listingID uint) (*models.Conversation, error) {
	args := m.Called(buyerID, donorID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}
func (m *MockConversationRepository) Create(c *models.Conversation) error {
	return m.Called(c).Error(0)
}
func (m *MockConversationRepository) GetByID(id uint) (*models.Conversation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}
func (m *MockConversationRepository) ListForUser(userID uint) ([]models.Conversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}
func (m *MockConversationRepository) AppendMessage(msg *models.Message) error {
	return m.Called(msg).Error(0)
}

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Add(f *models.Favorite) error { return m.Called(f).Error(0) }
func (m *MockFavoriteRepository) Remove(userID, listingID uint) error {
	return m.Called(userID, listingID).Error(0)
}
func (m *MockFavoriteRepository) IsFavorite(userID, listingID uint) (bool, error) {
	args := m.Called(userID, listingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFavoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Create(r *models.Review) error { return m.Called(r).Error(0) }
func (m *MockReviewRepository) ListForUser(toUserID uint) ([]models.Review, error) {
	args := m.Called(toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Create(n *models.Notification) error {
	return m.Called(n).Error(0)
}
func (m *MockNotificationRepository) UnreadCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepository) MarkAllRead(userID uint) error {
	return m.Called(userID).Error(0)
}
func (m *MockNotificationRepository) Recent(userID uint, limit int) ([]models.Notification, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

// fakeUnitOfWork hands the test's mock repos to the callback with no
// transaction underneath; the callback's error is surfaced unchanged.
type fakeUnitOfWork struct {
	repos domain.Repos
}

func (f *fakeUnitOfWork) Do(fn func(r domain.Repos) error) error {
	return fn(f.repos)
}
