package domain

import "foodbridge/internal/models"

// ListingFilter narrows the available-listing feed. Zero values mean "no
// constraint"; Price is one of "", "free", "low", "mid", "high".
type ListingFilter struct {
	Category string
	Location string
	Price    string
	Query    string
}

type UserRepository interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(u *models.User) error
}

type ListingRepository interface {
	Create(l *models.Listing) error
	GetByID(id uint) (*models.Listing, error)
	Save(l *models.Listing) error
	Delete(id uint) error
	ListAvailable(f ListingFilter) ([]models.Listing, error)
	ListByDonor(donorID uint) ([]models.Listing, error)
	Locations() ([]string, error)
}

type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	Save(b *models.Booking) error
	AppendEvent(e *models.BookingEvent) error
	ListForUser(userID uint) ([]models.Booking, error)
}

type ConversationRepository interface {
	FindByTriple(buyerID, donorID, listingID uint) (*models.Conversation, error)
	Create(c *models.Conversation) error
	GetByID(id uint) (*models.Conversation, error)
	ListForUser(userID uint) ([]models.Conversation, error)
	AppendMessage(m *models.Message) error
}

type FavoriteRepository interface {
	Add(f *models.Favorite) error
	Remove(userID, listingID uint) error
	IsFavorite(userID, listingID uint) (bool, error)
	ListByUser(userID uint) ([]models.Favorite, error)
}

type ReviewRepository interface {
	Create(r *models.Review) error
	ListForUser(toUserID uint) ([]models.Review, error)
}

type NotificationRepository interface {
	Create(n *models.Notification) error
	UnreadCount(userID uint) (int64, error)
	MarkAllRead(userID uint) error
	Recent(userID uint, limit int) ([]models.Notification, error)
}

// Repos bundles the collections a booking mutates together.
type Repos struct {
	Listings      ListingRepository
	Bookings      BookingRepository
	Conversations ConversationRepository
	Notifications NotificationRepository
}

// UnitOfWork runs fn against repositories bound to a single transaction. An
// error from fn rolls back every write made inside it.
type UnitOfWork interface {
	Do(fn func(r Repos) error) error
}
