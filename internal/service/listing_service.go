package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

// ListingInput carries the donor-editable fields of a listing.
type ListingInput struct {
	Name           string
	Description    string
	Quantity       string
	Location       string
	PickupTime     time.Time
	Price          float64
	Category       string
	PhotoURL       string
	ThumbnailURL   string
	SafetyVerified bool
}

type ListingService struct {
	repo          domain.ListingRepository
	notifications domain.NotificationRepository
}

func NewListingService(repo domain.ListingRepository, notifications domain.NotificationRepository) *ListingService {
	return &ListingService{repo: repo, notifications: notifications}
}

func (s *ListingService) validate(in ListingInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Quantity) == "" {
		return fmt.Errorf("%w: quantity is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if in.PickupTime.IsZero() {
		return fmt.Errorf("%w: pickup time is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}

// Create posts a new listing for the donor, status available. The donor must
// have confirmed food safety standards.
func (s *ListingService) Create(donorID uint, in ListingInput) (*models.Listing, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if !in.SafetyVerified {
		return nil, fmt.Errorf("%w: food safety standards must be confirmed", domain.ErrValidation)
	}
	if in.Category == "" {
		in.Category = models.CategoryOther
	}
	l := &models.Listing{
		DonorID:        donorID,
		Name:           in.Name,
		Description:    in.Description,
		Quantity:       in.Quantity,
		Location:       in.Location,
		PickupTime:     in.PickupTime,
		Price:          in.Price,
		Category:       in.Category,
		PhotoURL:       in.PhotoURL,
		ThumbnailURL:   in.ThumbnailURL,
		Status:         models.ListingAvailable,
		SafetyVerified: true,
	}
	if err := s.repo.Create(l); err != nil {
		return nil, err
	}
	_ = s.notifications.Create(&models.Notification{
		UserID:  donorID,
		Message: fmt.Sprintf("Food item %q posted! 🎉", l.Name),
		Icon:    "📝",
	})
	return l, nil
}

// Update edits a listing's mutable fields. Only the owning donor may edit; a
// blank photo URL keeps the existing photo.
func (s *ListingService) Update(listingID, donorID uint, in ListingInput) (*models.Listing, error) {
	l, err := s.get(listingID)
	if err != nil {
		return nil, err
	}
	if l.DonorID != donorID {
		return nil, domain.ErrForbidden
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	l.Name = in.Name
	l.Description = in.Description
	l.Quantity = in.Quantity
	l.Location = in.Location
	l.PickupTime = in.PickupTime
	l.Price = in.Price
	if in.Category != "" {
		l.Category = in.Category
	}
	if in.PhotoURL != "" {
		l.PhotoURL = in.PhotoURL
		l.ThumbnailURL = in.ThumbnailURL
	}
	if err := s.repo.Save(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a listing. Only the owning donor may delete.
func (s *ListingService) Delete(listingID, donorID uint) error {
	l, err := s.get(listingID)
	if err != nil {
		return err
	}
	if l.DonorID != donorID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(listingID)
}

// MarkBooked flips a listing to booked. Calling it on an already-booked
// listing is a no-op, not an error.
func (s *ListingService) MarkBooked(listingID uint) error {
	l, err := s.get(listingID)
	if err != nil {
		return err
	}
	if l.Status == models.ListingBooked {
		return nil
	}
	l.Status = models.ListingBooked
	return s.repo.Save(l)
}

func (s *ListingService) Get(listingID uint) (*models.Listing, error) {
	return s.get(listingID)
}

func (s *ListingService) ListAvailable(f domain.ListingFilter) ([]models.Listing, error) {
	return s.repo.ListAvailable(f)
}

func (s *ListingService) ListByDonor(donorID uint) ([]models.Listing, error) {
	return s.repo.ListByDonor(donorID)
}

func (s *ListingService) Locations() ([]string, error) {
	return s.repo.Locations()
}

func (s *ListingService) get(listingID uint) (*models.Listing, error) {
	l, err := s.repo.GetByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("listing %d: %w", listingID, domain.ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}
