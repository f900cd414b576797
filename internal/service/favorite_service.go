package service

import (
	"foodbridge/internal/domain"
	"foodbridge/internal/models"
)

type FavoriteService struct {
	repo          domain.FavoriteRepository
	notifications domain.NotificationRepository
}

func NewFavoriteService(repo domain.FavoriteRepository, notifications domain.NotificationRepository) *FavoriteService {
	return &FavoriteService{repo: repo, notifications: notifications}
}

// Toggle bookmarks the listing for the user, or removes the bookmark if it
// already exists. Returns whether the listing is now a favorite.
func (s *FavoriteService) Toggle(userID, listingID uint) (bool, error) {
	fav, err := s.repo.IsFavorite(userID, listingID)
	if err != nil {
		return false, err
	}
	if fav {
		if err := s.repo.Remove(userID, listingID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.repo.Add(&models.Favorite{UserID: userID, ListingID: listingID}); err != nil {
		return false, err
	}
	_ = s.notifications.Create(&models.Notification{
		UserID:  userID,
		Message: "Added to favorites!",
		Icon:    "❤️",
	})
	return true, nil
}

func (s *FavoriteService) IsFavorite(userID, listingID uint) (bool, error) {
	return s.repo.IsFavorite(userID, listingID)
}

func (s *FavoriteService) ListByUser(userID uint) ([]models.Favorite, error) {
	return s.repo.ListByUser(userID)
}
