package repository

import (
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(f *models.Favorite) error {
	return r.db.Create(f).Error
}

func (r *FavoriteRepository) Remove(userID, listingID uint) error {
	return r.db.Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepository) IsFavorite(userID, listingID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).Count(&c).Error
	return c > 0, err
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Preload("Listing").Where("user_id = ?", userID).
		Order("id ASC").Find(&list).Error
	return list, err
}
