package repository

import (
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(rev *models.Review) error {
	return r.db.Create(rev).Error
}

func (r *ReviewRepository) ListForUser(toUserID uint) ([]models.Review, error) {
	var list []models.Review
	err := r.db.Preload("From").Where("to_user_id = ?", toUserID).
		Order("id ASC").Find(&list).Error
	return list, err
}
