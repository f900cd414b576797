package repository

import (
	"strings"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(l *models.Listing) error {
	return r.db.Create(l).Error
}

func (r *ListingRepository) GetByID(id uint) (*models.Listing, error) {
	var l models.Listing
	if err := r.db.Preload("Donor").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Save(l *models.Listing) error {
	return r.db.Save(l).Error
}

func (r *ListingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Listing{}, id).Error
}

// ListAvailable returns available listings matching the filter, in insertion
// order. The search term matches name or description, case-insensitively.
func (r *ListingRepository) ListAvailable(f domain.ListingFilter) ([]models.Listing, error) {
	q := r.db.Preload("Donor").Where("status = ?", models.ListingAvailable)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	switch f.Price {
	case "free":
		q = q.Where("price = 0")
	case "low":
		q = q.Where("price > 0 AND price <= 10")
	case "mid":
		q = q.Where("price > 10 AND price <= 25")
	case "high":
		q = q.Where("price > 25")
	}
	if f.Query != "" {
		term := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	var list []models.Listing
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *ListingRepository) ListByDonor(donorID uint) ([]models.Listing, error) {
	var list []models.Listing
	err := r.db.Where("donor_id = ?", donorID).Order("id ASC").Find(&list).Error
	return list, err
}

// Locations returns the distinct pickup locations across all listings, for
// the location filter dropdown.
func (r *ListingRepository) Locations() ([]string, error) {
	var locs []string
	err := r.db.Model(&models.Listing{}).Distinct("location").Pluck("location", &locs).Error
	return locs, err
}
