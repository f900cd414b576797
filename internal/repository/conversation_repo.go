package repository

import (
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) FindByTriple(buyerID, donorID, listingID uint) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.Where("buyer_id = ? AND donor_id = ? AND listing_id = ?", buyerID, donorID, listingID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationRepository) Create(c *models.Conversation) error {
	return r.db.Create(c).Error
}

func (r *ConversationRepository) GetByID(id uint) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("messages.id ASC")
	}).Preload("Listing").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationRepository) ListForUser(userID uint) ([]models.Conversation, error) {
	var list []models.Conversation
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("messages.id ASC")
	}).Preload("Listing").
		Where("buyer_id = ? OR donor_id = ?", userID, userID).
		Order("id ASC").Find(&list).Error
	return list, err
}

func (r *ConversationRepository) AppendMessage(m *models.Message) error {
	return r.db.Create(m).Error
}
