package service

import (
	"errors"
	"fmt"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"gorm.io/gorm"
)

type ConversationService struct {
	repo domain.ConversationRepository
}

func NewConversationService(repo domain.ConversationRepository) *ConversationService {
	return &ConversationService{repo: repo}
}

// FindOrCreate returns the thread for the (buyer, donor, listing) triple,
// creating an empty one if none exists. The composite unique index makes the
// lookup idempotent: repeated calls never spawn a second thread.
func (s *ConversationService) FindOrCreate(buyerID, donorID, listingID uint) (*models.Conversation, error) {
	c, err := s.repo.FindByTriple(buyerID, donorID, listingID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c = &models.Conversation{BuyerID: buyerID, DonorID: donorID, ListingID: listingID}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AppendMessage adds a message to an existing thread. The id and timestamp
// are assigned by storage.
func (s *ConversationService) AppendMessage(conversationID, senderID uint, senderName, text, msgType string) (*models.Message, error) {
	if _, err := s.get(conversationID); err != nil {
		return nil, err
	}
	m := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderName,
		Text:           text,
		Type:           msgType,
	}
	if err := s.repo.AppendMessage(m); err != nil {
		return nil, err
	}
	return m, nil
}

// SendText appends a plain chat message from one of the participants.
func (s *ConversationService) SendText(conversationID uint, sender *models.User, text string) (*models.Message, error) {
	c, err := s.get(conversationID)
	if err != nil {
		return nil, err
	}
	if !c.Involves(sender.ID) {
		return nil, domain.ErrForbidden
	}
	return s.AppendMessage(conversationID, sender.ID, sender.Name, text, models.MessageTypeText)
}

// Get returns a thread with its messages; only participants may read it.
func (s *ConversationService) Get(conversationID, userID uint) (*models.Conversation, error) {
	c, err := s.get(conversationID)
	if err != nil {
		return nil, err
	}
	if !c.Involves(userID) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func (s *ConversationService) ListForUser(userID uint) ([]models.Conversation, error) {
	return s.repo.ListForUser(userID)
}

func (s *ConversationService) get(conversationID uint) (*models.Conversation, error) {
	c, err := s.repo.GetByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conversation %d: %w", conversationID, domain.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}
