package service

import (
	"foodbridge/internal/domain"
	"foodbridge/internal/models"
)

// DefaultNotificationLimit bounds the feed when the caller does not ask for a
// specific page size.
const DefaultNotificationLimit = 10

type NotificationService struct {
	repo domain.NotificationRepository
}

func NewNotificationService(repo domain.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Append adds an unread entry to the user's feed.
func (s *NotificationService) Append(userID uint, message, icon string) error {
	if icon == "" {
		icon = "🔔"
	}
	return s.repo.Create(&models.Notification{UserID: userID, Message: message, Icon: icon})
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.repo.UnreadCount(userID)
}

// Recent returns the newest notifications first, bounded by limit. It never
// mutates read state; callers flip it explicitly via MarkAllRead.
func (s *NotificationService) Recent(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	return s.repo.Recent(userID, limit)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}
