package service

import (
	"fmt"
	"math"

	"foodbridge/internal/domain"
	"foodbridge/internal/models"
)

type ReviewService struct {
	repo          domain.ReviewRepository
	notifications domain.NotificationRepository
}

func NewReviewService(repo domain.ReviewRepository, notifications domain.NotificationRepository) *ReviewService {
	return &ReviewService{repo: repo, notifications: notifications}
}

// Record appends a review. Ratings are 1 to 5; a reviewer may rate the same
// user more than once.
func (s *ReviewService) Record(fromUserID, toUserID uint, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	r := &models.Review{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Rating:     rating,
		Text:       text,
	}
	if err := s.repo.Create(r); err != nil {
		return nil, err
	}
	_ = s.notifications.Create(&models.Notification{
		UserID:  fromUserID,
		Message: fmt.Sprintf("You rated this user %d stars", rating),
		Icon:    "⭐",
	})
	return r, nil
}

// AverageRating returns the mean rating received by the user, rounded to one
// decimal place, with the review count. A count of zero means "no ratings":
// the average is meaningless then and must not be read as a score (the
// minimum real rating is 1).
func (s *ReviewService) AverageRating(userID uint) (float64, int, error) {
	reviews, err := s.repo.ListForUser(userID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return avg, len(reviews), nil
}

// ListForUser returns every review left for the user, oldest first.
func (s *ReviewService) ListForUser(userID uint) ([]models.Review, error) {
	return s.repo.ListForUser(userID)
}
