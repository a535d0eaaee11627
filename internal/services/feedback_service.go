package services

import (
	"context"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"
)

type FeedbackService struct {
	feedback repository.FeedbackRepository
}

func NewFeedbackService(feedback repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Submit stores the rating as given. The order reference is not checked
// against the order collection and ownership is not verified.
func (s *FeedbackService) Submit(ctx context.Context, orderID string, rating int, comment, user string, isAdmin bool) error {
	if orderID == "" {
		return ErrOrderIDRequired
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	fb := &domain.Feedback{
		OrderID: orderID,
		Rating:  rating,
		Comment: comment,
		User:    user,
		IsAdmin: isAdmin,
	}
	return s.feedback.Insert(ctx, fb)
}

func (s *FeedbackService) List(ctx context.Context, excludeAdmin bool) ([]domain.Feedback, error) {
	return s.feedback.FindAll(ctx, excludeAdmin)
}
