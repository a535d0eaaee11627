package repository

import (
	"context"

	"canteen-service/internal/domain"
)

type FeedbackRepository interface {
	Insert(ctx context.Context, fb *domain.Feedback) error
	FindAll(ctx context.Context, excludeAdmin bool) ([]domain.Feedback, error)
}
