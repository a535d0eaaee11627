package repository

import (
	"context"
	"time"

	"canteen-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderQuery narrows order listings. Status and Day are optional; Page is
// 1-based.
type OrderQuery struct {
	UserID string
	Status domain.OrderStatus
	Day    *time.Time
	Page   int64
	Limit  int64
}

// StatusChange is a field-targeted status transition. Guard is the status
// the caller observed; the write applies only while it still holds, so a
// transition that committed in between cannot be overwritten.
type StatusChange struct {
	Guard                 domain.OrderStatus
	Status                domain.OrderStatus
	ActualDeliveryTime    *time.Time
	EstimatedDeliveryTime *time.Time
}

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	ApplyStatusChange(ctx context.Context, id primitive.ObjectID, change StatusChange) (bool, error)
	SetPaymentResult(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus, method domain.PaymentMethod) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	Find(ctx context.Context, q OrderQuery) ([]domain.Order, int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
}
