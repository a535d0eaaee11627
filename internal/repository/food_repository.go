package repository

import (
	"context"

	"canteen-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodRepository interface {
	Insert(ctx context.Context, food *domain.Food) error
	FindAll(ctx context.Context) ([]domain.Food, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindTodaysMenu(ctx context.Context) ([]domain.Food, error)
	SetTodaysMenu(ctx context.Context, id primitive.ObjectID, flag bool) error
	SetStock(ctx context.Context, id primitive.ObjectID, stock int64) (bool, error)
	FindLowStock(ctx context.Context) ([]domain.Food, error)

	// DecrementStock atomically subtracts qty from the item's stock only if
	// the remaining stock would stay non-negative. Returns false when the
	// item is missing or the stock check fails.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (bool, error)
	// IncrementStock adds qty back, used only to undo a decrement.
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error
}
