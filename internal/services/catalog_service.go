package services

import (
	"context"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService struct {
	foods repository.FoodRepository
}

func NewCatalogService(foods repository.FoodRepository) *CatalogService {
	return &CatalogService{foods: foods}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Food, error) {
	return s.foods.FindAll(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	food, err := s.foods.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrItemNotFound
	}
	return food, nil
}

func (s *CatalogService) Add(ctx context.Context, food *domain.Food) error {
	if food.Stock < 0 {
		return ErrInvalidStock
	}
	return s.foods.Insert(ctx, food)
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrItemNotFound
	}
	deleted, err := s.foods.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

func (s *CatalogService) TodaysMenu(ctx context.Context) ([]domain.Food, error) {
	return s.foods.FindTodaysMenu(ctx)
}

// ToggleTodaysMenu flips the flag and returns the updated item.
func (s *CatalogService) ToggleTodaysMenu(ctx context.Context, id string) (*domain.Food, error) {
	food, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.foods.SetTodaysMenu(ctx, food.ID, !food.TodaysMenu); err != nil {
		return nil, err
	}
	food.TodaysMenu = !food.TodaysMenu
	return food, nil
}

func (s *CatalogService) SetStock(ctx context.Context, id string, stock int64) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrItemNotFound
	}
	matched, err := s.foods.SetStock(ctx, oid, stock)
	if err != nil {
		return err
	}
	if !matched {
		return ErrItemNotFound
	}
	return nil
}

func (s *CatalogService) LowStock(ctx context.Context) ([]domain.Food, error) {
	return s.foods.FindLowStock(ctx)
}
