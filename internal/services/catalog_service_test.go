package services

import (
	"context"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCatalogService_Get(t *testing.T) {
	foodID := primitive.NewObjectID()

	tests := []struct {
		name          string
		id            string
		setupMocks    func(*mocks.MockFoodRepository)
		expectedError error
	}{
		{
			name: "existing item",
			id:   foodID.Hex(),
			setupMocks: func(foods *mocks.MockFoodRepository) {
				foods.On("FindByID", mock.Anything, foodID).Return(&domain.Food{
					ID: foodID, Name: "Paneer Roll", Price: 80,
				}, nil)
			},
		},
		{
			name: "missing item",
			id:   foodID.Hex(),
			setupMocks: func(foods *mocks.MockFoodRepository) {
				foods.On("FindByID", mock.Anything, foodID).Return(nil, nil)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name:          "malformed id",
			id:            "not-an-object-id",
			setupMocks:    func(_ *mocks.MockFoodRepository) {},
			expectedError: ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods := new(mocks.MockFoodRepository)
			tt.setupMocks(foods)
			service := NewCatalogService(foods)

			food, err := service.Get(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, food)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Paneer Roll", food.Name)
			}
			foods.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Add(t *testing.T) {
	foods := new(mocks.MockFoodRepository)
	foods.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Food")).Return(nil)
	service := NewCatalogService(foods)

	err := service.Add(context.Background(), &domain.Food{Name: "Juice", Price: 35, Stock: 20})
	assert.NoError(t, err)

	err = service.Add(context.Background(), &domain.Food{Name: "Juice", Price: 35, Stock: -1})
	assert.ErrorIs(t, err, ErrInvalidStock)

	foods.AssertExpectations(t)
	foods.AssertNumberOfCalls(t, "Insert", 1)
}

func TestCatalogService_Remove(t *testing.T) {
	foodID := primitive.NewObjectID()

	t.Run("deletes existing item", func(t *testing.T) {
		foods := new(mocks.MockFoodRepository)
		foods.On("Delete", mock.Anything, foodID).Return(true, nil)
		service := NewCatalogService(foods)

		assert.NoError(t, service.Remove(context.Background(), foodID.Hex()))
		foods.AssertExpectations(t)
	})

	t.Run("missing item", func(t *testing.T) {
		foods := new(mocks.MockFoodRepository)
		foods.On("Delete", mock.Anything, foodID).Return(false, nil)
		service := NewCatalogService(foods)

		assert.ErrorIs(t, service.Remove(context.Background(), foodID.Hex()), ErrItemNotFound)
	})
}

func TestCatalogService_ToggleTodaysMenu(t *testing.T) {
	foodID := primitive.NewObjectID()
	foods := new(mocks.MockFoodRepository)
	foods.On("FindByID", mock.Anything, foodID).Return(&domain.Food{
		ID: foodID, Name: "Biryani", TodaysMenu: false,
	}, nil)
	foods.On("SetTodaysMenu", mock.Anything, foodID, true).Return(nil)
	service := NewCatalogService(foods)

	food, err := service.ToggleTodaysMenu(context.Background(), foodID.Hex())

	assert.NoError(t, err)
	assert.True(t, food.TodaysMenu)
	foods.AssertExpectations(t)
}

func TestCatalogService_SetStock(t *testing.T) {
	foodID := primitive.NewObjectID()

	tests := []struct {
		name          string
		id            string
		stock         int64
		setupMocks    func(*mocks.MockFoodRepository)
		expectedError error
	}{
		{
			name:  "updates stock",
			id:    foodID.Hex(),
			stock: 12,
			setupMocks: func(foods *mocks.MockFoodRepository) {
				foods.On("SetStock", mock.Anything, foodID, int64(12)).Return(true, nil)
			},
		},
		{
			name:          "negative stock rejected before any write",
			id:            foodID.Hex(),
			stock:         -3,
			setupMocks:    func(_ *mocks.MockFoodRepository) {},
			expectedError: ErrInvalidStock,
		},
		{
			name:  "missing item",
			id:    foodID.Hex(),
			stock: 7,
			setupMocks: func(foods *mocks.MockFoodRepository) {
				foods.On("SetStock", mock.Anything, foodID, int64(7)).Return(false, nil)
			},
			expectedError: ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods := new(mocks.MockFoodRepository)
			tt.setupMocks(foods)
			service := NewCatalogService(foods)

			err := service.SetStock(context.Background(), tt.id, tt.stock)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			foods.AssertExpectations(t)
		})
	}
}

func TestCatalogService_LowStock(t *testing.T) {
	foods := new(mocks.MockFoodRepository)
	foods.On("FindLowStock", mock.Anything).Return([]domain.Food{
		{Name: "Samosa", Stock: 2},
		{Name: "Lassi", Stock: 0, LowStockThreshold: 3},
	}, nil)
	service := NewCatalogService(foods)

	items, err := service.LowStock(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.LowOnStock(), "%s should report low stock", item.Name)
	}
	foods.AssertExpectations(t)
}
