package mocks

import (
	"context"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/infra"
	"canteen-service/internal/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ApplyStatusChange(ctx context.Context, id primitive.ObjectID, change repository.StatusChange) (bool, error) {
	args := m.Called(ctx, id, change)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) SetPaymentResult(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus, method domain.PaymentMethod) error {
	args := m.Called(ctx, id, status, method)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, q repository.OrderQuery) ([]domain.Order, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) RevenueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Insert(ctx context.Context, food *domain.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]domain.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) FindTodaysMenu(ctx context.Context) ([]domain.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *MockFoodRepository) SetTodaysMenu(ctx context.Context, id primitive.ObjectID, flag bool) error {
	args := m.Called(ctx, id, flag)
	return args.Error(0)
}

func (m *MockFoodRepository) SetStock(ctx context.Context, id primitive.ObjectID, stock int64) (bool, error) {
	args := m.Called(ctx, id, stock)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) FindLowStock(ctx context.Context) ([]domain.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *MockFoodRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindByNumber(ctx context.Context, cardNumber string) (*domain.RFCard, error) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RFCard), args.Error(1)
}

func (m *MockCardRepository) DebitIfSufficient(ctx context.Context, cardNumber string, amount int64) (bool, error) {
	args := m.Called(ctx, cardNumber, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardRepository) Credit(ctx context.Context, cardNumber string, amount int64) error {
	args := m.Called(ctx, cardNumber, amount)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Find(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, name string, delta int64) error {
	args := m.Called(ctx, name, delta)
	return args.Error(0)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Insert(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindAll(ctx context.Context, excludeAdmin bool) ([]domain.Feedback, error) {
	args := m.Called(ctx, excludeAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*infra.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.PaymentIntent), args.Error(1)
}

func (m *MockPaymentClient) RetrieveIntent(ctx context.Context, id string) (*infra.PaymentIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.PaymentIntent), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, pattern string, data interface{}) error {
	args := m.Called(ctx, pattern, data)
	return args.Error(0)
}
