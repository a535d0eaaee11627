package services

import (
	"context"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/infra"
	"canteen-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPaymentService_CreateIntent(t *testing.T) {
	orderID := primitive.NewObjectID()

	tests := []struct {
		name          string
		amount        int64
		currency      string
		orderID       string
		setupMocks    func(*mocks.MockPaymentClient, *mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:     "creates intent with default currency",
			amount:   250,
			currency: "",
			setupMocks: func(payments *mocks.MockPaymentClient, _ *mocks.MockOrderRepository) {
				payments.On("CreateIntent", mock.Anything, int64(250), "inr", mock.Anything).Return(&infra.PaymentIntent{
					ID: "pi_1", Status: infra.IntentPending, Amount: 250, Currency: "inr",
				}, nil)
			},
		},
		{
			name:          "non-positive amount rejected",
			amount:        0,
			setupMocks:    func(_ *mocks.MockPaymentClient, _ *mocks.MockOrderRepository) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:    "order reference must belong to the caller",
			amount:  250,
			orderID: orderID.Hex(),
			setupMocks: func(_ *mocks.MockPaymentClient, orders *mocks.MockOrderRepository) {
				orders.On("FindByID", mock.Anything, orderID).Return(&domain.Order{
					ID: orderID, UserID: "someone-else",
				}, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "owned order is tagged into metadata",
			amount:  250,
			orderID: orderID.Hex(),
			setupMocks: func(payments *mocks.MockPaymentClient, orders *mocks.MockOrderRepository) {
				orders.On("FindByID", mock.Anything, orderID).Return(&domain.Order{
					ID: orderID, UserID: "u1",
				}, nil)
				payments.On("CreateIntent", mock.Anything, int64(250), "inr", map[string]string{
					"userId": "u1", "orderId": orderID.Hex(),
				}).Return(&infra.PaymentIntent{ID: "pi_2", Status: infra.IntentPending}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := new(mocks.MockPaymentClient)
			orders := new(mocks.MockOrderRepository)
			tt.setupMocks(payments, orders)
			service := NewPaymentService(payments, orders)

			intent, err := service.CreateIntent(context.Background(), "u1", tt.amount, tt.currency, tt.orderID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, intent)
			}
			payments.AssertExpectations(t)
			orders.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Confirm(t *testing.T) {
	orderID := primitive.NewObjectID()

	t.Run("succeeded intent marks the order paid", func(t *testing.T) {
		payments := new(mocks.MockPaymentClient)
		orders := new(mocks.MockOrderRepository)
		payments.On("RetrieveIntent", mock.Anything, "pi_ok").Return(&infra.PaymentIntent{
			ID: "pi_ok", Status: infra.IntentSucceeded,
		}, nil)
		orders.On("FindByID", mock.Anything, orderID).Return(&domain.Order{
			ID: orderID, UserID: "u1", PaymentStatus: domain.PaymentPending,
		}, nil)
		orders.On("SetPaymentResult", mock.Anything, orderID, domain.PaymentCompleted, domain.MethodCard).Return(nil)
		service := NewPaymentService(payments, orders)

		intent, err := service.Confirm(context.Background(), "u1", "pi_ok", orderID.Hex(), false)

		assert.NoError(t, err)
		assert.Equal(t, infra.IntentSucceeded, intent.Status)
		payments.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("pending intent is returned with an error", func(t *testing.T) {
		payments := new(mocks.MockPaymentClient)
		orders := new(mocks.MockOrderRepository)
		payments.On("RetrieveIntent", mock.Anything, "pi_wait").Return(&infra.PaymentIntent{
			ID: "pi_wait", Status: infra.IntentPending,
		}, nil)
		service := NewPaymentService(payments, orders)

		intent, err := service.Confirm(context.Background(), "u1", "pi_wait", "", false)

		assert.ErrorIs(t, err, ErrPaymentNotCompleted)
		assert.NotNil(t, intent)
	})

	t.Run("missing intent id rejected", func(t *testing.T) {
		service := NewPaymentService(new(mocks.MockPaymentClient), new(mocks.MockOrderRepository))

		_, err := service.Confirm(context.Background(), "u1", "", "", false)
		assert.ErrorIs(t, err, ErrIntentRequired)
	})
}

func TestPaymentService_Status(t *testing.T) {
	payments := new(mocks.MockPaymentClient)
	orders := new(mocks.MockOrderRepository)
	payments.On("RetrieveIntent", mock.Anything, "pi_gone").Return(nil, nil)
	service := NewPaymentService(payments, orders)

	_, err := service.Status(context.Background(), "pi_gone")
	assert.ErrorIs(t, err, ErrIntentNotFound)

	_, err = service.Status(context.Background(), "")
	assert.ErrorIs(t, err, ErrIntentRequired)
}
