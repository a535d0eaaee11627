package services

import (
	"context"

	"canteen-service/internal/domain"
	"canteen-service/internal/infra"
	"canteen-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentService fronts the external processor for intent creation and
// confirmation. The Order Engine only ever consumes the resulting status.
type PaymentService struct {
	payments infra.PaymentClientInterface
	orders   repository.OrderRepository
}

func NewPaymentService(payments infra.PaymentClientInterface, orders repository.OrderRepository) *PaymentService {
	return &PaymentService{payments: payments, orders: orders}
}

// CreateIntent opens an intent with the processor. When an order reference
// is given it must belong to the caller.
func (s *PaymentService) CreateIntent(ctx context.Context, userID string, amount int64, currency, orderID string) (*infra.PaymentIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = "inr"
	}

	metadata := map[string]string{"userId": userID, "orderId": "pending"}
	if orderID != "" {
		if _, err := s.ownedOrder(ctx, orderID, userID); err != nil {
			return nil, err
		}
		metadata["orderId"] = orderID
	}

	return s.payments.CreateIntent(ctx, amount, currency, metadata)
}

// Confirm checks the intent with the processor and, when it succeeded and an
// order reference is given, marks that order's payment completed.
func (s *PaymentService) Confirm(ctx context.Context, userID, intentID, orderID string, asRFCard bool) (*infra.PaymentIntent, error) {
	if intentID == "" {
		return nil, ErrIntentRequired
	}

	intent, err := s.payments.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, ErrPaymentNotCompleted
	}
	if intent.Status != infra.IntentSucceeded {
		return intent, ErrPaymentNotCompleted
	}

	if orderID != "" {
		order, err := s.ownedOrder(ctx, orderID, userID)
		if err == nil {
			method := domain.MethodCard
			if asRFCard {
				method = domain.MethodRFCard
			}
			if err := s.orders.SetPaymentResult(ctx, order.ID, domain.PaymentCompleted, method); err != nil {
				return nil, err
			}
		}
	}
	return intent, nil
}

func (s *PaymentService) Status(ctx context.Context, intentID string) (*infra.PaymentIntent, error) {
	if intentID == "" {
		return nil, ErrIntentRequired
	}
	intent, err := s.payments.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, ErrIntentNotFound
	}
	return intent, nil
}

func (s *PaymentService) ownedOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orders.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
