package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"canteen-service/internal/domain"
	"canteen-service/internal/infra"
	rabbit "canteen-service/internal/infra/rabbitmq"
	"canteen-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type CheckoutLine struct {
	FoodID   string
	Quantity int64
}

type CheckoutInput struct {
	UserID              string
	Items               []CheckoutLine
	Address             domain.DeliveryAddress
	SpecialInstructions string
	PaymentMethod       domain.PaymentMethod
	RFCardNumber        string
	PaymentIntentID     string
}

// OrderService is the checkout engine: it validates lines against the
// catalog, settles payment, deducts stock and persists the order.
type OrderService struct {
	orders      repository.OrderRepository
	foods       repository.FoodRepository
	ledger      *LedgerService
	payments    infra.PaymentClientInterface
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(
	orders repository.OrderRepository,
	foods repository.FoodRepository,
	ledger *LedgerService,
	payments infra.PaymentClientInterface,
	publisher rabbit.PublisherInterface,
) *OrderService {
	return &OrderService{
		orders:    orders,
		foods:     foods,
		ledger:    ledger,
		payments:  payments,
		publisher: publisher,
	}
}

// SetRedisClient enables the atomic per-day order-number sequence. Without
// it the sequence falls back to counting today's orders, which can collide
// under concurrent checkouts.
func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Checkout runs the full order transaction. The RF-card debit happens
// before stock deduction; if any later step fails the debit is refunded.
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	method := input.PaymentMethod
	if method == "" {
		method = domain.MethodCash
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	lines, totalAmount, err := s.resolveLines(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	debited := false
	switch method {
	case domain.MethodRFCard:
		if input.RFCardNumber == "" {
			return nil, ErrCardRequired
		}
		if err := s.ledger.Debit(ctx, input.RFCardNumber, totalAmount); err != nil {
			return nil, err
		}
		debited = true
	case domain.MethodCard:
		if err := s.verifyIntent(ctx, input.PaymentIntentID); err != nil {
			return nil, err
		}
	}

	deducted, err := s.deductStock(ctx, lines)
	if err != nil {
		s.compensate(ctx, input, totalAmount, debited, deducted)
		return nil, err
	}

	now := time.Now()
	orderNumber, err := s.nextOrderNumber(ctx, now)
	if err != nil {
		s.compensate(ctx, input, totalAmount, debited, deducted)
		return nil, err
	}

	paymentStatus := domain.PaymentPending
	if method == domain.MethodCard || method == domain.MethodRFCard {
		paymentStatus = domain.PaymentCompleted
	}

	order := &domain.Order{
		UserID:              input.UserID,
		Items:               lines,
		TotalAmount:         totalAmount,
		Status:              domain.StatusConfirmed,
		PaymentStatus:       paymentStatus,
		PaymentMethod:       method,
		DeliveryAddress:     input.Address,
		SpecialInstructions: input.SpecialInstructions,
		OrderNumber:         orderNumber,
		TokenNumber:         newPickupToken(),
	}
	if method == domain.MethodRFCard {
		order.RFCardNumber = input.RFCardNumber
	}

	if err := s.orders.Save(ctx, order); err != nil {
		s.compensate(ctx, input, totalAmount, debited, deducted)
		return nil, err
	}

	go s.publishEvent(domain.EventOrderCreated, order)
	return order, nil
}

// resolveLines snapshots catalog fields into order lines and computes the
// total. Stock is pre-checked here; the authoritative check is the
// conditional decrement in deductStock.
func (s *OrderService) resolveLines(ctx context.Context, items []CheckoutLine) ([]domain.OrderLine, int64, error) {
	lines := make([]domain.OrderLine, 0, len(items))
	var total int64

	for _, item := range items {
		oid, err := primitive.ObjectIDFromHex(item.FoodID)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s", ErrItemNotFound, item.FoodID)
		}
		food, err := s.foods.FindByID(ctx, oid)
		if err != nil {
			return nil, 0, err
		}
		if food == nil {
			return nil, 0, fmt.Errorf("%w: %s", ErrItemNotFound, item.FoodID)
		}
		if food.Stock < item.Quantity {
			return nil, 0, fmt.Errorf("%w for %s", ErrInsufficientStock, food.Name)
		}

		lines = append(lines, domain.OrderLine{
			FoodID:   food.ID,
			Name:     food.Name,
			Price:    food.Price,
			Quantity: item.Quantity,
			Image:    food.Image,
			Category: food.Category,
		})
		total += food.Price * item.Quantity
	}
	return lines, total, nil
}

func (s *OrderService) verifyIntent(ctx context.Context, intentID string) error {
	if intentID == "" {
		return ErrPaymentNotCompleted
	}
	intent, err := s.payments.RetrieveIntent(ctx, intentID)
	if err != nil {
		return err
	}
	if intent == nil || intent.Status != infra.IntentSucceeded {
		return ErrPaymentNotCompleted
	}
	return nil
}

// deductStock applies conditional decrements line by line and reports how
// many succeeded so a failure can be unwound.
func (s *OrderService) deductStock(ctx context.Context, lines []domain.OrderLine) (int, error) {
	for i, line := range lines {
		ok, err := s.foods.DecrementStock(ctx, line.FoodID, line.Quantity)
		if err != nil {
			return i, err
		}
		if !ok {
			// A concurrent checkout won the race since the pre-check.
			return i, fmt.Errorf("%w for %s", ErrInsufficientStock, line.Name)
		}
	}
	return len(lines), nil
}

// compensate unwinds a partially applied checkout: already-deducted stock
// is restored and an RF-card debit refunded. Failures here are logged, not
// retried.
func (s *OrderService) compensate(ctx context.Context, input CheckoutInput, totalAmount int64, debited bool, deducted int) {
	if debited {
		if err := s.ledger.Refund(ctx, input.RFCardNumber, totalAmount); err != nil {
			log.Printf("CRITICAL: checkout failed but refund of %d to card %s also failed: %v",
				totalAmount, input.RFCardNumber, err)
		}
	}
	for i := 0; i < deducted; i++ {
		oid, err := primitive.ObjectIDFromHex(input.Items[i].FoodID)
		if err != nil {
			continue
		}
		if err := s.foods.IncrementStock(ctx, oid, input.Items[i].Quantity); err != nil {
			log.Printf("CRITICAL: failed to restore %d stock for %s: %v", input.Items[i].Quantity, input.Items[i].FoodID, err)
		}
	}
}

// nextOrderNumber yields ORDyymmddNNN. With redis the sequence is an atomic
// per-day counter; otherwise it degrades to count-of-todays-orders + 1.
func (s *OrderService) nextOrderNumber(ctx context.Context, now time.Time) (string, error) {
	day := now.Format("060102")

	if s.redisClient != nil {
		key := "orders:seq:" + day
		seq, err := s.redisClient.Incr(ctx, key).Result()
		if err == nil {
			s.redisClient.Expire(ctx, key, 48*time.Hour)
			return fmt.Sprintf("ORD%s%03d", day, seq), nil
		}
		log.Printf("redis sequence unavailable, falling back to count: %v", err)
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.orders.CountCreatedBetween(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD%s%03d", day, count+1), nil
}

// newPickupToken draws uniformly from [1000,9999]. Uniqueness is not
// guaranteed.
func newPickupToken() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// Get returns the order scoped to its owner.
func (s *OrderService) Get(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.findByHex(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetAdmin returns any order without ownership scoping.
func (s *OrderService) GetAdmin(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.findByHex(ctx, orderID)
}

func (s *OrderService) findByHex(ctx context.Context, orderID string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orders.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) UserOrders(ctx context.Context, userID, status string, page, limit int64) ([]domain.Order, int64, error) {
	q := repository.OrderQuery{UserID: userID, Page: page, Limit: limit}
	if status != "" && status != "all" {
		q.Status = domain.OrderStatus(status)
	}
	return s.orders.Find(ctx, q)
}

func (s *OrderService) AllOrders(ctx context.Context, status, date string, page, limit int64) ([]domain.Order, int64, error) {
	q := repository.OrderQuery{Page: page, Limit: limit}
	if status != "" && status != "all" {
		q.Status = domain.OrderStatus(status)
	}
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, 0, ErrInvalidDate
		}
		q.Day = &day
	}
	return s.orders.Find(ctx, q)
}

// Cancel is the user-facing cancellation. Stock and ledger balances are not
// restored; the order simply stops progressing. The write is guarded on the
// status that was read, so a cancel racing a concurrent transition loses
// instead of clobbering it.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.Get(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, ErrOrderNotCancellable
	}

	ok, err := s.orders.ApplyStatusChange(ctx, order.ID, repository.StatusChange{
		Guard:  order.Status,
		Status: domain.StatusCancelled,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotCancellable
	}

	order.Status = domain.StatusCancelled
	go s.publishEvent(domain.EventOrderCancelled, order)
	return order, nil
}

// UpdateStatus is the admin transition. Any valid target is accepted except
// transitions out of a terminal state. Delivered stamps the actual delivery
// time. The write is guarded on the status that was read.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, estimated *time.Time) (*domain.Order, error) {
	order, err := s.findByHex(ctx, orderID)
	if err != nil {
		return nil, err
	}

	change := repository.StatusChange{
		Guard:                 order.Status,
		Status:                order.Status,
		EstimatedDeliveryTime: estimated,
	}
	if status != "" {
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if order.Status.Terminal() && status != order.Status {
			return nil, ErrTerminalStatus
		}
		change.Status = status
		if status == domain.StatusDelivered {
			now := time.Now()
			change.ActualDeliveryTime = &now
		}
	}

	ok, err := s.orders.ApplyStatusChange(ctx, order.ID, change)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTerminalStatus
	}

	order.Status = change.Status
	if change.ActualDeliveryTime != nil {
		order.ActualDeliveryTime = change.ActualDeliveryTime
	}
	if estimated != nil {
		order.EstimatedDeliveryTime = estimated
	}

	go s.publishEvent(domain.EventOrderStatusUpdated, order)
	return order, nil
}

// Stats gathers the four dashboard counters concurrently.
func (s *OrderService) Stats(ctx context.Context) (*domain.OrderStats, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	stats := &domain.OrderStats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.orders.CountCreatedBetween(ctx, start, end)
		stats.TodayOrders = n
		return err
	})
	g.Go(func() error {
		n, err := s.orders.RevenueBetween(ctx, start, end)
		stats.TodayRevenue = n
		return err
	})
	g.Go(func() error {
		n, err := s.orders.CountByStatus(ctx, domain.StatusPending)
		stats.PendingOrders = n
		return err
	})
	g.Go(func() error {
		n, err := s.orders.CountByStatus(ctx, domain.StatusPreparing)
		stats.PreparingOrders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *OrderService) publishEvent(pattern string, order *domain.Order) {
	evt := domain.OrderEvent{
		OrderID:     order.ID.Hex(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.Publish(context.Background(), pattern, evt); err != nil {
		log.Printf("failed to publish %s for order %s: %v", pattern, order.OrderNumber, err)
	}
}
