package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodUPI    PaymentMethod = "upi"
	MethodWallet PaymentMethod = "wallet"
	MethodRFCard PaymentMethod = "rfcard"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodWallet, MethodRFCard:
		return true
	}
	return false
}

// OrderLine is a denormalized snapshot of a food item at checkout time.
// Later catalog changes must not alter historical orders.
type OrderLine struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	Name     string             `bson:"name" json:"name"`
	Price    int64              `bson:"price" json:"price"`
	Quantity int64              `bson:"quantity" json:"quantity"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
}

// DeliveryAddress is assembled at the request boundary from structured
// fields; business logic only ever sees the resolved form.
type DeliveryAddress struct {
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address" json:"address"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Pincode  string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

type Order struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID                string             `bson:"userId" json:"userId"`
	Items                 []OrderLine        `bson:"items" json:"items"`
	TotalAmount           int64              `bson:"totalAmount" json:"totalAmount"`
	Status                OrderStatus        `bson:"status" json:"status"`
	PaymentStatus         PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod         PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	DeliveryAddress       DeliveryAddress    `bson:"deliveryAddress" json:"deliveryAddress"`
	RFCardNumber          string             `bson:"rfCardNumber,omitempty" json:"rfCardNumber,omitempty"`
	SpecialInstructions   string             `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	EstimatedDeliveryTime *time.Time         `bson:"estimatedDeliveryTime,omitempty" json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time         `bson:"actualDeliveryTime,omitempty" json:"actualDeliveryTime,omitempty"`
	OrderNumber           string             `bson:"orderNumber" json:"orderNumber"`
	TokenNumber           string             `bson:"tokenNumber" json:"tokenNumber"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Total recomputes the order total from its line snapshots.
func (o *Order) Total() int64 {
	var total int64
	for _, line := range o.Items {
		total += line.Price * line.Quantity
	}
	return total
}

// OrderStats holds the admin dashboard counters for the current day.
type OrderStats struct {
	TodayOrders     int64 `json:"todayOrders"`
	TodayRevenue    int64 `json:"todayRevenue"`
	PendingOrders   int64 `json:"pendingOrders"`
	PreparingOrders int64 `json:"preparingOrders"`
}
