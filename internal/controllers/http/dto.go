package http

import (
	"strings"
	"time"

	"canteen-service/internal/domain"
)

type CheckoutItemRequest struct {
	FoodID   string `json:"foodId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

// DeliveryAddressRequest carries the storefront's structured address fields.
// They are resolved into the order's address snapshot at this boundary.
type DeliveryAddressRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Landmark  string `json:"landmark"`
}

func (r DeliveryAddressRequest) resolve() domain.DeliveryAddress {
	parts := make([]string, 0, 4)
	if r.Street != "" {
		parts = append(parts, r.Street)
	}
	if r.City != "" {
		parts = append(parts, r.City)
	}
	if r.State != "" {
		if r.Zipcode != "" {
			parts = append(parts, r.State+" "+r.Zipcode)
		} else {
			parts = append(parts, r.State)
		}
	} else if r.Zipcode != "" {
		parts = append(parts, r.Zipcode)
	}
	if r.Country != "" {
		parts = append(parts, r.Country)
	}

	return domain.DeliveryAddress{
		Name:     strings.TrimSpace(r.FirstName + " " + r.LastName),
		Phone:    r.Phone,
		Address:  strings.Join(parts, ", "),
		Landmark: r.Landmark,
		Pincode:  r.Zipcode,
	}
}

type CreateOrderRequest struct {
	Items               []CheckoutItemRequest  `json:"items" binding:"required,dive"`
	DeliveryAddress     DeliveryAddressRequest `json:"deliveryAddress"`
	SpecialInstructions string                 `json:"specialInstructions"`
	PaymentMethod       string                 `json:"paymentMethod" binding:"omitempty,oneof=cash card upi wallet rfcard"`
	RFCardNumber        string                 `json:"rfCardNumber"`
	PaymentIntentID     string                 `json:"paymentIntentId"`
}

// OrderProjection is the public shape returned from checkout.
type OrderProjection struct {
	ID                    string     `json:"id"`
	OrderNumber           string     `json:"orderNumber"`
	TotalAmount           int64      `json:"totalAmount"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"paymentStatus"`
	TokenNumber           string     `json:"tokenNumber"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
}

func projectOrder(o *domain.Order) OrderProjection {
	return OrderProjection{
		ID:                    o.ID.Hex(),
		OrderNumber:           o.OrderNumber,
		TotalAmount:           o.TotalAmount,
		Status:                string(o.Status),
		PaymentStatus:         string(o.PaymentStatus),
		TokenNumber:           o.TokenNumber,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}
}

type UpdateStatusRequest struct {
	Status                string `json:"status"`
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime"`
}

type AddFoodRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	Price             int64  `json:"price" binding:"required,min=1"`
	Image             string `json:"image"`
	Category          string `json:"category" binding:"required"`
	TodaysMenu        bool   `json:"todaysMenu"`
	Stock             int64  `json:"stock"`
	LowStockThreshold int64  `json:"lowStockThreshold"`
}

type FoodIDRequest struct {
	ID string `json:"id" binding:"required"`
}

type UpdateStockRequest struct {
	ID    string `json:"id" binding:"required"`
	Stock *int64 `json:"stock" binding:"required"`
}

type CreateIntentRequest struct {
	Amount   int64  `json:"amount" binding:"required"`
	Currency string `json:"currency"`
	OrderID  string `json:"orderId"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	OrderID         string `json:"orderId"`
	PaymentType     string `json:"paymentType"`
}

type SubmitFeedbackRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
	IsAdmin bool   `json:"isAdmin"`
}
