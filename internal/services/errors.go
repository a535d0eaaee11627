package services

import "errors"

// Business-rule failures are sentinel errors so handlers can map them to
// status codes with errors.Is.
var (
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrItemNotFound         = errors.New("food item not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidStock         = errors.New("invalid stock value")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrCardRequired         = errors.New("rf card number is required")
	ErrCardNotFound         = errors.New("rf card not found")
	ErrInsufficientFunds    = errors.New("insufficient rf card balance")
	ErrPaymentNotCompleted  = errors.New("payment not completed")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotCancellable  = errors.New("order cannot be cancelled")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrTerminalStatus       = errors.New("order is already in a terminal status")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrOrderIDRequired      = errors.New("order id and rating are required")
	ErrInvalidDate          = errors.New("invalid date filter")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrIntentRequired       = errors.New("payment intent id is required")
	ErrIntentNotFound       = errors.New("payment intent not found")
)
