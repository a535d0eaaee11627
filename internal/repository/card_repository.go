package repository

import (
	"context"

	"canteen-service/internal/domain"
)

type CardRepository interface {
	FindByNumber(ctx context.Context, cardNumber string) (*domain.RFCard, error)

	// DebitIfSufficient atomically subtracts amount from the card balance
	// only if the balance covers it, stamping lastUsed. Returns false when
	// the card is missing or the balance check fails; two concurrent debits
	// can never overdraw the card.
	DebitIfSufficient(ctx context.Context, cardNumber string, amount int64) (bool, error)
	// Credit adds amount back to the card, used to reverse a debit.
	Credit(ctx context.Context, cardNumber string, amount int64) error
}

type AccountRepository interface {
	Find(ctx context.Context, name string) (*domain.Account, error)

	// AdjustBalance applies delta to the named account, creating it on first
	// use, and stamps lastUpdated.
	AdjustBalance(ctx context.Context, name string, delta int64) error
}
