package services

import (
	"context"
	"log"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"
)

// LedgerService pairs RF-card debits with the business settlement account.
// Every successful debit credits the business account by the same amount.
type LedgerService struct {
	cards    repository.CardRepository
	accounts repository.AccountRepository
}

func NewLedgerService(cards repository.CardRepository, accounts repository.AccountRepository) *LedgerService {
	return &LedgerService{cards: cards, accounts: accounts}
}

func (s *LedgerService) Balance(ctx context.Context, cardNumber string) (*domain.RFCard, error) {
	card, err := s.cards.FindByNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// Debit conditionally decrements the card balance and credits the business
// account. The card-side decrement is atomic; a failed business-account
// credit reverses the debit so funds are never silently lost.
func (s *LedgerService) Debit(ctx context.Context, cardNumber string, amount int64) error {
	ok, err := s.cards.DebitIfSufficient(ctx, cardNumber, amount)
	if err != nil {
		return err
	}
	if !ok {
		card, err := s.cards.FindByNumber(ctx, cardNumber)
		if err != nil {
			return err
		}
		if card == nil {
			return ErrCardNotFound
		}
		return ErrInsufficientFunds
	}

	if err := s.accounts.AdjustBalance(ctx, domain.BusinessAccountName, amount); err != nil {
		if creditErr := s.cards.Credit(ctx, cardNumber, amount); creditErr != nil {
			log.Printf("CRITICAL: failed to reverse debit of %d on card %s: %v", amount, cardNumber, creditErr)
		}
		return err
	}
	return nil
}

// Refund reverses a completed debit: the card is credited and the business
// account debited by the same amount.
func (s *LedgerService) Refund(ctx context.Context, cardNumber string, amount int64) error {
	if err := s.cards.Credit(ctx, cardNumber, amount); err != nil {
		return err
	}
	if err := s.accounts.AdjustBalance(ctx, domain.BusinessAccountName, -amount); err != nil {
		log.Printf("CRITICAL: business account not debited for refund of %d to card %s: %v", amount, cardNumber, err)
		return err
	}
	return nil
}
