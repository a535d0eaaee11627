package services

import (
	"context"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLedgerService_Balance(t *testing.T) {
	tests := []struct {
		name          string
		cardNumber    string
		setupMocks    func(*mocks.MockCardRepository)
		expectedError error
		expected      int64
	}{
		{
			name:       "existing card returns balance",
			cardNumber: "1111",
			setupMocks: func(cards *mocks.MockCardRepository) {
				cards.On("FindByNumber", mock.Anything, "1111").Return(&domain.RFCard{
					CardNumber: "1111", Balance: 520, OwnerName: "Asha",
				}, nil)
			},
			expected: 520,
		},
		{
			name:       "unknown card",
			cardNumber: "9999",
			setupMocks: func(cards *mocks.MockCardRepository) {
				cards.On("FindByNumber", mock.Anything, "9999").Return(nil, nil)
			},
			expectedError: ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := new(mocks.MockCardRepository)
			accounts := new(mocks.MockAccountRepository)
			tt.setupMocks(cards)
			service := NewLedgerService(cards, accounts)

			card, err := service.Balance(context.Background(), tt.cardNumber)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, card.Balance)
			}
			cards.AssertExpectations(t)
		})
	}
}

func TestLedgerService_Debit(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockCardRepository, *mocks.MockAccountRepository)
		expectedError error
	}{
		{
			name: "successful debit credits the business account",
			setupMocks: func(cards *mocks.MockCardRepository, accounts *mocks.MockAccountRepository) {
				cards.On("DebitIfSufficient", mock.Anything, "1111", int64(200)).Return(true, nil)
				accounts.On("AdjustBalance", mock.Anything, domain.BusinessAccountName, int64(200)).Return(nil)
			},
		},
		{
			name: "insufficient balance",
			setupMocks: func(cards *mocks.MockCardRepository, _ *mocks.MockAccountRepository) {
				cards.On("DebitIfSufficient", mock.Anything, "1111", int64(200)).Return(false, nil)
				cards.On("FindByNumber", mock.Anything, "1111").Return(&domain.RFCard{
					CardNumber: "1111", Balance: 150,
				}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name: "unknown card",
			setupMocks: func(cards *mocks.MockCardRepository, _ *mocks.MockAccountRepository) {
				cards.On("DebitIfSufficient", mock.Anything, "1111", int64(200)).Return(false, nil)
				cards.On("FindByNumber", mock.Anything, "1111").Return(nil, nil)
			},
			expectedError: ErrCardNotFound,
		},
		{
			name: "account credit failure reverses the card debit",
			setupMocks: func(cards *mocks.MockCardRepository, accounts *mocks.MockAccountRepository) {
				cards.On("DebitIfSufficient", mock.Anything, "1111", int64(200)).Return(true, nil)
				accounts.On("AdjustBalance", mock.Anything, domain.BusinessAccountName, int64(200)).Return(assert.AnError)
				cards.On("Credit", mock.Anything, "1111", int64(200)).Return(nil)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := new(mocks.MockCardRepository)
			accounts := new(mocks.MockAccountRepository)
			tt.setupMocks(cards, accounts)
			service := NewLedgerService(cards, accounts)

			err := service.Debit(context.Background(), "1111", 200)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			cards.AssertExpectations(t)
			accounts.AssertExpectations(t)
		})
	}
}

func TestLedgerService_Refund(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	accounts := new(mocks.MockAccountRepository)
	cards.On("Credit", mock.Anything, "1111", int64(75)).Return(nil)
	accounts.On("AdjustBalance", mock.Anything, domain.BusinessAccountName, int64(-75)).Return(nil)
	service := NewLedgerService(cards, accounts)

	err := service.Refund(context.Background(), "1111", 75)

	assert.NoError(t, err)
	cards.AssertExpectations(t)
	accounts.AssertExpectations(t)
}
