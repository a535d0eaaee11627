package infra

import "context"

type PaymentClientInterface interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

var _ PaymentClientInterface = (*PaymentClient)(nil)
