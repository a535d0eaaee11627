package rabbitmq

import "context"

type PublisherInterface interface {
	Publish(ctx context.Context, pattern string, data interface{}) error
}

var _ PublisherInterface = (*Publisher)(nil)
