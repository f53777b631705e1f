package subscriber_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=subscriber_port.go -destination=../../mocks/mock_subscriber_port.go -package=mocks

// SubscriberPort persists newsletter signups.
type SubscriberPort interface {
	InsertSubscriber(ctx context.Context, email string) (*domain.Subscriber, error)
	SubscriberExists(ctx context.Context, email string) (bool, error)
	ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error)
}
