package subscriber_gateway

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/driver/news_db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriberGateway persists newsletter signups.
type SubscriberGateway struct {
	newsDB *news_db.NewsDBRepository
}

func NewSubscriberGateway(pool *pgxpool.Pool) *SubscriberGateway {
	return &SubscriberGateway{
		newsDB: news_db.NewNewsDBRepository(pool),
	}
}

func (g *SubscriberGateway) InsertSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.InsertSubscriber(ctx, email)
}

func (g *SubscriberGateway) SubscriberExists(ctx context.Context, email string) (bool, error) {
	if g.newsDB == nil {
		return false, errors.New("database connection not available")
	}
	return g.newsDB.SubscriberExists(ctx, email)
}

func (g *SubscriberGateway) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.ListSubscribers(ctx)
}
