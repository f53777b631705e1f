package user_gateway

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/driver/news_db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserGateway persists CMS accounts.
type UserGateway struct {
	newsDB *news_db.NewsDBRepository
}

func NewUserGateway(pool *pgxpool.Pool) *UserGateway {
	return &UserGateway{
		newsDB: news_db.NewNewsDBRepository(pool),
	}
}

func (g *UserGateway) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.CreateUser(ctx, user)
}

func (g *UserGateway) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.FetchUserByEmail(ctx, email)
}

func (g *UserGateway) FetchUserByID(ctx context.Context, id string) (*domain.User, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.FetchUserByID(ctx, id)
}

func (g *UserGateway) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.ListUsers(ctx)
}

func (g *UserGateway) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.UpdateUser(ctx, id, update)
}

func (g *UserGateway) DeleteUser(ctx context.Context, id string) error {
	if g.newsDB == nil {
		return errors.New("database connection not available")
	}
	return g.newsDB.DeleteUser(ctx, id)
}
