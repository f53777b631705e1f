package user_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=user_port.go -destination=../../mocks/mock_user_port.go -package=mocks

// UserPort persists CMS accounts.
type UserPort interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FetchUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FetchUserByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
