package news_db

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/utils/logger"

	"github.com/jackc/pgx/v5/pgconn"
)

// InsertSubscriber stores an email address. A repeat signup returns
// domain.ErrAlreadySubscribed.
func (r *NewsDBRepository) InsertSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		INSERT INTO subscribers (email)
		VALUES ($1)
		RETURNING id::text AS id, email, created_at`

	var sub domain.Subscriber
	err := r.pool.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadySubscribed
		}
		logger.Logger.ErrorContext(ctx, "error inserting subscriber", "error", err)
		return nil, errors.New("error inserting subscriber")
	}

	return &sub, nil
}

// SubscriberExists reports whether the address is already on the list.
func (r *NewsDBRepository) SubscriberExists(ctx context.Context, email string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM subscribers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error checking subscriber", "error", err)
		return false, errors.New("error checking subscriber")
	}

	return exists, nil
}

// ListSubscribers returns every subscriber, newest first.
func (r *NewsDBRepository) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id::text AS id, email, created_at FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error listing subscribers", "error", err)
		return nil, errors.New("error listing subscribers")
	}
	defer rows.Close()

	var subs []*domain.Subscriber
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning subscriber row", "error", err)
			return nil, errors.New("error scanning subscribers")
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating subscriber rows", "error", err)
		return nil, errors.New("error processing subscribers")
	}

	return subs, nil
}
