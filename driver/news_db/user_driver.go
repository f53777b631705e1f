package news_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"khabar/domain"
	"khabar/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id::text AS id, name, email, password_hash, role, created_at`

// CreateUser stores a new account. A duplicate email returns
// domain.ErrDuplicateEmail.
func (r *NewsDBRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, string(user.Role)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateEmail
		}
		logger.Logger.ErrorContext(ctx, "error creating user", "error", err)
		return nil, errors.New("error creating user")
	}

	return created, nil
}

// FetchUserByEmail returns the account or domain.ErrUserNotFound.
func (r *NewsDBRepository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchUser(ctx, "email = $1", email)
}

// FetchUserByID returns the account or domain.ErrUserNotFound.
func (r *NewsDBRepository) FetchUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.fetchUser(ctx, "id::text = $1", id)
}

func (r *NewsDBRepository) fetchUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s`, userColumns, where)

	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		logger.Logger.ErrorContext(ctx, "error fetching user", "error", err)
		return nil, errors.New("error fetching user")
	}

	return user, nil
}

// ListUsers returns every account, newest first.
func (r *NewsDBRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error listing users", "error", err)
		return nil, errors.New("error listing users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning user row", "error", err)
			return nil, errors.New("error scanning users")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating user rows", "error", err)
		return nil, errors.New("error processing users")
	}

	return users, nil
}

// UpdateUser applies a partial account update and returns the fresh record.
func (r *NewsDBRepository) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	sets := []string{}
	args := []any{}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.Role != nil {
		set("role", string(*update.Role))
	}
	if update.PasswordHash != nil {
		set("password_hash", *update.PasswordHash)
	}

	if len(sets) == 0 {
		return r.FetchUserByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id::text = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateEmail
		}
		logger.Logger.ErrorContext(ctx, "error updating user", "error", err, "user_id", id)
		return nil, errors.New("error updating user")
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.FetchUserByID(ctx, id)
}

// DeleteUser removes an account.
func (r *NewsDBRepository) DeleteUser(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id::text = $1`, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting user", "error", err, "user_id", id)
		return errors.New("error deleting user")
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}
