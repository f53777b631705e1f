package news_db

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewsDBRepository is the Postgres-backed article store. One repository is
// shared by every gateway; the pool handles connection reuse.
type NewsDBRepository struct {
	pool *pgxpool.Pool
}

func NewNewsDBRepository(pool *pgxpool.Pool) *NewsDBRepository {
	return &NewsDBRepository{pool: pool}
}
