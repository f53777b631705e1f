package news_db

import (
	"context"
	"errors"
	"fmt"

	"khabar/domain"
	"khabar/utils/logger"

	"github.com/jackc/pgx/v5"
)

// FetchArticleByID returns the full article or domain.ErrArticleNotFound.
func (r *NewsDBRepository) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.fetchOne(ctx, "id::text = $1", id)
}

// FetchArticleBySlug returns the full article or domain.ErrArticleNotFound.
func (r *NewsDBRepository) FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.fetchOne(ctx, "slug = $1", slug)
}

func (r *NewsDBRepository) fetchOne(ctx context.Context, where string, arg any) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	sql := fmt.Sprintf(`
		SELECT
			%s
		FROM articles
		WHERE %s`,
		selectColumns(domain.ProjectionFull), where)

	article, err := scanArticle(r.pool.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		logger.Logger.ErrorContext(ctx, "error fetching article", "error", err)
		return nil, errors.New("error fetching article")
	}

	return article, nil
}

// IncrementViews bumps the read counter. Best-effort: callers log failures
// and keep serving the article.
func (r *NewsDBRepository) IncrementViews(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	_, err := r.pool.Exec(ctx, `UPDATE articles SET views = views + 1 WHERE id::text = $1`, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error incrementing views", "error", err, "article_id", id)
		return errors.New("error incrementing views")
	}
	return nil
}

// SlugExists reports whether any stored article already uses the slug.
func (r *NewsDBRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error checking slug", "error", err, "slug", slug)
		return false, errors.New("error checking slug")
	}
	return exists, nil
}
