package news_db

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/utils/logger"
)

// ListPublishedEntries returns the slug and timestamps of every published
// article, newest first, for sitemap generation.
func (r *NewsDBRepository) ListPublishedEntries(ctx context.Context) ([]domain.SitemapEntry, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT slug, created_at, updated_at
		FROM articles
		WHERE status = 'published' AND COALESCE(slug, '') <> ''
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error listing sitemap entries", "error", err)
		return nil, errors.New("error listing sitemap entries")
	}
	defer rows.Close()

	var entries []domain.SitemapEntry
	for rows.Next() {
		var entry domain.SitemapEntry
		if err := rows.Scan(&entry.Slug, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning sitemap row", "error", err)
			return nil, errors.New("error scanning sitemap entries")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating sitemap rows", "error", err)
		return nil, errors.New("error processing sitemap entries")
	}

	return entries, nil
}
