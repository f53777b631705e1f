package news_db

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/utils/logger"

	"github.com/jackc/pgx/v5"
)

// SearchArticles executes a composed article query and returns the matching
// records, newest first. The query's limit is always enforced; callers never
// get an unbounded result set.
func (r *NewsDBRepository) SearchArticles(ctx context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	sql, args := BuildArticleSelect(q)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error searching articles", "error", err)
		return nil, errors.New("error searching articles")
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning article row", "error", err)
			return nil, errors.New("error scanning articles")
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating article rows", "error", err)
		return nil, errors.New("error processing articles")
	}

	return articles, nil
}

// scanArticle reads one row in the fixed column order emitted by
// selectColumns.
func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		article domain.Article
		status  *string
		userID  *string
	)

	err := row.Scan(
		&article.ID,
		&article.TitleEN,
		&article.TitleHI,
		&article.SummaryEN,
		&article.SummaryHI,
		&article.ContentEN,
		&article.ContentHI,
		&article.URLHeadline,
		&article.Slug,
		&article.ShortHeadline,
		&article.LongHeadline,
		&article.Kicker,
		&article.LegacyTitle,
		&article.Keywords,
		&article.Author,
		&article.SourceURL,
		&article.Category,
		&article.Subcategory,
		&article.District,
		&article.FeaturedImage,
		&article.ThumbnailCaption,
		&article.GalleryImages,
		&article.Views,
		&article.Likes,
		&status,
		&userID,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if status != nil {
		article.Status = domain.ArticleStatus(*status)
	}
	if userID != nil {
		article.UserID = *userID
	}

	return &article, nil
}
