package news_db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"khabar/domain"
	"khabar/utils/logger"
)

// InsertArticle stores a new article and returns the persisted record.
// CreatedAt is honored when set so ingested articles keep their original
// publish time.
func (r *NewsDBRepository) InsertArticle(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		INSERT INTO articles (
			title_en, title_hi, summary_en, summary_hi, content_en, content_hi,
			url_headline, slug, short_headline, long_headline, kicker,
			keywords, author, source_url,
			category, subcategory, district,
			featured_image, thumbnail_caption, gallery_images,
			status, user_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14,
			$15, $16, $17,
			$18, $19, $20,
			$21, NULLIF($22, '')::uuid, COALESCE($23, now())
		)
		RETURNING id::text`

	var createdAt *time.Time
	if !article.CreatedAt.IsZero() {
		t := article.CreatedAt
		createdAt = &t
	}

	var id string
	err := r.pool.QueryRow(ctx, query,
		article.TitleEN, article.TitleHI,
		article.SummaryEN, article.SummaryHI,
		article.ContentEN, article.ContentHI,
		article.URLHeadline, article.Slug,
		article.ShortHeadline, article.LongHeadline, article.Kicker,
		article.Keywords, article.Author, article.SourceURL,
		article.Category, article.Subcategory, article.District,
		article.FeaturedImage, article.ThumbnailCaption, article.GalleryImages,
		string(article.Status), article.UserID,
		createdAt,
	).Scan(&id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error inserting article", "error", err, "slug", article.Slug)
		return nil, errors.New("error inserting article")
	}

	return r.FetchArticleByID(ctx, id)
}

// UpdateArticle applies a partial update and returns the fresh record, or
// domain.ErrArticleNotFound.
func (r *NewsDBRepository) UpdateArticle(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	sets := []string{"updated_at = now()"}
	args := []any{}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.TitleEN != nil {
		set("title_en", *update.TitleEN)
	}
	if update.TitleHI != nil {
		set("title_hi", *update.TitleHI)
	}
	if update.SummaryEN != nil {
		set("summary_en", *update.SummaryEN)
	}
	if update.SummaryHI != nil {
		set("summary_hi", *update.SummaryHI)
	}
	if update.ContentEN != nil {
		set("content_en", *update.ContentEN)
	}
	if update.ContentHI != nil {
		set("content_hi", *update.ContentHI)
	}
	if update.ShortHeadline != nil {
		set("short_headline", *update.ShortHeadline)
	}
	if update.LongHeadline != nil {
		set("long_headline", *update.LongHeadline)
	}
	if update.Kicker != nil {
		set("kicker", *update.Kicker)
	}
	if update.Keywords != nil {
		set("keywords", *update.Keywords)
	}
	if update.Author != nil {
		set("author", *update.Author)
	}
	if update.SourceURL != nil {
		set("source_url", *update.SourceURL)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}
	if update.Subcategory != nil {
		set("subcategory", *update.Subcategory)
	}
	if update.District != nil {
		set("district", *update.District)
	}
	if update.FeaturedImage != nil {
		set("featured_image", *update.FeaturedImage)
	}
	if update.ThumbnailCaption != nil {
		set("thumbnail_caption", *update.ThumbnailCaption)
	}
	if update.GalleryImages != nil {
		set("gallery_images", *update.GalleryImages)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE articles SET %s WHERE id::text = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error updating article", "error", err, "article_id", id)
		return nil, errors.New("error updating article")
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrArticleNotFound
	}

	return r.FetchArticleByID(ctx, id)
}

// UpdateArticleStatus moves an article through the approval workflow.
func (r *NewsDBRepository) UpdateArticleStatus(ctx context.Context, id string, status domain.ArticleStatus) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE articles SET status = $1, updated_at = now() WHERE id::text = $2`,
		string(status), id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error updating article status", "error", err, "article_id", id)
		return nil, errors.New("error updating article status")
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrArticleNotFound
	}

	return r.FetchArticleByID(ctx, id)
}

// DeleteArticle removes an article. Deleting a missing article is not an
// error.
func (r *NewsDBRepository) DeleteArticle(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	_, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id::text = $1`, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting article", "error", err, "article_id", id)
		return errors.New("error deleting article")
	}
	return nil
}
