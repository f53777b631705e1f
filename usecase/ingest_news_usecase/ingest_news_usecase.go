package ingest_news_usecase

import (
	"context"

	"khabar/domain"
	"khabar/port/manage_article_port"
	"khabar/port/news_source_port"
	"khabar/utils/logger"
)

// IngestNewsUsecase pulls headlines from the external source and stores the
// ones the site does not already have. Both the hourly job and request-path
// backfills run through it.
type IngestNewsUsecase struct {
	newsSource    news_source_port.NewsSourcePort
	articleWriter manage_article_port.ArticleWriterPort
}

func NewIngestNewsUsecase(
	newsSource news_source_port.NewsSourcePort,
	articleWriter manage_article_port.ArticleWriterPort,
) *IngestNewsUsecase {
	return &IngestNewsUsecase{
		newsSource:    newsSource,
		articleWriter: articleWriter,
	}
}

// FetchAndStoreCategory ingests one category and returns how many articles
// were stored. Categories outside the source's topic allow-list are a no-op.
// A slug collision means the story is already stored; it is skipped, never
// updated in place.
func (u *IngestNewsUsecase) FetchAndStoreCategory(ctx context.Context, category string) (int, error) {
	topic, ok := domain.NewsTopicFor(category)
	if !ok {
		return 0, nil
	}

	candidates, err := u.newsSource.FetchTopHeadlines(ctx, topic)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch headlines", "error", err, "category", category)
		return 0, err
	}

	stored := 0
	for _, candidate := range candidates {
		slug := domain.Slugify(candidate.Title)
		if slug == "" || slug == "-" {
			continue
		}

		exists, err := u.articleWriter.SlugExists(ctx, slug)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to check slug", "error", err, "slug", slug)
			return stored, err
		}
		if exists {
			continue
		}

		author := candidate.SourceName
		if author == "" {
			author = "GNews"
		}

		article := &domain.Article{
			TitleEN:       candidate.Title,
			ContentEN:     candidate.Description,
			URLHeadline:   slug,
			Slug:          slug,
			Category:      domain.FormatTitle(category),
			Author:        author,
			SourceURL:     candidate.URL,
			FeaturedImage: candidate.ImageURL,
			GalleryImages: []domain.GalleryImage{},
			Status:        domain.StatusPublished,
			CreatedAt:     candidate.PublishedAt,
		}

		if _, err := u.articleWriter.InsertArticle(ctx, article); err != nil {
			logger.Logger.ErrorContext(ctx, "failed to store ingested article", "error", err, "slug", slug)
			return stored, err
		}
		stored++
	}

	if stored > 0 {
		logger.Logger.InfoContext(ctx, "ingested new articles", "category", category, "count", stored)
	}

	return stored, nil
}

// IngestAll walks the full category list sequentially. Per-category failures
// are logged and do not stop the walk; the shared rate limiter already
// spaces the upstream calls.
func (u *IngestNewsUsecase) IngestAll(ctx context.Context) {
	logger.Logger.InfoContext(ctx, "starting news ingestion run")
	total := 0
	for _, category := range domain.IngestionCategories {
		if err := ctx.Err(); err != nil {
			logger.Logger.WarnContext(ctx, "ingestion run cancelled", "error", err)
			return
		}
		stored, err := u.FetchAndStoreCategory(ctx, category)
		if err != nil {
			continue
		}
		total += stored
	}
	logger.Logger.InfoContext(ctx, "news ingestion run complete", "stored", total)
}
