package category_feed_usecase

import (
	"context"
	"time"

	"khabar/domain"
	"khabar/port/fetch_articles_port"
	"khabar/utils/logger"
)

// Backfiller warms the store for a category when browsing finds nothing.
type Backfiller interface {
	FetchAndStoreCategory(ctx context.Context, category string) (int, error)
}

// CategoryFeedUsecase serves the category browse: compose the equivalence
// filter, run it, and on an empty unrefined page kick off a best-effort
// backfill without blocking the response.
type CategoryFeedUsecase struct {
	articleSearch   fetch_articles_port.ArticleSearchPort
	backfiller      Backfiller
	backfillTimeout time.Duration
}

func NewCategoryFeedUsecase(
	articleSearch fetch_articles_port.ArticleSearchPort,
	backfiller Backfiller,
	backfillTimeout time.Duration,
) *CategoryFeedUsecase {
	if backfillTimeout <= 0 {
		backfillTimeout = 2 * time.Minute
	}
	return &CategoryFeedUsecase{
		articleSearch:   articleSearch,
		backfiller:      backfiller,
		backfillTimeout: backfillTimeout,
	}
}

// Execute returns the category page. The backfill fires only when the page
// is empty, the request had no subcategory or district refinement, and a
// news source is configured; the caller still gets the empty page
// immediately. Backfilling narrow slices is deliberately avoided.
func (u *CategoryFeedUsecase) Execute(ctx context.Context, req domain.CategoryRequest) ([]*domain.Article, error) {
	query := domain.ComposeCategoryQuery(req)

	articles, err := u.articleSearch.SearchArticles(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 && req.Subcategory == "" && req.District == "" && u.backfiller != nil {
		u.triggerBackfill(ctx, req.Category)
	}

	if articles == nil {
		articles = []*domain.Article{}
	}
	return articles, nil
}

// triggerBackfill runs the fetch on a detached context so it survives the
// request that triggered it. Failures are logged and never surface.
func (u *CategoryFeedUsecase) triggerBackfill(ctx context.Context, category string) {
	detached := context.WithoutCancel(ctx)
	go func() {
		bgCtx, cancel := context.WithTimeout(detached, u.backfillTimeout)
		defer cancel()

		logger.Logger.InfoContext(bgCtx, "triggering category backfill", "category", category)
		if _, err := u.backfiller.FetchAndStoreCategory(bgCtx, category); err != nil {
			logger.Logger.ErrorContext(bgCtx, "category backfill failed", "error", err, "category", category)
		}
	}()
}
