package fetch_articles_usecase

import (
	"context"
	"strings"

	"khabar/domain"
	"khabar/port/fetch_articles_port"
	appErrors "khabar/utils/errors"
)

// FetchArticlesUsecase serves the read-side listings: public list, top news,
// related stories, search, and the admin dashboard table.
type FetchArticlesUsecase struct {
	articleSearch fetch_articles_port.ArticleSearchPort
}

func NewFetchArticlesUsecase(articleSearch fetch_articles_port.ArticleSearchPort) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{articleSearch: articleSearch}
}

// PublicList returns the bounded public listing without content bodies.
func (u *FetchArticlesUsecase) PublicList(ctx context.Context) ([]*domain.Article, error) {
	return u.run(ctx, domain.ComposePublicListQuery())
}

// AdminList returns every editorial state for the dashboard.
func (u *FetchArticlesUsecase) AdminList(ctx context.Context) ([]*domain.Article, error) {
	return u.run(ctx, domain.ComposeAdminListQuery(0))
}

// TopNews returns the published strip, optionally excluding the slug the
// reader is currently on.
func (u *FetchArticlesUsecase) TopNews(ctx context.Context, lang, excludeSlug string) ([]*domain.Article, error) {
	return u.run(ctx, domain.ComposeTopNewsQuery(lang, excludeSlug))
}

// Related returns stories from the same category, excluding the one being
// read.
func (u *FetchArticlesUsecase) Related(ctx context.Context, category, excludeSlug, lang string, limit int) ([]*domain.Article, error) {
	if strings.TrimSpace(category) == "" {
		return nil, appErrors.ValidationError("category is required", nil)
	}
	return u.run(ctx, domain.ComposeRelatedQuery(category, excludeSlug, lang, limit))
}

// Search runs the literal substring search over published articles.
func (u *FetchArticlesUsecase) Search(ctx context.Context, q string) ([]*domain.Article, error) {
	if strings.TrimSpace(q) == "" {
		return nil, appErrors.ValidationError("search query is required", nil)
	}
	return u.run(ctx, domain.ComposeSearchQuery(q))
}

func (u *FetchArticlesUsecase) run(ctx context.Context, query domain.ArticleQuery) ([]*domain.Article, error) {
	articles, err := u.articleSearch.SearchArticles(ctx, query)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*domain.Article{}
	}
	return articles, nil
}
