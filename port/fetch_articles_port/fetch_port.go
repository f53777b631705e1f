package fetch_articles_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_port.go -destination=../../mocks/mock_fetch_articles_port.go -package=mocks

// ArticleSearchPort executes a composed article query against the store.
type ArticleSearchPort interface {
	SearchArticles(ctx context.Context, query domain.ArticleQuery) ([]*domain.Article, error)
}

// ArticleLookupPort fetches single articles by identity.
type ArticleLookupPort interface {
	FetchArticleByID(ctx context.Context, id string) (*domain.Article, error)
	FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	IncrementViews(ctx context.Context, id string) error
}
