package article_gateway

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/driver/news_db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FetchArticlesGateway serves every read-side article query.
type FetchArticlesGateway struct {
	newsDB *news_db.NewsDBRepository
}

func NewFetchArticlesGateway(pool *pgxpool.Pool) *FetchArticlesGateway {
	return &FetchArticlesGateway{
		newsDB: news_db.NewNewsDBRepository(pool),
	}
}

func (g *FetchArticlesGateway) SearchArticles(ctx context.Context, query domain.ArticleQuery) ([]*domain.Article, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.SearchArticles(ctx, query)
}

func (g *FetchArticlesGateway) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.FetchArticleByID(ctx, id)
}

func (g *FetchArticlesGateway) FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.FetchArticleBySlug(ctx, slug)
}

func (g *FetchArticlesGateway) IncrementViews(ctx context.Context, id string) error {
	if g.newsDB == nil {
		return errors.New("database connection not available")
	}
	return g.newsDB.IncrementViews(ctx, id)
}
