package article_gateway

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/driver/news_db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ManageArticlesGateway serves the write side of the editorial workflow.
type ManageArticlesGateway struct {
	newsDB *news_db.NewsDBRepository
}

func NewManageArticlesGateway(pool *pgxpool.Pool) *ManageArticlesGateway {
	return &ManageArticlesGateway{
		newsDB: news_db.NewNewsDBRepository(pool),
	}
}

func (g *ManageArticlesGateway) InsertArticle(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.InsertArticle(ctx, article)
}

func (g *ManageArticlesGateway) UpdateArticle(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Article, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.UpdateArticle(ctx, id, update)
}

func (g *ManageArticlesGateway) UpdateArticleStatus(ctx context.Context, id string, status domain.ArticleStatus) (*domain.Article, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.UpdateArticleStatus(ctx, id, status)
}

func (g *ManageArticlesGateway) DeleteArticle(ctx context.Context, id string) error {
	if g.newsDB == nil {
		return errors.New("database connection not available")
	}
	return g.newsDB.DeleteArticle(ctx, id)
}

func (g *ManageArticlesGateway) SlugExists(ctx context.Context, slug string) (bool, error) {
	if g.newsDB == nil {
		return false, errors.New("database connection not available")
	}
	return g.newsDB.SlugExists(ctx, slug)
}
