package sitemap_gateway

import (
	"context"
	"errors"

	"khabar/domain"
	"khabar/driver/news_db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SitemapGateway exposes the published-slug listing for sitemap generation.
type SitemapGateway struct {
	newsDB *news_db.NewsDBRepository
}

func NewSitemapGateway(pool *pgxpool.Pool) *SitemapGateway {
	return &SitemapGateway{
		newsDB: news_db.NewNewsDBRepository(pool),
	}
}

func (g *SitemapGateway) ListPublishedEntries(ctx context.Context) ([]domain.SitemapEntry, error) {
	if g.newsDB == nil {
		return nil, errors.New("database connection not available")
	}
	return g.newsDB.ListPublishedEntries(ctx)
}
