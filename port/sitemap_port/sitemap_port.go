package sitemap_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=sitemap_port.go -destination=../../mocks/mock_sitemap_port.go -package=mocks

// SitemapPort lists the published slugs and their timestamps for the
// sitemap generator.
type SitemapPort interface {
	ListPublishedEntries(ctx context.Context) ([]domain.SitemapEntry, error)
}
