package news_source_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=news_source_port.go -destination=../../mocks/mock_news_source_port.go -package=mocks

// NewsSourcePort fetches candidate articles for a topic from the external
// news source. The topic must already be mapped to the source's allow-list.
type NewsSourcePort interface {
	FetchTopHeadlines(ctx context.Context, topic string) ([]*domain.ExternalArticle, error)
}
