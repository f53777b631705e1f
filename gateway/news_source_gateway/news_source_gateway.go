package news_source_gateway

import (
	"context"
	"errors"

	"khabar/config"
	"khabar/domain"
	"khabar/driver/gnews"
	"khabar/utils/logger"
	"khabar/utils/rate_limiter"
)

// NewsSourceGateway fronts the external headlines API. Every fetch, whether
// from the hourly job or a request-path backfill, waits on the shared
// per-host limiter first so the source's quota is respected.
type NewsSourceGateway struct {
	client      *gnews.Client
	rateLimiter *rate_limiter.HostRateLimiter
	baseURL     string
}

func NewNewsSourceGateway(cfg config.GNewsConfig, limiter *rate_limiter.HostRateLimiter) *NewsSourceGateway {
	return &NewsSourceGateway{
		client:      gnews.NewClient(cfg),
		rateLimiter: limiter,
		baseURL:     cfg.BaseURL,
	}
}

func (g *NewsSourceGateway) FetchTopHeadlines(ctx context.Context, topic string) ([]*domain.ExternalArticle, error) {
	if g.client == nil {
		return nil, errors.New("news source client not available")
	}

	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.baseURL); err != nil {
			logger.Logger.WarnContext(ctx, "rate limiter wait cancelled", "error", err, "topic", topic)
			return nil, errors.New("news source fetch cancelled")
		}
	}

	return g.client.FetchTopHeadlines(ctx, topic)
}
