package gnews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"khabar/config"
	"khabar/domain"
	"khabar/utils/logger"
)

// Client talks to the GNews top-headlines API. Responses are mapped into
// domain.ExternalArticle; items without an image or description are dropped
// here so callers only ever see storable candidates.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	country    string
}

func NewClient(cfg config.GNewsConfig) *Client {
	timeout := cfg.ClientTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		country:    cfg.Country,
	}
}

type headlinesResponse struct {
	TotalArticles int               `json:"totalArticles"`
	Articles      []headlineArticle `json:"articles"`
}

type headlineArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

// FetchTopHeadlines fetches English headlines for a topic already mapped to
// the source's allow-list.
func (c *Client) FetchTopHeadlines(ctx context.Context, topic string) ([]*domain.ExternalArticle, error) {
	endpoint, err := c.buildHeadlinesURL(topic)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create news source request", "error", err)
		return nil, errors.New("failed to create news source request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "khabar-backend/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "news source request failed", "error", err, "topic", topic)
		return nil, errors.New("news source unavailable")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "failed to close news source response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to read news source response", "error", err)
		return nil, errors.New("failed to read news source response")
	}

	if resp.StatusCode != http.StatusOK {
		logger.Logger.ErrorContext(ctx, "news source returned non-OK status",
			"status", resp.StatusCode, "topic", topic, "body", string(body))
		return nil, fmt.Errorf("news source request failed with status %d", resp.StatusCode)
	}

	var payload headlinesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to unmarshal news source response", "error", err)
		return nil, errors.New("failed to unmarshal news source response")
	}

	return mapHeadlines(payload.Articles), nil
}

func (c *Client) buildHeadlinesURL(topic string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid news source base URL: %w", err)
	}
	base = base.JoinPath("top-headlines")

	params := url.Values{}
	params.Set("lang", "en")
	params.Set("country", c.country)
	params.Set("topic", topic)
	params.Set("token", c.apiKey)
	base.RawQuery = params.Encode()

	return base.String(), nil
}

// mapHeadlines converts source items to domain candidates, discarding any
// without an image or description.
func mapHeadlines(items []headlineArticle) []*domain.ExternalArticle {
	out := make([]*domain.ExternalArticle, 0, len(items))
	for _, item := range items {
		if item.Image == "" || item.Description == "" {
			continue
		}
		out = append(out, &domain.ExternalArticle{
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.Image,
			SourceName:  item.Source.Name,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}
	return out
}
