package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"khabar/usecase/feed_usecase"
)

// FeedHandler serves the RSS feed and the XML sitemap.
type FeedHandler struct {
	feed *feed_usecase.FeedUsecase
}

func NewFeedHandler(feed *feed_usecase.FeedUsecase) *FeedHandler {
	return &FeedHandler{feed: feed}
}

func (h *FeedHandler) RSS(c echo.Context) error {
	xml, err := h.feed.GenerateRSS(c.Request().Context())
	if err != nil {
		return handleError(c, err, "generate rss")
	}
	return c.Blob(http.StatusOK, "text/xml; charset=utf-8", xml)
}

func (h *FeedHandler) Sitemap(c echo.Context) error {
	xml, err := h.feed.GenerateSitemap(c.Request().Context())
	if err != nil {
		return handleError(c, err, "generate sitemap")
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", xml)
}
