package feed_usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/samber/lo"

	"khabar/config"
	"khabar/domain"
	"khabar/port/fetch_articles_port"
	"khabar/port/sitemap_port"
)

// staticPages are the fixed site pages listed in the sitemap; the empty
// string is the front page.
var staticPages = []string{"", "about", "contact", "privacy-policy", "terms-condition", "subscribe"}

// FeedUsecase renders the RSS feed and the sitemap.
type FeedUsecase struct {
	articleSearch fetch_articles_port.ArticleSearchPort
	sitemap       sitemap_port.SitemapPort
	site          config.SiteConfig
	now           func() time.Time
}

func NewFeedUsecase(
	articleSearch fetch_articles_port.ArticleSearchPort,
	sitemap sitemap_port.SitemapPort,
	site config.SiteConfig,
) *FeedUsecase {
	return &FeedUsecase{
		articleSearch: articleSearch,
		sitemap:       sitemap,
		site:          site,
		now:           time.Now,
	}
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	MediaNS string     `xml:"xmlns:media,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	PubDate     string    `xml:"pubDate"`
	Copyright   string    `xml:"copyright"`
	TTL         int       `xml:"ttl"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Description string        `xml:"description"`
	Link        string        `xml:"link"`
	GUID        string        `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Author      string        `xml:"author"`
	Media       *mediaContent `xml:"media:content,omitempty"`
}

type mediaContent struct {
	URL    string `xml:"url,attr"`
	Medium string `xml:"medium,attr"`
	Type   string `xml:"type,attr"`
}

// GenerateRSS renders the latest published articles as RSS 2.0 with
// media:content images.
func (u *FeedUsecase) GenerateRSS(ctx context.Context) ([]byte, error) {
	query := domain.ArticleQuery{
		Filter:     domain.StatusCondition(domain.StatusPublishedOnly),
		Limit:      domain.RSSItemLimit,
		Projection: domain.ProjectionFull,
	}
	articles, err := u.articleSearch.SearchArticles(ctx, query)
	if err != nil {
		return nil, err
	}

	now := u.now()
	items := lo.Map(articles, func(article *domain.Article, _ int) rssItem {
		return u.rssItemFor(article)
	})

	feed := rssFeed{
		Version: "2.0",
		MediaNS: "http://search.yahoo.com/mrss/",
		Channel: rssChannel{
			Title:       u.site.RSSTitle,
			Link:        u.site.BaseURL,
			Description: u.site.RSSDesc,
			Language:    u.site.RSSLang,
			PubDate:     now.Format(time.RFC1123Z),
			Copyright:   fmt.Sprintf("© %d %s", now.Year(), u.site.Name),
			TTL:         60,
			Items:       items,
		},
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func (u *FeedUsecase) rssItemFor(article *domain.Article) rssItem {
	title := article.LongHeadline
	if title == "" {
		title = article.LegacyTitle
	}
	if title == "" {
		title = "Breaking News"
	}

	description := article.SummaryHI
	if description == "" {
		description = article.SummaryEN
	}
	if description == "" {
		description = truncate(firstNonEmpty(article.ContentHI, article.ContentEN), 200)
	}

	item := rssItem{
		Title:       title,
		Description: description,
		Link:        fmt.Sprintf("%s/article/%s", u.site.BaseURL, article.Slug),
		GUID:        article.ID,
		PubDate:     article.CreatedAt.Format(time.RFC1123Z),
		Author:      fmt.Sprintf("%s Team", u.site.Name),
	}
	if article.FeaturedImage != "" {
		item.Media = &mediaContent{
			URL:    article.FeaturedImage,
			Medium: "image",
			Type:   "image/jpeg",
		}
	}
	return item
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority,omitempty"`
}

// GenerateSitemap renders the static pages, the category pages, and one URL
// per published article. Article lastmod prefers the update time and falls
// back to now when both timestamps are missing.
func (u *FeedUsecase) GenerateSitemap(ctx context.Context) ([]byte, error) {
	entries, err := u.sitemap.ListPublishedEntries(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now().Format(time.RFC3339)
	urls := make([]sitemapURL, 0, len(staticPages)+len(domain.SitemapCategories)+len(entries))

	for _, page := range staticPages {
		priority := "0.8"
		if page == "" {
			priority = "1.0"
		}
		urls = append(urls, sitemapURL{
			Loc:      fmt.Sprintf("%s/%s", u.site.BaseURL, page),
			LastMod:  now,
			Priority: priority,
		})
	}

	for _, category := range domain.SitemapCategories {
		urls = append(urls, sitemapURL{
			Loc:      fmt.Sprintf("%s/category/%s", u.site.BaseURL, category),
			LastMod:  now,
			Priority: "0.9",
		})
	}

	for _, entry := range entries {
		lastMod := entry.UpdatedAt
		if lastMod.IsZero() {
			lastMod = entry.CreatedAt
		}
		lastModStr := now
		if !lastMod.IsZero() {
			lastModStr = lastMod.Format(time.RFC3339)
		}
		urls = append(urls, sitemapURL{
			Loc:     fmt.Sprintf("%s/article/%s", u.site.BaseURL, entry.Slug),
			LastMod: lastModStr,
		})
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
