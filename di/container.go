package di

import (
	"khabar/config"
	"khabar/gateway/article_gateway"
	"khabar/gateway/mailer_gateway"
	"khabar/gateway/news_source_gateway"
	"khabar/gateway/sitemap_gateway"
	"khabar/gateway/subscriber_gateway"
	"khabar/gateway/user_gateway"
	"khabar/usecase/auth_usecase"
	"khabar/usecase/category_feed_usecase"
	"khabar/usecase/contact_usecase"
	"khabar/usecase/feed_usecase"
	"khabar/usecase/fetch_article_usecase"
	"khabar/usecase/fetch_articles_usecase"
	"khabar/usecase/home_feed_usecase"
	"khabar/usecase/ingest_news_usecase"
	"khabar/usecase/manage_article_usecase"
	"khabar/usecase/subscribe_usecase"
	"khabar/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FetchArticlesUsecase *fetch_articles_usecase.FetchArticlesUsecase
	FetchArticleUsecase  *fetch_article_usecase.FetchArticleUsecase
	CategoryFeedUsecase  *category_feed_usecase.CategoryFeedUsecase
	HomeFeedUsecase      *home_feed_usecase.HomeFeedUsecase
	ManageArticleUsecase *manage_article_usecase.ManageArticleUsecase
	AuthUsecase          *auth_usecase.AuthUsecase
	SubscribeUsecase     *subscribe_usecase.SubscribeUsecase
	ContactUsecase       *contact_usecase.ContactUsecase
	FeedUsecase          *feed_usecase.FeedUsecase
	IngestNewsUsecase    *ingest_news_usecase.IngestNewsUsecase
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	// Create the concrete gateway implementations
	fetchArticlesGatewayImpl := article_gateway.NewFetchArticlesGateway(pool)
	manageArticlesGatewayImpl := article_gateway.NewManageArticlesGateway(pool)
	userGatewayImpl := user_gateway.NewUserGateway(pool)
	subscriberGatewayImpl := subscriber_gateway.NewSubscriberGateway(pool)
	sitemapGatewayImpl := sitemap_gateway.NewSitemapGateway(pool)
	mailerGatewayImpl := mailer_gateway.NewMailerGateway(cfg.SMTP, cfg.Site)

	fetchArticlesUsecase := fetch_articles_usecase.NewFetchArticlesUsecase(fetchArticlesGatewayImpl)
	fetchArticleUsecase := fetch_article_usecase.NewFetchArticleUsecase(fetchArticlesGatewayImpl)
	homeFeedUsecase := home_feed_usecase.NewHomeFeedUsecase(fetchArticlesGatewayImpl)
	manageArticleUsecase := manage_article_usecase.NewManageArticleUsecase(manageArticlesGatewayImpl, cfg.Site.Name)
	authUsecase := auth_usecase.NewAuthUsecase(userGatewayImpl, cfg.Auth)
	subscribeUsecase := subscribe_usecase.NewSubscribeUsecase(subscriberGatewayImpl, mailerGatewayImpl)
	contactUsecase := contact_usecase.NewContactUsecase(mailerGatewayImpl)
	feedUsecase := feed_usecase.NewFeedUsecase(fetchArticlesGatewayImpl, sitemapGatewayImpl, cfg.Site)

	// External news ingestion is optional; without an API key the category
	// pages simply never backfill.
	var ingestNewsUsecase *ingest_news_usecase.IngestNewsUsecase
	var backfiller category_feed_usecase.Backfiller
	if cfg.GNewsEnabled() {
		rateLimiter := rate_limiter.NewHostRateLimiter(cfg.GNews.RateInterval)
		newsSourceGatewayImpl := news_source_gateway.NewNewsSourceGateway(cfg.GNews, rateLimiter)
		ingestNewsUsecase = ingest_news_usecase.NewIngestNewsUsecase(newsSourceGatewayImpl, manageArticlesGatewayImpl)
		backfiller = ingestNewsUsecase
	}
	categoryFeedUsecase := category_feed_usecase.NewCategoryFeedUsecase(
		fetchArticlesGatewayImpl,
		backfiller,
		cfg.GNews.JobTimeout,
	)

	return &ApplicationComponents{
		FetchArticlesUsecase: fetchArticlesUsecase,
		FetchArticleUsecase:  fetchArticleUsecase,
		CategoryFeedUsecase:  categoryFeedUsecase,
		HomeFeedUsecase:      homeFeedUsecase,
		ManageArticleUsecase: manageArticleUsecase,
		AuthUsecase:          authUsecase,
		SubscribeUsecase:     subscribeUsecase,
		ContactUsecase:       contactUsecase,
		FeedUsecase:          feedUsecase,
		IngestNewsUsecase:    ingestNewsUsecase,
	}
}
