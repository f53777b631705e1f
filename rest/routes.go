package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"khabar/config"
	"khabar/di"
	middleware_custom "khabar/middleware"
	"khabar/utils/logger"
)

// RegisterRoutes wires the middleware stack and all HTTP routes onto e.
func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every later middleware and handler can log it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery early to catch panics from everything below
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 4. CORS, origins come from config
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins(),
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "x-auth-token"},
		MaxAge:       86400,
	}))

	// 5. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	// 6. Request logging
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	v1 := e.Group("/v1")

	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	articleHandler := NewArticleHandler(
		container.FetchArticlesUsecase,
		container.FetchArticleUsecase,
		container.CategoryFeedUsecase,
		container.HomeFeedUsecase,
		container.ManageArticleUsecase,
	)
	authHandler := NewAuthHandler(container.AuthUsecase)
	subscriberHandler := NewSubscriberHandler(container.SubscribeUsecase, container.ContactUsecase)
	feedHandler := NewFeedHandler(container.FeedUsecase)

	requireAuth := middleware_custom.JWTMiddleware(container.AuthUsecase)
	requireAdmin := middleware_custom.RequireAdmin()

	// Reader-facing article routes. Fixed paths are registered before the
	// parameterized slug and id routes.
	articles := v1.Group("/articles")
	articles.GET("", articleHandler.List)
	articles.GET("/feed", articleHandler.HomeFeed)
	articles.GET("/search", articleHandler.Search)
	articles.GET("/top-news", articleHandler.TopNews)
	articles.GET("/related", articleHandler.Related)
	articles.GET("/category/:category", articleHandler.Category)
	articles.GET("/category/:category/:subcategory", articleHandler.Category)
	articles.GET("/category/:category/:subcategory/:district", articleHandler.Category)
	articles.GET("/slug/:slug", articleHandler.BySlug)
	articles.GET("/id/:id", articleHandler.ByID)

	// Editorial routes
	articles.POST("", articleHandler.Create, requireAuth)
	articles.PUT("/:id", articleHandler.Update, requireAuth)
	articles.DELETE("/:id", articleHandler.Delete, requireAuth)
	articles.PUT("/:id/status", articleHandler.UpdateStatus, requireAuth, requireAdmin)
	articles.GET("/admin/all", articleHandler.AdminList, requireAuth, requireAdmin)

	// Accounts
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register, requireAuth, requireAdmin)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.PUT("/me", authHandler.UpdateMe, requireAuth)
	auth.GET("/users", authHandler.Team, requireAuth, requireAdmin)
	auth.PUT("/users/:id", authHandler.UpdateUser, requireAuth, requireAdmin)
	auth.DELETE("/users/:id", authHandler.DeleteUser, requireAuth, requireAdmin)

	// Subscribers and contact
	v1.POST("/subscribers", subscriberHandler.Subscribe)
	v1.GET("/subscribers", subscriberHandler.List, requireAuth, requireAdmin)
	v1.POST("/contact", subscriberHandler.Contact)

	// Feeds
	v1.GET("/feed.xml", feedHandler.RSS)
	v1.GET("/sitemap.xml", feedHandler.Sitemap)
}
