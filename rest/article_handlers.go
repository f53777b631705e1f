package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"khabar/domain"
	"khabar/middleware"
	"khabar/usecase/auth_usecase"
	"khabar/usecase/category_feed_usecase"
	"khabar/usecase/fetch_article_usecase"
	"khabar/usecase/fetch_articles_usecase"
	"khabar/usecase/home_feed_usecase"
	"khabar/usecase/manage_article_usecase"
)

// ArticleHandler serves both the reader-facing article routes and the
// editorial CRUD routes.
type ArticleHandler struct {
	fetchArticles *fetch_articles_usecase.FetchArticlesUsecase
	fetchArticle  *fetch_article_usecase.FetchArticleUsecase
	categoryFeed  *category_feed_usecase.CategoryFeedUsecase
	homeFeed      *home_feed_usecase.HomeFeedUsecase
	manageArticle *manage_article_usecase.ManageArticleUsecase
}

func NewArticleHandler(
	fetchArticles *fetch_articles_usecase.FetchArticlesUsecase,
	fetchArticle *fetch_article_usecase.FetchArticleUsecase,
	categoryFeed *category_feed_usecase.CategoryFeedUsecase,
	homeFeed *home_feed_usecase.HomeFeedUsecase,
	manageArticle *manage_article_usecase.ManageArticleUsecase,
) *ArticleHandler {
	return &ArticleHandler{
		fetchArticles: fetchArticles,
		fetchArticle:  fetchArticle,
		categoryFeed:  categoryFeed,
		homeFeed:      homeFeed,
		manageArticle: manageArticle,
	}
}

func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.fetchArticles.PublicList(c.Request().Context())
	if err != nil {
		return handleError(c, err, "list articles")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) HomeFeed(c echo.Context) error {
	articles, err := h.homeFeed.Execute(c.Request().Context(), c.QueryParam("lang"))
	if err != nil {
		return handleError(c, err, "home feed")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) Search(c echo.Context) error {
	articles, err := h.fetchArticles.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return handleError(c, err, "search articles")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) TopNews(c echo.Context) error {
	articles, err := h.fetchArticles.TopNews(c.Request().Context(), c.QueryParam("lang"), c.QueryParam("exclude"))
	if err != nil {
		return handleError(c, err, "top news")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) Related(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "limit must be a number")
		}
		limit = n
	}
	articles, err := h.fetchArticles.Related(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("slug"),
		c.QueryParam("lang"),
		limit,
	)
	if err != nil {
		return handleError(c, err, "related articles")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) Category(c echo.Context) error {
	req := domain.CategoryRequest{
		Category:    c.Param("category"),
		Subcategory: c.Param("subcategory"),
		District:    c.Param("district"),
		Lang:        c.QueryParam("lang"),
		Status:      domain.StatusPublishedOrLegacy,
	}
	if req.Category == "" {
		return badRequest(c, "category is required")
	}
	articles, err := h.categoryFeed.Execute(c.Request().Context(), req)
	if err != nil {
		return handleError(c, err, "category feed")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) BySlug(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return badRequest(c, "slug is required")
	}
	article, err := h.fetchArticle.FetchBySlug(c.Request().Context(), slug)
	if err != nil {
		return handleError(c, err, "fetch article by slug")
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) ByID(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return badRequest(c, "id is required")
	}
	article, err := h.fetchArticle.FetchByID(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err, "fetch article by id")
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) AdminList(c echo.Context) error {
	articles, err := h.fetchArticles.AdminList(c.Request().Context())
	if err != nil {
		return handleError(c, err, "admin list articles")
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) Create(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	article, err := h.manageArticle.Create(c.Request().Context(), req.article(), actorFrom(c))
	if err != nil {
		return handleError(c, err, "create article")
	}
	return c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) Update(c echo.Context) error {
	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	article, err := h.manageArticle.Update(c.Request().Context(), c.Param("id"), req.update())
	if err != nil {
		return handleError(c, err, "update article")
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	article, err := h.manageArticle.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ArticleStatus(req.Status))
	if err != nil {
		return handleError(c, err, "update article status")
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.manageArticle.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err, "delete article")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Article deleted"})
}

// actorFrom rebuilds the acting user from the verified token claims.
func actorFrom(c echo.Context) *domain.User {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil
	}
	return userFromClaims(claims)
}

func userFromClaims(claims *auth_usecase.Claims) *domain.User {
	return &domain.User{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: domain.Role(claims.Role),
	}
}
