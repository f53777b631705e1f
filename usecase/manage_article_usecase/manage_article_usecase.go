package manage_article_usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"khabar/domain"
	"khabar/port/manage_article_port"
	appErrors "khabar/utils/errors"

	"github.com/microcosm-cc/bluemonday"
)

// ManageArticleUsecase is the write side of the editorial workflow: create
// with slug derivation and role-based initial status, partial update, status
// transition, and delete. Rich-text bodies are sanitized before storage.
type ManageArticleUsecase struct {
	articleWriter manage_article_port.ArticleWriterPort
	sanitizer     *bluemonday.Policy
	defaultAuthor string
	now           func() time.Time
}

func NewManageArticleUsecase(articleWriter manage_article_port.ArticleWriterPort, defaultAuthor string) *ManageArticleUsecase {
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowImages()
	return &ManageArticleUsecase{
		articleWriter: articleWriter,
		sanitizer:     sanitizer,
		defaultAuthor: defaultAuthor,
		now:           time.Now,
	}
}

// Create stores a new article. The slug derives from the first non-empty of
// URL headline, long headline, English title, Hindi title; a collision gets
// a millisecond-timestamp suffix instead of overwriting. Admin authors
// publish immediately, editors land in pending review.
func (u *ManageArticleUsecase) Create(ctx context.Context, article *domain.Article, actor *domain.User) (*domain.Article, error) {
	slugTitle := firstNonEmpty(article.URLHeadline, article.LongHeadline, article.TitleEN, article.TitleHI)
	if strings.TrimSpace(slugTitle) == "" {
		return nil, appErrors.ValidationError("title required for slug", nil)
	}

	slug := domain.Slugify(slugTitle)
	exists, err := u.articleWriter.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, u.now().UnixMilli())
	}
	article.Slug = slug

	article.ContentEN = u.sanitizer.Sanitize(article.ContentEN)
	article.ContentHI = u.sanitizer.Sanitize(article.ContentHI)

	role := domain.RoleAdmin
	if actor != nil {
		role = actor.Role
		article.UserID = actor.ID
	}
	if role == domain.RoleAdmin {
		article.Status = domain.StatusPublished
	} else {
		article.Status = domain.StatusPending
	}

	if article.Author == "" {
		if actor != nil && actor.Name != "" {
			article.Author = actor.Name
		} else {
			article.Author = u.defaultAuthor
		}
	}
	if article.GalleryImages == nil {
		article.GalleryImages = []domain.GalleryImage{}
	}
	if article.Keywords == nil {
		article.Keywords = []string{}
	}

	return u.articleWriter.InsertArticle(ctx, article)
}

// Update applies a partial edit. Only fields present in the update change;
// content bodies are sanitized on the way in.
func (u *ManageArticleUsecase) Update(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Article, error) {
	if update.ContentEN != nil {
		clean := u.sanitizer.Sanitize(*update.ContentEN)
		update.ContentEN = &clean
	}
	if update.ContentHI != nil {
		clean := u.sanitizer.Sanitize(*update.ContentHI)
		update.ContentHI = &clean
	}
	return u.articleWriter.UpdateArticle(ctx, id, update)
}

// UpdateStatus moves an article through the approval workflow.
func (u *ManageArticleUsecase) UpdateStatus(ctx context.Context, id string, status domain.ArticleStatus) (*domain.Article, error) {
	if !domain.ValidStatus(status) {
		return nil, appErrors.ValidationError("invalid article status", map[string]interface{}{"status": string(status)})
	}
	return u.articleWriter.UpdateArticleStatus(ctx, id, status)
}

func (u *ManageArticleUsecase) Delete(ctx context.Context, id string) error {
	return u.articleWriter.DeleteArticle(ctx, id)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
