package manage_article_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=manage_port.go -destination=../../mocks/mock_manage_article_port.go -package=mocks

// ArticleWriterPort persists editorial changes to articles.
type ArticleWriterPort interface {
	InsertArticle(ctx context.Context, article *domain.Article) (*domain.Article, error)
	UpdateArticle(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Article, error)
	UpdateArticleStatus(ctx context.Context, id string, status domain.ArticleStatus) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}
