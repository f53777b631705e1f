package fetch_article_usecase

import (
	"context"

	"khabar/domain"
	"khabar/port/fetch_articles_port"
	"khabar/utils/logger"
)

// FetchArticleUsecase serves single-article reads. Every successful read
// bumps the view counter; a failed bump is logged and never fails the read.
type FetchArticleUsecase struct {
	articleLookup fetch_articles_port.ArticleLookupPort
}

func NewFetchArticleUsecase(articleLookup fetch_articles_port.ArticleLookupPort) *FetchArticleUsecase {
	return &FetchArticleUsecase{articleLookup: articleLookup}
}

func (u *FetchArticleUsecase) FetchByID(ctx context.Context, id string) (*domain.Article, error) {
	article, err := u.articleLookup.FetchArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.bumpViews(ctx, article)
	return article, nil
}

func (u *FetchArticleUsecase) FetchBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := u.articleLookup.FetchArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	u.bumpViews(ctx, article)
	return article, nil
}

func (u *FetchArticleUsecase) bumpViews(ctx context.Context, article *domain.Article) {
	if err := u.articleLookup.IncrementViews(ctx, article.ID); err != nil {
		logger.Logger.WarnContext(ctx, "failed to increment views", "error", err, "article_id", article.ID)
		return
	}
	article.Views++
}
