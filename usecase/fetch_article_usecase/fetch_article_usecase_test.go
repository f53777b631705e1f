package fetch_article_usecase

import (
	"context"
	"os"
	"testing"

	"khabar/domain"
	"khabar/mocks"
	"khabar/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func TestFetchByID_BumpsViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookup := mocks.NewMockArticleLookupPort(ctrl)
	lookup.EXPECT().FetchArticleByID(gomock.Any(), "a1").Return(&domain.Article{ID: "a1", Views: 4}, nil)
	lookup.EXPECT().IncrementViews(gomock.Any(), "a1").Return(nil)

	usecase := NewFetchArticleUsecase(lookup)
	article, err := usecase.FetchByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 5, article.Views)
}

func TestFetchBySlug_ViewBumpFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookup := mocks.NewMockArticleLookupPort(ctrl)
	lookup.EXPECT().FetchArticleBySlug(gomock.Any(), "big-story").Return(&domain.Article{ID: "a1", Views: 4}, nil)
	lookup.EXPECT().IncrementViews(gomock.Any(), "a1").Return(assert.AnError)

	usecase := NewFetchArticleUsecase(lookup)
	article, err := usecase.FetchBySlug(context.Background(), "big-story")
	require.NoError(t, err)
	assert.Equal(t, 4, article.Views)
}

func TestFetchByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookup := mocks.NewMockArticleLookupPort(ctrl)
	lookup.EXPECT().FetchArticleByID(gomock.Any(), "missing").Return(nil, domain.ErrArticleNotFound)

	usecase := NewFetchArticleUsecase(lookup)
	_, err := usecase.FetchByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}
