package fetch_articles_usecase

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

func TestSearch_RequiresQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewFetchArticlesUsecase(mocks.NewMockArticleSearchPort(ctrl))
	_, err := usecase.Search(context.Background(), "   ")
	assert.Error(t, err)
}

func TestSearch_RunsBoundedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().
		SearchArticles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
			assert.Equal(t, domain.SearchLimit, q.Limit)
			assert.Equal(t, domain.ProjectionList, q.Projection)
			return []*domain.Article{{ID: "a1"}}, nil
		})

	usecase := NewFetchArticlesUsecase(search)
	got, err := usecase.Search(context.Background(), "election")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRelated_RequiresCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewFetchArticlesUsecase(mocks.NewMockArticleSearchPort(ctrl))
	_, err := usecase.Related(context.Background(), "", "slug", "hi", 6)
	assert.Error(t, err)
}

func TestPublicList_NilBecomesEmptySlice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().SearchArticles(gomock.Any(), gomock.Any()).Return(nil, nil)

	usecase := NewFetchArticlesUsecase(search)
	got, err := usecase.PublicList(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdminList_UsesAdminProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().
		SearchArticles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
			assert.Equal(t, domain.ProjectionAdminList, q.Projection)
			return []*domain.Article{{ID: "a1", Status: domain.StatusPending}}, nil
		})

	usecase := NewFetchArticlesUsecase(search)
	got, err := usecase.AdminList(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
