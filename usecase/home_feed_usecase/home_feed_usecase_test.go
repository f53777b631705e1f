package home_feed_usecase

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

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

func article(id string, createdAt time.Time, content string) *domain.Article {
	return &domain.Article{ID: id, CreatedAt: createdAt, ContentEN: content}
}

func TestHomeFeed_FanOutAndMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	lead := article("a1", base, "full body")
	// Same story shows up in a section query without its body; the merged
	// feed must keep the copy that has content.
	leadThin := article("a1", base, "")
	older := article("a2", base.Add(-time.Hour), "")

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().
		SearchArticles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
			switch {
			case q.Projection == domain.ProjectionLead:
				return []*domain.Article{lead}, nil
			case q.Skip == 1:
				return []*domain.Article{older}, nil
			default:
				return []*domain.Article{leadThin}, nil
			}
		}).
		Times(2 + len(domain.HomeFeedSections))

	usecase := NewHomeFeedUsecase(search)
	feed, err := usecase.Execute(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, feed, 2)
	assert.Equal(t, "a1", feed[0].ID)
	assert.True(t, feed[0].HasContent(), "dedup must keep the copy with content")
	assert.Equal(t, "a2", feed[1].ID)
}

func TestHomeFeed_PartialFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	survivor := article("a1", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), "")

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().
		SearchArticles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
			if q.Projection == domain.ProjectionLead {
				return nil, errors.New("query failed")
			}
			return []*domain.Article{survivor}, nil
		}).
		Times(2 + len(domain.HomeFeedSections))

	usecase := NewHomeFeedUsecase(search)
	feed, err := usecase.Execute(context.Background(), "hi")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "a1", feed[0].ID)
}

func TestHomeFeed_AllQueriesFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().
		SearchArticles(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(2 + len(domain.HomeFeedSections))

	usecase := NewHomeFeedUsecase(search)
	feed, err := usecase.Execute(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, feed)
}

func TestMergeFeed_NewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	merged := mergeFeed([][]*domain.Article{
		{article("a1", base.Add(-2*time.Hour), "")},
		{article("a2", base, ""), article("a3", base.Add(-time.Hour), "")},
	})

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"a2", "a3", "a1"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
}
