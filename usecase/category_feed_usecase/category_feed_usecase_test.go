package category_feed_usecase

import (
	"context"
	"errors"
	"os"
	"sync"
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

// recordingBackfiller observes detached backfill calls.
type recordingBackfiller struct {
	mu         sync.Mutex
	categories []string
	called     chan string
}

func newRecordingBackfiller() *recordingBackfiller {
	return &recordingBackfiller{called: make(chan string, 1)}
}

func (b *recordingBackfiller) FetchAndStoreCategory(_ context.Context, category string) (int, error) {
	b.mu.Lock()
	b.categories = append(b.categories, category)
	b.mu.Unlock()
	b.called <- category
	return 0, nil
}

func (b *recordingBackfiller) waitForCall(t *testing.T) string {
	t.Helper()
	select {
	case category := <-b.called:
		return category
	case <-time.After(2 * time.Second):
		t.Fatal("backfill was not triggered")
		return ""
	}
}

func (b *recordingBackfiller) assertNotCalled(t *testing.T) {
	t.Helper()
	select {
	case category := <-b.called:
		t.Fatalf("unexpected backfill for %q", category)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCategoryFeed_ReturnsArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []*domain.Article{{ID: "a1"}}
	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().SearchArticles(gomock.Any(), gomock.Any()).Return(want, nil)

	backfiller := newRecordingBackfiller()
	usecase := NewCategoryFeedUsecase(search, backfiller, time.Minute)

	got, err := usecase.Execute(context.Background(), domain.CategoryRequest{
		Category: "national",
		Limit:    domain.CategoryPageLimit,
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	backfiller.assertNotCalled(t)
}

func TestCategoryFeed_EmptyTriggersBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().SearchArticles(gomock.Any(), gomock.Any()).Return(nil, nil)

	backfiller := newRecordingBackfiller()
	usecase := NewCategoryFeedUsecase(search, backfiller, time.Minute)

	got, err := usecase.Execute(context.Background(), domain.CategoryRequest{
		Category: "world",
		Limit:    domain.CategoryPageLimit,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got, "empty page is an empty slice, not nil")
	assert.Equal(t, "world", backfiller.waitForCall(t))
}

func TestCategoryFeed_RefinedRequestNeverBackfills(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().SearchArticles(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	backfiller := newRecordingBackfiller()
	usecase := NewCategoryFeedUsecase(search, backfiller, time.Minute)

	_, err := usecase.Execute(context.Background(), domain.CategoryRequest{
		Category:    "world",
		Subcategory: "tech",
	})
	require.NoError(t, err)
	backfiller.assertNotCalled(t)

	_, err = usecase.Execute(context.Background(), domain.CategoryRequest{
		Category: "national",
		District: "bhopal",
	})
	require.NoError(t, err)
	backfiller.assertNotCalled(t)
}

func TestCategoryFeed_NoBackfillerConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().SearchArticles(gomock.Any(), gomock.Any()).Return(nil, nil)

	usecase := NewCategoryFeedUsecase(search, nil, time.Minute)

	got, err := usecase.Execute(context.Background(), domain.CategoryRequest{Category: "world"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCategoryFeed_SearchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockArticleSearchPort(ctrl)
	search.EXPECT().SearchArticles(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	backfiller := newRecordingBackfiller()
	usecase := NewCategoryFeedUsecase(search, backfiller, time.Minute)

	_, err := usecase.Execute(context.Background(), domain.CategoryRequest{Category: "world"})
	assert.Error(t, err)
	backfiller.assertNotCalled(t)
}
