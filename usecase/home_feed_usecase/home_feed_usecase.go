package home_feed_usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"khabar/domain"
	"khabar/port/fetch_articles_port"
	"khabar/utils/logger"
)

// HomeFeedUsecase assembles the front page in one round trip: the lead
// story, the latest strip, and one block per section category, fanned out
// concurrently and merged with duplicates removed.
type HomeFeedUsecase struct {
	articleSearch fetch_articles_port.ArticleSearchPort
}

func NewHomeFeedUsecase(articleSearch fetch_articles_port.ArticleSearchPort) *HomeFeedUsecase {
	return &HomeFeedUsecase{articleSearch: articleSearch}
}

// Execute runs every feed query concurrently and joins on all of them. A
// failed query degrades its own slice of the feed, not the whole page; the
// call errors only when every query failed. Duplicates across queries keep
// the copy that carries content, and the merged result is newest first.
func (u *HomeFeedUsecase) Execute(ctx context.Context, lang string) ([]*domain.Article, error) {
	queries := []domain.ArticleQuery{
		domain.ComposeLatestQuery(lang, 0, 1, domain.ProjectionLead),
		domain.ComposeLatestQuery(lang, 1, domain.HomeFeedLatest, domain.ProjectionFeed),
	}
	for _, section := range domain.HomeFeedSections {
		queries = append(queries, domain.ComposeSectionQuery(section, lang, domain.SectionLimit))
	}

	results := make([][]*domain.Article, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		i, query := i, query
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = u.articleSearch.SearchArticles(ctx, query)
		}()
	}
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			logger.Logger.ErrorContext(ctx, "home feed query failed", "error", err, "query_index", i)
		}
	}
	if failed == len(queries) {
		return nil, errors.New("error assembling home feed")
	}

	return mergeFeed(results), nil
}

// mergeFeed flattens the query results, drops duplicate IDs keeping the
// richest copy, and orders the survivors newest first.
func mergeFeed(results [][]*domain.Article) []*domain.Article {
	byID := make(map[string]*domain.Article)
	order := make([]string, 0)

	for _, batch := range results {
		for _, article := range batch {
			existing, seen := byID[article.ID]
			if !seen {
				byID[article.ID] = article
				order = append(order, article.ID)
				continue
			}
			if article.HasContent() && !existing.HasContent() {
				byID[article.ID] = article
			}
		}
	}

	merged := make([]*domain.Article, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID > merged[j].ID
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}
