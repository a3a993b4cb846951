package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/infra/adapter/persistence/memory"
	fetchUC "github.com/puntadelverde-srpm/srpm/internal/usecase/fetch"
)

/* ───────── stubs ───────── */

type stubSourceRepo struct {
	sources []*entity.Source
	err     error
}

func (s *stubSourceRepo) ListActive(_ context.Context) ([]*entity.Source, error) {
	return s.sources, s.err
}

// stubFeedFetcher serves canned feeds by URL.
type stubFeedFetcher struct {
	mu    sync.Mutex
	feeds map[string][]fetchUC.FeedItem
	errs  map[string]error
	calls map[string]int
}

func (f *stubFeedFetcher) Fetch(_ context.Context, url string) ([]fetchUC.FeedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[url]++
	if err := f.errs[url]; err != nil {
		return nil, err
	}
	return f.feeds[url], nil
}

func src(name string) *entity.Source {
	return &entity.Source{Name: name, FeedURL: "https://" + name + ".example/rss"}
}

func entries(prefix string, n int) []fetchUC.FeedItem {
	out := make([]fetchUC.FeedItem, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fetchUC.FeedItem{
			Title: fmt.Sprintf("%s title %d", prefix, i),
			URL:   fmt.Sprintf("https://%s.example/%d", prefix, i),
		})
	}
	return out
}

func newService(srcs []*entity.Source, fetcher fetchUC.FeedFetcher) (*fetchUC.Service, *memory.ItemRepo) {
	items := memory.NewItemRepo()
	return fetchUC.NewService(&stubSourceRepo{sources: srcs}, items, fetcher, 2), items
}

/* ───────── FetchAll ───────── */

func TestFetchAll_InvalidLimit(t *testing.T) {
	fetcher := &stubFeedFetcher{}
	svc, _ := newService([]*entity.Source{src("a")}, fetcher)

	for _, limit := range []int{0, -1} {
		res, err := svc.FetchAll(context.Background(), limit)
		assert.ErrorIs(t, err, fetchUC.ErrInvalidLimit)
		assert.Nil(t, res)
	}
	assert.Empty(t, fetcher.calls, "no feed may be retrieved on an invalid limit")
}

func TestFetchAll_RespectsLimit(t *testing.T) {
	a := src("a")
	fetcher := &stubFeedFetcher{feeds: map[string][]fetchUC.FeedItem{a.FeedURL: entries("a", 10)}}
	svc, items := newService([]*entity.Source{a}, fetcher)

	res, err := svc.FetchAll(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	stored, _ := items.List(context.Background())
	require.Len(t, stored, 3)
	assert.Equal(t, "https://a.example/1", stored[0].Link, "entries are taken in document order")
	assert.Equal(t, "https://a.example/3", stored[2].Link)
}

func TestFetchAll_SecondRunAddsNothing(t *testing.T) {
	a := src("a")
	fetcher := &stubFeedFetcher{feeds: map[string][]fetchUC.FeedItem{a.FeedURL: entries("a", 5)}}
	svc, items := newService([]*entity.Source{a}, fetcher)
	ctx := context.Background()

	first, err := svc.FetchAll(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Total)
	assert.Equal(t, "Update completed. 5 new items added.", first.Message)

	second, err := svc.FetchAll(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Total)
	assert.Equal(t, 5, second.PerSource[0].Duplicates)
	assert.Equal(t, "Update completed. 0 new items added.", second.Message)

	n, _ := items.Count(ctx)
	assert.Equal(t, 5, n)
}

func TestFetchAll_SkipsEntriesWithoutLink(t *testing.T) {
	a := src("a")
	feed := []fetchUC.FeedItem{
		{Title: "no link"},
		{Title: "ok", URL: "https://a.example/1"},
	}
	fetcher := &stubFeedFetcher{feeds: map[string][]fetchUC.FeedItem{a.FeedURL: feed}}
	svc, items := newService([]*entity.Source{a}, fetcher)

	res, err := svc.FetchAll(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.PerSource[0].Skipped)

	n, _ := items.Count(context.Background())
	assert.Equal(t, 1, n)
}

func TestFetchAll_FailingSourceIsIsolated(t *testing.T) {
	a, b, c := src("a"), src("b"), src("c")
	fetcher := &stubFeedFetcher{
		feeds: map[string][]fetchUC.FeedItem{
			a.FeedURL: entries("a", 2),
			c.FeedURL: entries("c", 3),
		},
		errs: map[string]error{b.FeedURL: errors.New("connection refused")},
	}
	svc, items := newService([]*entity.Source{a, b, c}, fetcher)

	res, err := svc.FetchAll(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	require.Len(t, res.PerSource, 3)
	assert.Equal(t, "b", res.PerSource[1].Source)
	assert.Contains(t, res.PerSource[1].Error, fetchUC.ErrFeedFetchFailed.Error())
	assert.Zero(t, res.PerSource[1].NewItems)

	stored, _ := items.List(context.Background())
	require.Len(t, stored, 5)
	// IDs follow registry order even though retrieval is concurrent.
	assert.Equal(t, "a", stored[0].Source)
	assert.Equal(t, "a", stored[1].Source)
	assert.Equal(t, "c", stored[2].Source)
}

func TestFetchAll_ListSourcesError(t *testing.T) {
	boom := errors.New("registry down")
	svc := fetchUC.NewService(&stubSourceRepo{err: boom}, memory.NewItemRepo(), &stubFeedFetcher{}, 1)

	_, err := svc.FetchAll(context.Background(), 5)
	assert.ErrorIs(t, err, boom)
}

func TestFetchAll_BuildsSanitizedItems(t *testing.T) {
	published := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	a := src("a")
	feed := []fetchUC.FeedItem{
		{
			Title:       "<b>Big</b> &amp; bold",
			URL:         "https://a.example/content",
			Content:     "<p>Body<script>x()</script></p>",
			Description: "ignored",
			PublishedAt: &published,
		},
		{
			Title:       "desc",
			URL:         "https://a.example/desc",
			Description: "Line one\nLine two",
		},
		{
			Title: "none",
			URL:   "https://a.example/none",
		},
	}
	fetcher := &stubFeedFetcher{feeds: map[string][]fetchUC.FeedItem{a.FeedURL: feed}}
	svc, items := newService([]*entity.Source{a}, fetcher)
	ctx := context.Background()

	_, err := svc.FetchAll(ctx, 20)
	require.NoError(t, err)

	withContent, _ := items.GetByLink(ctx, "https://a.example/content")
	require.NotNil(t, withContent)
	assert.Equal(t, "Big & bold", withContent.Title)
	require.NotNil(t, withContent.Content)
	assert.Equal(t, "Body", *withContent.Content)
	assert.Equal(t, published, withContent.PublishedAt)
	assert.Equal(t, "a", withContent.Source)

	withDesc, _ := items.GetByLink(ctx, "https://a.example/desc")
	require.NotNil(t, withDesc.Content)
	assert.Equal(t, "Line one Line two", *withDesc.Content)
	assert.False(t, withDesc.PublishedAt.IsZero(), "store fills a missing publication time")

	none, _ := items.GetByLink(ctx, "https://a.example/none")
	assert.Nil(t, none.Content)
}

func TestFetchAll_SameLinkAcrossSources(t *testing.T) {
	a, b := src("a"), src("b")
	shared := []fetchUC.FeedItem{{Title: "shared", URL: "https://shared.example/1"}}
	fetcher := &stubFeedFetcher{feeds: map[string][]fetchUC.FeedItem{a.FeedURL: shared, b.FeedURL: shared}}
	svc, items := newService([]*entity.Source{a, b}, fetcher)

	res, err := svc.FetchAll(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	got, _ := items.GetByLink(context.Background(), "https://shared.example/1")
	assert.Equal(t, "a", got.Source, "first source in registry order wins")
}
