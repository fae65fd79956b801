package press

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"presswatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	name     string
	pages    map[int][]model.PressItem
	failPage int
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) FetchPage(ctx context.Context, page int) (Page, error) {
	if page == s.failPage {
		return Page{}, errors.New("boom")
	}
	return Page{Items: s.pages[page]}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pressItem(url, date string) model.PressItem {
	return model.PressItem{
		ID:    model.MakeID("stub", date, url),
		Title: "t",
		URL:   url,
		Date:  date,
		Type:  model.TypeSource,
	}
}

func TestCollectAbsorbsPageFailure(t *testing.T) {
	ad := &stubAdapter{
		name: "stub",
		pages: map[int][]model.PressItem{
			1: {pressItem("u1", "2025-08-10T00:00:00")},
			2: {pressItem("u2", "2025-08-11T00:00:00")},
			3: {pressItem("u3", "2025-08-12T00:00:00")},
		},
		failPage: 2,
	}
	agg := &Aggregator{Adapters: []Adapter{ad}, Log: discardLogger()}

	got := agg.Collect(context.Background(), 3)
	require.Len(t, got, 2)
	urls := []string{got[0].URL, got[1].URL}
	assert.ElementsMatch(t, []string{"u1", "u3"}, urls)
}

func TestCollectDedupesAndSorts(t *testing.T) {
	a := &stubAdapter{name: "a", pages: map[int][]model.PressItem{
		1: {
			pressItem("shared", "2025-08-10T00:00:00"),
			pressItem("a-only", "2025-08-15T00:00:00"),
		},
	}}
	b := &stubAdapter{name: "b", pages: map[int][]model.PressItem{
		1: {pressItem("shared", "2025-08-20T00:00:00")},
	}}
	agg := &Aggregator{Adapters: []Adapter{a, b}, Log: discardLogger()}

	got := agg.Collect(context.Background(), 1)
	require.Len(t, got, 2)
	// First occurrence wins the URL tie, so "shared" keeps adapter a's date.
	assert.Equal(t, "a-only", got[0].URL)
	assert.Equal(t, "shared", got[1].URL)
	assert.Equal(t, "2025-08-10T00:00:00", got[1].Date)
}

func TestDedupeByURLIdempotent(t *testing.T) {
	in := []model.PressItem{
		pressItem("u1", "2025-08-10T00:00:00"),
		pressItem("u2", "2025-08-11T00:00:00"),
		pressItem("u1", "2025-08-12T00:00:00"),
	}
	once := DedupeByURL(in)
	twice := DedupeByURL(once)
	assert.Equal(t, once, twice)
	require.Len(t, once, 2)
	assert.Equal(t, "2025-08-10T00:00:00", once[0].Date)
}

func TestSortByDateDescStable(t *testing.T) {
	items := []model.PressItem{
		pressItem("u1", "2025-08-10T00:00:00"),
		pressItem("u2", "2025-08-12T00:00:00"),
		pressItem("u3", "2025-08-10T00:00:00"),
	}
	SortByDateDesc(items)
	want := []string{"u2", "u1", "u3"}
	for i, u := range want {
		assert.Equal(t, u, items[i].URL, fmt.Sprintf("position %d", i))
	}
}
