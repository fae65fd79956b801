package news

import (
	"context"
	"log/slog"
	"sort"

	"presswatch/internal/model"
)

// Aggregator runs every news adapter for every tracked keyword and merges
// the results. A failing search contributes nothing; it never aborts the
// batch.
type Aggregator struct {
	Adapters []Adapter // scan order: earlier adapters win URL ties
	Keywords []string
	Log      *slog.Logger
}

// Collect searches each keyword in configured order against each adapter,
// re-deduplicating the whole running collection by URL after every keyword
// so that an article surfaced by an earlier keyword keeps its first record.
// The final result is sorted by date descending.
func (a *Aggregator) Collect(ctx context.Context, maxItemsPerSource int) []model.NewsItem {
	log := a.Log
	if log == nil {
		log = slog.Default()
	}
	var all []model.NewsItem
	for _, kw := range a.Keywords {
		for _, ad := range a.Adapters {
			res, err := ad.Search(ctx, kw, 1, maxItemsPerSource)
			if err != nil {
				log.Error("news search failed", "source", ad.Name(), "keyword", kw, "error", err)
				continue
			}
			for _, s := range res.Skips {
				log.Debug("news entry skipped", "source", ad.Name(), "keyword", kw, "index", s.Index, "reason", s.Reason)
			}
			log.Info("news search scraped", "source", ad.Name(), "keyword", kw, "items", len(res.Items), "skipped", len(res.Skips))
			all = append(all, res.Items...)
		}
		all = DedupeByURL(all)
	}
	SortByDateDesc(all)
	return all
}

// DedupeByURL keeps the first occurrence of each URL, preserving order.
func DedupeByURL(items []model.NewsItem) []model.NewsItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]model.NewsItem, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}
		out = append(out, it)
	}
	return out
}

// SortByDateDesc sorts newest first; ties keep their input order.
func SortByDateDesc(items []model.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}
