package press

import (
	"context"
	"log/slog"
	"sort"

	"presswatch/internal/model"
)

// Aggregator runs every press adapter across a page range and merges the
// results. A failing adapter contributes nothing; it never aborts the batch.
type Aggregator struct {
	Adapters []Adapter
	Log      *slog.Logger
}

// Collect scans pages [1, maxPages] with each adapter in order, then
// deduplicates by URL (first occurrence wins) and sorts by date descending.
func (a *Aggregator) Collect(ctx context.Context, maxPages int) []model.PressItem {
	log := a.Log
	if log == nil {
		log = slog.Default()
	}
	var all []model.PressItem
	for page := 1; page <= maxPages; page++ {
		for _, ad := range a.Adapters {
			res, err := ad.FetchPage(ctx, page)
			if err != nil {
				log.Error("press page fetch failed", "source", ad.Name(), "page", page, "error", err)
				continue
			}
			for _, s := range res.Skips {
				log.Debug("press row skipped", "source", ad.Name(), "page", page, "row", s.Row, "reason", s.Reason)
			}
			log.Info("press page scraped", "source", ad.Name(), "page", page, "items", len(res.Items), "skipped", len(res.Skips))
			all = append(all, res.Items...)
		}
	}
	all = DedupeByURL(all)
	SortByDateDesc(all)
	return all
}

// DedupeByURL keeps the first occurrence of each URL, preserving order.
func DedupeByURL(items []model.PressItem) []model.PressItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]model.PressItem, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}
		out = append(out, it)
	}
	return out
}

// SortByDateDesc sorts newest first. Canonical timestamps share one layout,
// so string comparison is chronological; ties keep their input order.
func SortByDateDesc(items []model.PressItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}
