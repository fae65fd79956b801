package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"presswatch/internal/news"
	"presswatch/internal/storage"
)

// NewsCrawler runs the keyword news batch at a fixed minute of every hour,
// offset from the press job to avoid resource contention.
type NewsCrawler struct {
	Aggregator        *news.Aggregator
	Store             *storage.FileStore
	Publisher         *storage.RedisPublisher // optional latest mirror
	MaxItemsPerSource int
	Minute            int
	Log               *slog.Logger

	running atomic.Bool
}

func (w *NewsCrawler) Start(ctx context.Context) error {
	if w.MaxItemsPerSource <= 0 {
		w.MaxItemsPerSource = 5
	}
	for {
		t := time.NewTimer(untilMinute(time.Now(), w.Minute))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case <-t.C:
			w.Run(ctx)
		}
	}
}

// Run executes one batch. A trigger that fires while the previous run is
// still in flight is dropped, not queued.
func (w *NewsCrawler) Run(ctx context.Context) {
	if !w.running.CompareAndSwap(false, true) {
		w.log().Warn("news crawl still running, trigger dropped")
		return
	}
	defer w.running.Store(false)

	start := time.Now()
	w.log().Info("news crawl started", "max_items_per_source", w.MaxItemsPerSource)
	items := w.Aggregator.Collect(ctx, w.MaxItemsPerSource)
	if len(items) == 0 {
		w.log().Warn("news crawl returned no items, keeping previous output")
		return
	}
	path, err := w.Store.SaveSnapshot(items, storage.SnapshotPrefixNews, start)
	if err != nil {
		w.log().Error("news snapshot write failed", "error", err)
		return
	}
	if err := w.Store.UpdateLatest(items, storage.LatestNewsFile); err != nil {
		w.log().Error("news latest write failed", "error", err)
		return
	}
	if w.Publisher != nil {
		if err := w.Publisher.PublishLatest(ctx, storage.KindNews, items); err != nil {
			w.log().Error("news redis publish failed", "error", err)
		}
	}
	w.log().Info("news crawl completed", "path", path, "items", len(items), "duration", time.Since(start).Round(time.Millisecond))
}

func (w *NewsCrawler) log() *slog.Logger {
	if w.Log != nil {
		return w.Log
	}
	return slog.Default()
}
