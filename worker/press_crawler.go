package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"presswatch/internal/press"
	"presswatch/internal/storage"
)

// PressCrawler runs the press-release batch at a fixed minute of every hour
// and persists the result as a snapshot plus the latest file.
type PressCrawler struct {
	Aggregator *press.Aggregator
	Store      *storage.FileStore
	Publisher  *storage.RedisPublisher // optional latest mirror
	MaxPages   int
	Minute     int // minute of the hour the job fires at
	Log        *slog.Logger

	running atomic.Bool
}

func (w *PressCrawler) Start(ctx context.Context) error {
	if w.MaxPages <= 0 {
		w.MaxPages = 2
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
func (w *PressCrawler) Run(ctx context.Context) {
	if !w.running.CompareAndSwap(false, true) {
		w.log().Warn("press crawl still running, trigger dropped")
		return
	}
	defer w.running.Store(false)

	start := time.Now()
	w.log().Info("press crawl started", "max_pages", w.MaxPages)
	items := w.Aggregator.Collect(ctx, w.MaxPages)
	if len(items) == 0 {
		// An empty batch never overwrites good data with empty data.
		w.log().Warn("press crawl returned no items, keeping previous output")
		return
	}
	path, err := w.Store.SaveSnapshot(items, storage.SnapshotPrefixPress, start)
	if err != nil {
		w.log().Error("press snapshot write failed", "error", err)
		return
	}
	if err := w.Store.UpdateLatest(items, storage.LatestPressFile); err != nil {
		w.log().Error("press latest write failed", "error", err)
		return
	}
	if w.Publisher != nil {
		if err := w.Publisher.PublishLatest(ctx, storage.KindPress, items); err != nil {
			w.log().Error("press redis publish failed", "error", err)
		}
	}
	w.log().Info("press crawl completed", "path", path, "items", len(items), "duration", time.Since(start).Round(time.Millisecond))
}

func (w *PressCrawler) log() *slog.Logger {
	if w.Log != nil {
		return w.Log
	}
	return slog.Default()
}
