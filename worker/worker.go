package worker

import (
	"context"
	"time"
)

// Worker is a long-running unit supervised by the Manager.
type Worker interface {
	Start(ctx context.Context) error
}

// untilMinute returns the duration until the next wall-clock occurrence of
// the given minute of the hour.
func untilMinute(now time.Time, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(time.Hour)
	}
	return next.Sub(now)
}
