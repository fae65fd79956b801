// Package logging builds the per-job-category loggers. Each category logs
// to stdout and to a date-suffixed file in the log directory, so rotation
// is just a matter of the date rolling over.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// dailyWriter appends to <dir>/<category>_<YYYYMMDD>.log and reopens the
// file when the date changes.
type dailyWriter struct {
	mu       sync.Mutex
	dir      string
	category string
	day      string
	f        *os.File
}

func (w *dailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	day := time.Now().Format("20060102")
	if w.f == nil || day != w.day {
		if w.f != nil {
			w.f.Close()
		}
		name := filepath.Join(w.dir, fmt.Sprintf("%s_%s.log", w.category, day))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, err
		}
		w.f, w.day = f, day
	}
	return w.f.Write(p)
}

// New returns a logger for one job category. The log directory is created
// if absent.
func New(category, dir, level string) (*slog.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	w := &dailyWriter{dir: dir, category: category}
	h := slog.NewTextHandler(io.MultiWriter(os.Stdout, w), &slog.HandlerOptions{Level: lvl})
	return slog.New(h), nil
}
