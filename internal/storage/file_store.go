package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Output file naming shared by the two jobs.
const (
	SnapshotPrefixPress = "press_releases"
	SnapshotPrefixNews  = "news_items"
	LatestPressFile     = "latest_press_releases.json"
	LatestNewsFile      = "latest_news_items.json"
)

// FileStore writes record batches under a data directory: append-only
// timestamped snapshots plus one overwritten "latest" file per batch kind.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if absent.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string { return s.dir }

// SaveSnapshot writes the batch to <prefix>_<YYYYMMDD_HHMM>.json and returns
// the path. Names are minute-granular, so a snapshot is never overwritten in
// normal operation.
func (s *FileStore) SaveSnapshot(records any, prefix string, now time.Time) (string, error) {
	b, err := marshalRecords(records)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", prefix, now.Format("20060102_1504")))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// UpdateLatest overwrites the well-known latest file. The batch is written
// to a temporary sibling and renamed into place, so a concurrent reader
// never observes a partially written file.
func (s *FileStore) UpdateLatest(records any, name string) error {
	b, err := marshalRecords(records)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}

// marshalRecords serializes a batch as indented UTF-8 JSON with non-ASCII
// text left unescaped, matching what downstream consumers parse today.
func marshalRecords(records any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
