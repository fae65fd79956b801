package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New("press_crawler", dir, "info")
	require.NoError(t, err)

	log.Info("press crawl started", "max_pages", 2)

	name := fmt.Sprintf("press_crawler_%s.log", time.Now().Format("20060102"))
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(b), "press crawl started")
	assert.Contains(t, string(b), "max_pages=2")
}

func TestNewRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	log, err := New("scheduler", dir, "warn")
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")

	name := fmt.Sprintf("scheduler_%s.log", time.Now().Format("20060102"))
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "dropped")
	assert.Contains(t, string(b), "kept")
}

func TestNewCreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	_, err := New("news_crawler", dir, "debug")
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
