package storage

import (
	"context"
	"encoding/json"
	"testing"

	"presswatch/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishLatest(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	pub := NewRedisPublisher(rdb)

	require.NoError(t, pub.PublishLatest(context.Background(), KindPress, testItems()))

	raw, err := mr.Get("presswatch:latest:press")
	require.NoError(t, err)
	var got []model.PressItem
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, testItems(), got)

	// A second publish replaces the mirrored batch.
	second := testItems()
	second[0].Title = "갱신"
	require.NoError(t, pub.PublishLatest(context.Background(), KindPress, second))
	raw, err = mr.Get("presswatch:latest:press")
	require.NoError(t, err)
	assert.Contains(t, raw, "갱신")
}
