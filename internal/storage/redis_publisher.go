package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Batch kinds accepted by the publisher.
const (
	KindPress = "press"
	KindNews  = "news"
)

// RedisPublisher mirrors the latest successful batch into Redis so the
// downstream dashboard can poll a key instead of the filesystem. It is
// optional; jobs run unchanged without it.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func latestKey(kind string) string {
	return "presswatch:latest:" + kind
}

// PublishLatest replaces the mirrored batch for a kind. No TTL: like the
// latest file, the key stays until the next successful run overwrites it.
func (p *RedisPublisher) PublishLatest(ctx context.Context, kind string, records any) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, latestKey(kind), b, 0).Err()
}
