package cache

import (
	"context"
	"fmt"
	"time"
)

// TTL conventions: final games are stable for a long while, live games go
// stale quickly, and discovered game lists are good for a day.
const (
	FinalGameTTL = 7 * 24 * time.Hour
	LiveGameTTL  = 10 * time.Minute
	GameListTTL  = 24 * time.Hour
)

// Cache is a TTL'd key-value store. Implementations must degrade rather than
// fail: an unreachable backend reads as a miss and writes are best-effort.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

func BoxScoreKey(gameID string) string {
	return fmt.Sprintf("boxscore:%s", gameID)
}

func GameListKey(date time.Time) string {
	return fmt.Sprintf("games:date:%s", date.Format("2006-01-02"))
}

func JobsKey() string {
	return "scrape:jobs"
}
