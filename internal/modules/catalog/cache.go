package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hostelhub/internal/repository"
)

const (
	hostelCacheTTL = 10 * time.Minute
	searchCacheTTL = 5 * time.Minute
)

func hostelCacheKey(id int64) string { return fmt.Sprintf("hostel:%d", id) }

func searchCacheKey(f repository.HostelFilter) string {
	verified := "any"
	if f.Verified != nil {
		verified = fmt.Sprintf("%t", *f.Verified)
	}
	return fmt.Sprintf("hostels:search:%s:%s:%s:%.0f:%.0f:%s:%d:%d",
		f.City, f.Area, f.Type, f.MinPrice, f.MaxPrice, verified, f.Limit, f.Offset)
}

// getCached fills target from Redis. A miss leaves target untouched and
// returns false; a nil client always misses.
func getCached(ctx context.Context, rdb *redis.Client, key string, target interface{}) bool {
	if rdb == nil {
		return false
	}
	cached, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), target) == nil
}

func setCached(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, b, ttl)
}

func dropCached(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	rdb.Del(ctx, keys...)
}
