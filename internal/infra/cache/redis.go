package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"seller-catalog/internal/pkg/config"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

type RedisCouponCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisCouponCache(rdb redis.Cmdable, ttl time.Duration) *RedisCouponCache {
	return &RedisCouponCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient connects and pings the server at cfg.RedisURL.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis url")
	}
	opts.ReadTimeout = cfg.RedisReadTimeout
	opts.WriteTimeout = cfg.RedisWriteTimeout
	opts.DialTimeout = cfg.RedisDialTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

// staleEpoch never matches a stored epoch, so a Set after a failed epoch read
// is dropped.
const staleEpoch = -1

// setIfEpoch writes the list only while the shop epoch still equals ARGV[1].
var setIfEpoch = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

func (c *RedisCouponCache) Get(ctx context.Context, shop string, day time.Time) ([]*queries.CouponView, int64, bool) {
	key := activeCouponKey(shop, day)

	pipe := c.rdb.Pipeline()
	epochCmd := pipe.Get(ctx, shopEpochKey(shop))
	dataCmd := pipe.Get(ctx, key)
	_, _ = pipe.Exec(ctx)

	epoch, err := epochCmd.Int64()
	switch {
	case errors.Is(err, redis.Nil):
		epoch = 0
	case err != nil:
		slog.Warn("coupon cache epoch read failed", "shop", shop, "error", err)
		return nil, staleEpoch, false
	}

	data, err := dataCmd.Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("coupon cache read failed", "key", key, "error", err)
		}
		return nil, epoch, false
	}

	var coupons []*queries.CouponView
	if err := json.Unmarshal(data, &coupons); err != nil {
		slog.Warn("coupon cache entry is corrupt", "key", key, "error", err)
		return nil, epoch, false
	}
	return coupons, epoch, true
}

func (c *RedisCouponCache) Set(ctx context.Context, shop string, day time.Time, epoch int64, coupons []*queries.CouponView) {
	key := activeCouponKey(shop, day)
	if epoch == staleEpoch {
		return
	}
	if coupons == nil {
		coupons = []*queries.CouponView{}
	}
	data, err := json.Marshal(coupons)
	if err != nil {
		slog.Warn("coupon cache encode failed", "key", key, "error", err)
		return
	}
	keys := []string{shopEpochKey(shop), key}
	stored, err := setIfEpoch.Run(ctx, c.rdb, keys, strconv.FormatInt(epoch, 10), data, c.ttl.Milliseconds()).Int()
	if err != nil {
		slog.Warn("coupon cache write failed", "key", key, "error", err)
		return
	}
	if stored == 0 {
		slog.Debug("coupon cache write skipped after invalidation", "key", key, "epoch", epoch)
	}
}

func (c *RedisCouponCache) InvalidateShop(ctx context.Context, shop string) error {
	if err := c.rdb.Incr(ctx, shopEpochKey(shop)).Err(); err != nil {
		return errs.Wrap(err, "failed to advance coupon cache epoch")
	}

	pattern := escapeGlob(shopPrefix(shop)) + "*"

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return errs.Wrap(err, "failed to scan coupon cache keys")
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return errs.Wrap(err, "failed to delete coupon cache keys")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
