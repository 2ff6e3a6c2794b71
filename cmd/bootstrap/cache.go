package bootstrap

import (
	"context"
	"log/slog"

	"seller-catalog/internal/infra/cache"
	"seller-catalog/internal/pkg/clock"
	"seller-catalog/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCouponCache,
	),
)

// NewCouponCache uses Redis when CACHE_REDIS_URL is set and an in-process map otherwise.
func NewCouponCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (cache.CouponCache, error) {
	if cfg.Cache.RedisURL == "" {
		mem := cache.NewMemoryCouponCache(cfg.Cache.ActiveCouponTTL, clk)
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go mem.RunCleanup(cfg.Cache.ActiveCouponTTL)
				return nil
			},
			OnStop: func(_ context.Context) error {
				mem.Close()
				return nil
			},
		})
		logger.Info("インメモリのクーポンキャッシュを使用します", "ttl", cfg.Cache.ActiveCouponTTL)
		return mem, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Cache)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("Redisのクーポンキャッシュを使用します", "ttl", cfg.Cache.ActiveCouponTTL)
	return cache.NewRedisCouponCache(client, cfg.Cache.ActiveCouponTTL), nil
}
