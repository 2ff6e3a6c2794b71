package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"seller-catalog/internal/pkg/clock"
	"seller-catalog/internal/usecase/queries"
)

type memoryItem struct {
	coupons    []*queries.CouponView
	expiration time.Time
}

type MemoryCouponCache struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	epochs map[string]int64
	ttl    time.Duration
	clock  clock.Clock

	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryCouponCache(ttl time.Duration, clk clock.Clock) *MemoryCouponCache {
	return &MemoryCouponCache{
		items:  make(map[string]memoryItem),
		epochs: make(map[string]int64),
		ttl:    ttl,
		clock:  clk,
		stop:   make(chan struct{}),
	}
}

func (c *MemoryCouponCache) Get(_ context.Context, shop string, day time.Time) ([]*queries.CouponView, int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	epoch := c.epochs[shopEpochKey(shop)]
	item, found := c.items[activeCouponKey(shop, day)]
	if !found || c.clock.Now().After(item.expiration) {
		return nil, epoch, false
	}
	return append([]*queries.CouponView(nil), item.coupons...), epoch, true
}

func (c *MemoryCouponCache) Set(_ context.Context, shop string, day time.Time, epoch int64, coupons []*queries.CouponView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epochs[shopEpochKey(shop)] != epoch {
		return
	}
	c.items[activeCouponKey(shop, day)] = memoryItem{
		coupons:    append([]*queries.CouponView(nil), coupons...),
		expiration: c.clock.Now().Add(c.ttl),
	}
}

func (c *MemoryCouponCache) InvalidateShop(_ context.Context, shop string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epochs[shopEpochKey(shop)]++
	prefix := shopPrefix(shop)
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}

func (c *MemoryCouponCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// RunCleanup drops expired entries every interval until Close is called.
func (c *MemoryCouponCache) RunCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *MemoryCouponCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for key, item := range c.items {
		if now.After(item.expiration) {
			delete(c.items, key)
		}
	}
}

func (c *MemoryCouponCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}
