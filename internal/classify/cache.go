package classify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/savia-portfolio-chat/internal/jsonx"
)

// AnswerCache is a two-tier cache for classified answers:
// - L1: in-memory Ristretto (microsecond lookups)
// - L2: optional Redis, shared across instances
// Classify is a pure function of its input, so caching by the lowercased
// message preserves byte-identical answers.
type AnswerCache struct {
	l1     *ristretto.Cache[string, []byte]
	l2     *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	metricsMu sync.Mutex
	metrics   CacheMetrics
}

// CacheMetrics tracks answer cache performance.
type CacheMetrics struct {
	L1Hits   int64
	L1Misses int64
	L2Hits   int64
	L2Misses int64
}

// NewAnswerCache creates the cache. redisClient may be nil; the cache then
// runs L1-only. maxCost caps L1 size in bytes of stored answers.
func NewAnswerCache(maxCost int64, ttl time.Duration, redisClient *redis.Client, logger *zap.Logger) (*AnswerCache, error) {
	if maxCost == 0 {
		maxCost = 1 << 20
	}
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 10_000,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	return &AnswerCache{
		l1:     cache,
		l2:     redisClient,
		ttl:    ttl,
		logger: logger.Named("answercache"),
	}, nil
}

func cacheKey(message string) string {
	return "ans:" + strings.TrimSpace(strings.ToLower(message))
}

// Get returns the cached answer for a message, checking L1 then L2.
func (c *AnswerCache) Get(ctx context.Context, message string) (Answer, bool) {
	key := cacheKey(message)

	if data, found := c.l1.Get(key); found {
		c.record(func(m *CacheMetrics) { m.L1Hits++ })
		var ans Answer
		if err := jsonx.Unmarshal(data, &ans); err == nil {
			return ans, true
		}
		c.l1.Del(key)
	}
	c.record(func(m *CacheMetrics) { m.L1Misses++ })

	if c.l2 != nil {
		data, err := c.l2.Get(ctx, key).Bytes()
		if err == nil && len(data) > 0 {
			c.record(func(m *CacheMetrics) { m.L2Hits++ })
			var ans Answer
			if err := jsonx.Unmarshal(data, &ans); err == nil {
				c.l1.SetWithTTL(key, data, int64(len(data)), c.ttl)
				return ans, true
			}
		}
		c.record(func(m *CacheMetrics) { m.L2Misses++ })
	}

	return Answer{}, false
}

// Set stores an answer in L1 and, asynchronously, in L2.
func (c *AnswerCache) Set(ctx context.Context, message string, ans Answer) {
	key := cacheKey(message)
	data, err := jsonx.Marshal(ans)
	if err != nil {
		c.logger.Warn("failed to encode answer for cache", zap.Error(err))
		return
	}

	c.l1.SetWithTTL(key, data, int64(len(data)), c.ttl)

	if c.l2 != nil {
		// The request context is canceled as soon as the handler returns;
		// the write must outlive it.
		l2ctx, cancel := detachedWriteContext(ctx)
		go func() {
			defer cancel()
			if err := c.l2.Set(l2ctx, key, data, c.ttl).Err(); err != nil {
				c.logger.Warn("failed to set L2 cache", zap.String("key", key), zap.Error(err))
			}
		}()
	}
}

const l2WriteTimeout = 5 * time.Second

// detachedWriteContext keeps the parent's values but not its cancellation,
// bounded by its own deadline.
func detachedWriteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), l2WriteTimeout)
}

// Wait blocks until buffered L1 writes are applied. Ristretto applies sets
// asynchronously; callers that need read-your-write (tests, warmup) use this.
func (c *AnswerCache) Wait() {
	c.l1.Wait()
}

// Stats returns a snapshot of cache metrics.
func (c *AnswerCache) Stats() CacheMetrics {
	c.metricsMu.Lock()
	defer c.metricsMu.Unlock()
	return c.metrics
}

func (c *AnswerCache) record(fn func(*CacheMetrics)) {
	c.metricsMu.Lock()
	fn(&c.metrics)
	c.metricsMu.Unlock()
}

// Close releases the L1 cache resources.
func (c *AnswerCache) Close() error {
	c.l1.Close()
	return nil
}

// CachedEngine fronts an Engine with an AnswerCache.
type CachedEngine struct {
	engine *Engine
	cache  *AnswerCache
}

// NewCachedEngine wraps engine with cache. cache may be nil, in which case
// every call goes straight to the engine.
func NewCachedEngine(engine *Engine, cache *AnswerCache) *CachedEngine {
	return &CachedEngine{engine: engine, cache: cache}
}

// Classify returns the cached answer when present, classifying and filling
// the cache otherwise.
func (ce *CachedEngine) Classify(ctx context.Context, message string) Answer {
	if ce.cache == nil {
		return ce.engine.Classify(message)
	}
	if ans, found := ce.cache.Get(ctx, message); found {
		return ans
	}
	ans := ce.engine.Classify(message)
	ce.cache.Set(ctx, message, ans)
	return ans
}
