package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/observability"
)

// artifactKeyType labels cache events from this package.
const artifactKeyType = "artifact"

// Cached serves repeated requests from a cache. Cache failures are logged
// and never fail a render.
type Cached struct {
	Next  Renderer
	Cache cache.Cache
	Keyer cache.Keyer
	TTL   time.Duration

	Logger *log.Logger
}

// NewCached wraps next with c. A nil keyer uses cache.NewDefaultKeyer.
func NewCached(next Renderer, c cache.Cache, keyer cache.Keyer, ttl time.Duration, logger *log.Logger) *Cached {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Cached{Next: next, Cache: c, Keyer: keyer, TTL: ttl, Logger: logger}
}

// Render returns the cached output for req or renders and stores it.
func (c *Cached) Render(ctx context.Context, req Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	key := req.key(c.Keyer)

	data, hit, err := c.Cache.Get(ctx, key)
	switch {
	case err != nil:
		c.logger().Warn("cache read failed", "err", err)
	case hit:
		observability.Cache().OnCacheHit(ctx, artifactKeyType)
		c.logger().Debug("cache hit", "engine", req.Engine, "format", req.Format)
		return data, nil
	default:
		observability.Cache().OnCacheMiss(ctx, artifactKeyType)
	}

	out, err := c.Next.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Set(ctx, key, out, c.TTL); err != nil {
		c.logger().Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, artifactKeyType, len(out))
	}
	return out, nil
}

func (c *Cached) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

var _ Renderer = (*Cached)(nil)
