// internal/site/cache.go
//
// TTL cache over `site_config` (import-cycle safe).
//
// Context
// -------
// Settings are read on every request by the router and the permalink
// builder, so they are kept in memory and refreshed at most once per TTL.
// Concurrent refreshes collapse into one query through singleflight.  When
// a refresh fails after a successful load, the stale snapshot keeps serving
// and the failure is logged; only a failing first load is an error.
//
// Workflow
// --------
//  1. main constructs the cache with the config-file values as defaults.
//  2. Settings() returns the snapshot while fresh.
//  3. Otherwise one caller reloads `site_config`, overlays it on the
//     defaults, and swaps the snapshot.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package site

import (
	"context"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/singlecat/internal/metrics"
)

// loadTimeout bounds one reload.  The reload is detached from the caller's
// context, so it needs its own deadline.
const loadTimeout = 5 * time.Second

// Cache is a Provider backed by the database.  Zero value is unusable;
// construct with NewCache.
type Cache struct {
	defaults Settings
	ttl      time.Duration
	load     func(context.Context) (map[string]string, error)
	now      func() time.Time

	sfg singleflight.Group

	mu       sync.RWMutex
	current  Settings
	loadedAt time.Time
	loaded   bool
}

// NewCache returns a cache reading `site_config` from db.
func NewCache(db *sqlx.DB, defaults Settings, ttl time.Duration) *Cache {
	return &Cache{
		defaults: defaults.normalized(),
		ttl:      ttl,
		load:     func(ctx context.Context) (map[string]string, error) { return LoadConfig(ctx, db) },
		now:      time.Now,
	}
}

var _ Provider = (*Cache)(nil)

// Settings implements Provider.
func (c *Cache) Settings(ctx context.Context) (Settings, error) {
	if s, ok := c.fresh(); ok {
		return s, nil
	}

	v, err, _ := c.sfg.Do("settings", func() (any, error) {
		// Double-check after the singleflight barrier.
		if s, ok := c.fresh(); ok {
			return s, nil
		}
		// Every waiter shares this load; one caller hanging up must not
		// fail it for the rest.
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return c.reload(lctx)
	})
	if err != nil {
		return Settings{}, err
	}
	return v.(Settings), nil
}

// Invalidate forces the next Settings call to reload.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Cache) fresh() (Settings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded || c.now().Sub(c.loadedAt) > c.ttl {
		return Settings{}, false
	}
	return c.current, true
}

func (c *Cache) reload(ctx context.Context) (Settings, error) {
	kv, err := c.load(ctx)
	if err != nil {
		metrics.SettingsLoadErrorsTotal.Inc()

		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.loaded {
			return Settings{}, err
		}
		// Serve stale and retry after another TTL.
		c.loadedAt = c.now()
		zap.L().Warn("site settings reload failed, serving stale", zap.Error(err))
		return c.current, nil
	}

	s := c.defaults.overlay(kv)

	c.mu.Lock()
	c.current = s
	c.loadedAt = c.now()
	c.loaded = true
	c.mu.Unlock()

	metrics.SettingsLoadTotal.Inc()
	zap.L().Debug("site settings loaded",
		zap.String("permalink_structure", s.PermalinkStructure),
		zap.String("category_base", s.CategoryBase),
		zap.String("siteurl", s.SiteURL))
	return s, nil
}
