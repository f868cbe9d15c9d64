// Package dashcache caches computed dashboard stats in Redis. The cache
// is strictly fail-open: any Redis problem degrades to a direct compute.
package dashcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/praxisapp/praxis/internal/core/dashboard"
	"github.com/redis/go-redis/v9"
)

const (
	statsKey = "dashboard:stats"
	lockKey  = "dashboard:stats:lock"
)

type Cache struct {
	log *slog.Logger
	rdb *redis.Client
	rs  *redsync.Redsync
	ttl time.Duration
}

func New(log *slog.Logger, rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		log: log,
		rdb: rdb,
		rs:  redsync.New(goredis.NewPool(rdb)),
		ttl: ttl,
	}
}

// Stats returns the cached snapshot when fresh. On a miss a distributed
// mutex serializes the recompute so concurrent dashboard reads don't
// stampede the database: whoever loses the lock race finds the snapshot
// already filled on the re-check.
func (c *Cache) Stats(ctx context.Context, compute func(context.Context) (dashboard.Stats, error)) (dashboard.Stats, error) {
	if s, ok := c.get(ctx); ok {
		return s, nil
	}

	mu := c.rs.NewMutex(lockKey, redsync.WithExpiry(c.ttl))
	if err := mu.LockContext(ctx); err != nil {
		c.log.Error("dashboard cache lock", "ERROR", err)
		return compute(ctx)
	}
	defer func() {
		if _, err := mu.UnlockContext(ctx); err != nil {
			c.log.Error("dashboard cache unlock", "ERROR", err)
		}
	}()

	if s, ok := c.get(ctx); ok {
		return s, nil
	}

	s, err := compute(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	c.set(ctx, s)

	return s, nil
}

func (c *Cache) get(ctx context.Context) (dashboard.Stats, bool) {
	bs, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Error("dashboard cache get", "ERROR", err)
		}
		return dashboard.Stats{}, false
	}

	var s dashboard.Stats
	if err := json.Unmarshal(bs, &s); err != nil {
		c.log.Error("dashboard cache decode", "ERROR", err)
		return dashboard.Stats{}, false
	}

	return s, true
}

func (c *Cache) set(ctx context.Context, s dashboard.Stats) {
	bs, err := json.Marshal(s)
	if err != nil {
		c.log.Error("dashboard cache encode", "ERROR", err)
		return
	}
	if err := c.rdb.Set(ctx, statsKey, bs, c.ttl).Err(); err != nil {
		c.log.Error("dashboard cache set", "ERROR", err)
	}
}
