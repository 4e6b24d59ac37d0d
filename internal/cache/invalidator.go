package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"loadboard/internal/config"
	"loadboard/internal/logx"
)

// NewClient creates a redis client for the read-side cache.
func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr})
}

// Invalidator drops cached read models after a commit. Invalidation is
// best-effort: a failure is logged and never propagated to the caller.
type Invalidator struct {
	rdb    *redis.Client
	logger logx.Logger
}

// NewInvalidator creates a new Invalidator. A nil client disables it.
func NewInvalidator(rdb *redis.Client, logger logx.Logger) *Invalidator {
	return &Invalidator{rdb: rdb, logger: logger}
}

// Invalidate deletes the load, truck and org view keys.
func (i *Invalidator) Invalidate(ctx context.Context, loadID, truckID int64, orgIDs ...int64) {
	if i == nil || i.rdb == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("load:%d", loadID),
		fmt.Sprintf("truck:%d", truckID),
	}
	for _, org := range orgIDs {
		keys = append(keys, fmt.Sprintf("org:%d:board", org))
	}
	if err := i.rdb.Del(ctx, keys...).Err(); err != nil {
		i.logger.Warn("cache invalidation failed",
			logx.Int64("load_id", loadID),
			logx.Int64("truck_id", truckID),
			logx.Err(err),
		)
	}
}
