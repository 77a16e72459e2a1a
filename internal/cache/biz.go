package cache

import (
	"context"
	"strings"

	"github.com/mauops/mau-backend/internal/config"
	"github.com/mauops/mau-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ResolveCacheGroup struct {
	// value store pointer don't modify it

	// key: product:selector
	ResolvedUpdateCache *Cache[string, *model.ResolvedUpdate]
}

func (g *ResolveCacheGroup) GetCacheKey(elems ...string) string {
	return strings.Join(elems, ":")
}

func (g *ResolveCacheGroup) EvictAll() {
	g.ResolvedUpdateCache.EvictAll()
}

func NewResolveCacheGroup(conf *config.Config, rdb *redis.Client) *ResolveCacheGroup {
	group := &ResolveCacheGroup{
		ResolvedUpdateCache: NewCache[string, *model.ResolvedUpdate](conf.Cache.TTL),
	}
	if rdb != nil {
		subscribeCacheEvict(rdb, group)
	}
	return group
}

// subscribeCacheEvict flushes the in-process cache whenever another instance
// publishes on the evict channel, e.g. after the vendor pushes a new update.
func subscribeCacheEvict(rdb *redis.Client, group *ResolveCacheGroup) {
	var (
		logger  = zap.L()
		ctx     = context.Background()
		channel = "evict"
	)

	subscribe := rdb.Subscribe(ctx, channel)
	go func() {
		for {
			msg, err := subscribe.ReceiveMessage(ctx)
			if err != nil {
				logger.Error("failed to receive message",
					zap.Error(err),
				)
				continue
			}
			group.EvictAll()
			logger.Info("cache evict",
				zap.String("key", msg.Payload),
			)
		}
	}()
}
