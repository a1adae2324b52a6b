package memcache_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"uobsurvey/internal/config"
	"uobsurvey/internal/survey"
	mem "uobsurvey/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

const sessionKeyPrefix = "survey:session:"

func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, l *zap.Logger) (mem.Store[survey.Session], error) {
	switch cfg.Session.Store {
	case "", "memory":
		l.Info("using in-memory session store", zap.Duration("ttl", cfg.Session.TTL))
		return mem.NewMemoryStore[survey.Session](cfg.Session.TTL), nil
	case "redis":
		client, err := mem.NewRedisClient(context.Background(), cfg.Session.RedisURL)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(client.Close))
		l.Info("using redis session store", zap.Duration("ttl", cfg.Session.TTL))
		return mem.NewRedisStore[survey.Session](client, sessionKeyPrefix, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s. Use 'memory' or 'redis'", cfg.Session.Store)
	}
}
