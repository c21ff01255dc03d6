package components

import (
	"log/slog"

	"salon-booking/internal/infra/memory"
	"salon-booking/internal/infra/redislock"
	"salon-booking/internal/infra/sessionstore"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/keylock"
	"salon-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisSessionModule needs a *redis.Client in the graph. Sessions and the per-identifier
// lock then hold across every API replica.
var RedisSessionModule = fx.Module("session/redis",
	fx.Provide(
		NewRedisSessionStore,
		NewRedisLocker,
	),
)

var MemorySessionModule = fx.Module("session/memory",
	fx.Provide(
		func(clk clock.Clock) commands.SessionStore {
			return memory.NewSessionStore(clk)
		},
		func() keylock.Locker {
			return keylock.NewLocal()
		},
	),
)

func NewRedisSessionStore(client *redis.Client, cfg config.Config) commands.SessionStore {
	return sessionstore.NewRedisStore(client, cfg.Redis.KeyPrefix)
}

func NewRedisLocker(client *redis.Client, cfg config.Config, logger *slog.Logger) keylock.Locker {
	return redislock.New(client, cfg.Redis.KeyPrefix, logger)
}
