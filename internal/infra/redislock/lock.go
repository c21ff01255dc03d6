package redislock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"salon-booking/internal/pkg/errs"
)

const (
	defaultTTL  = 10 * time.Second
	defaultPoll = 25 * time.Millisecond
)

// Only the holder's token may delete the key.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Client is the subset of *redis.Client the locker needs.
type Client interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// Locker serializes work per key across processes. A holder that dies loses the lock after TTL.
type Locker struct {
	redis  Client
	prefix string
	ttl    time.Duration
	poll   time.Duration
	logger *slog.Logger
}

type Option func(*Locker)

func WithTTL(ttl time.Duration) Option {
	return func(l *Locker) { l.ttl = ttl }
}

func WithPollInterval(d time.Duration) Option {
	return func(l *Locker) { l.poll = d }
}

func New(client Client, prefix string, logger *slog.Logger, opts ...Option) *Locker {
	l := &Locker{
		redis:  client,
		prefix: prefix,
		ttl:    defaultTTL,
		poll:   defaultPoll,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := l.lockKey(key)
	token := uuid.NewString()

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()
	for {
		ok, err := l.redis.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, errs.Wrapf(err, "redislock: failed to acquire %s", key)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be done; release on a fresh one.
			releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.redis, []string{lockKey}, token).Err(); err != nil {
				l.logger.Warn("redislock: release failed", "key", key, "error", err.Error())
			}
		})
	}, nil
}

func (l *Locker) lockKey(key string) string {
	if l.prefix == "" {
		return "lock:" + key
	}
	return l.prefix + ":lock:" + key
}
