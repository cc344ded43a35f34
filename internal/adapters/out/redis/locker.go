// Package redis provides an OrderLocker shared by every service instance. A
// lock is a key set with NX and a TTL; the value is a random token so that
// only the holder can release it.
package redis

import (
	"context"
	"sync"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix         = "shiptrack:order-lock:"
	defaultRetryDelay = 20 * time.Millisecond
	releaseTimeout    = 2 * time.Second
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker implements ports.OrderLocker on top of Redis. The TTL bounds how
// long a crashed holder can block an order; it must exceed the longest
// mutation.
type Locker struct {
	client     goredis.UniversalClient
	ttl        time.Duration
	retryDelay time.Duration
	logger     *zap.Logger
}

func NewLocker(client goredis.UniversalClient, ttl time.Duration, logger *zap.Logger) *Locker {
	return &Locker{
		client:     client,
		ttl:        ttl,
		retryDelay: defaultRetryDelay,
		logger:     logger,
	}
}

// Lock polls until the key is acquired or ctx is done.
func (l *Locker) Lock(ctx context.Context, orderID kernel.UUID) (ports.Unlock, error) {
	key := keyPrefix + orderID.String()
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, errors.Wrap(err, "acquire order lock")
		}
		if ok {
			return l.unlocker(key, token), nil
		}

		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Locker) unlocker(key, token string) ports.Unlock {
	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, token) })
	}
}

// release never fails the caller: the mutation is already committed, and a
// key that could not be deleted expires with its TTL.
func (l *Locker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		l.logger.Warn("order lock release failed, waiting for ttl",
			zap.String("key", key), zap.Duration("ttl", l.ttl), zap.Error(err))
		return
	}
	if deleted == 0 {
		l.logger.Warn("order lock expired before release", zap.String("key", key))
	}
}
