package locking

import (
	"context"
	"errors"
	"log"
	"mecanica_workflow/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisLockPrefix     = "mecanica:lock:"
	redisRetryInterval  = 50 * time.Millisecond
	defaultRedisLockTTL = 10 * time.Second
)

// releaseScript deletes the key only when it still carries our token, so an
// expired lock taken over by another replica is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serialises work per key across replicas with SET NX PX.
//
// The TTL bounds how long a crashed replica can block a key; fn should
// finish well inside it.
type RedisLocker struct {
	rdb  *redis.Client
	ttl  time.Duration
	wait time.Duration
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb *redis.Client, ttl, wait time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultRedisLockTTL
	}
	return &RedisLocker{rdb: rdb, ttl: ttl, wait: wait}
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if isHeld(ctx, key) {
		return fn(ctx)
	}

	redisKey := redisLockPrefix + key
	token := uuid.NewString()
	if err := l.acquire(ctx, redisKey, token); err != nil {
		return err
	}
	defer func() {
		// The request context may already be cancelled; release must still run.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.rdb, []string{redisKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("[lock][redis] release failed key=%s err=%v", key, err)
		}
	}()

	return fn(withHeld(ctx, key))
}

func (l *RedisLocker) acquire(ctx context.Context, redisKey, token string) error {
	var deadline time.Time
	if l.wait > 0 {
		deadline = time.Now().Add(l.wait)
	}

	ticker := time.NewTicker(redisRetryInterval)
	defer ticker.Stop()
	for {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			log.Printf("[lock][redis] acquire failed key=%s err=%v", redisKey, err)
			return err
		}
		if ok {
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			log.Printf("[lock][redis] wait timeout key=%s wait=%s", redisKey, l.wait)
			return ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
