package database

import (
	"context"
	"log"
	appconfig "mecanica_workflow/internal/infrastructure/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not
// answer, so the caller can fall back to in-process locks.
func ConnectRedis(cfg appconfig.Redis) *redis.Client {
	if cfg.Addr == "" {
		log.Printf("[database][redis] REDIS_ADDR not set, distributed locks disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[database][redis] ping failed addr=%s err=%v", cfg.Addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Printf("[database][redis] connected addr=%s", cfg.Addr)
	return rdb
}
