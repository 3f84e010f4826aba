package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultClientName = "content-api"
)

// Config selects the Redis instance backing the ownership cache.
type Config struct {
	Addr       string
	DB         int
	ClientName string
	Timeout    time.Duration
}

// Connect opens the ownership cache client. The connection is named via
// CLIENT SETNAME so it can be told apart in CLIENT LIST.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	name := cfg.ClientName
	if name == "" {
		name = defaultClientName
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		ClientName:  name,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ownership cache ping: %w", err)
	}
	return client, nil
}
