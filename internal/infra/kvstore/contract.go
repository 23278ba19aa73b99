package kvstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient подмножество методов *redis.Client, которое использует хранилище
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DBExecutor подмножество методов *sqlx.DB
type DBExecutor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
