package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps the record as a JSON string in redis.
type RedisStore struct {
	rdb *goredis.Client
	key string
}

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisStoreFromClient(rdb, Key), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(rdb *goredis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (Record, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return New(), nil
	}
	if err != nil {
		return New(), &PersistenceError{Op: "load", Err: err}
	}

	rec, err := Decode(data)
	if err != nil {
		return New(), &PersistenceError{Op: "load", Err: err}
	}
	return rec, nil
}

func (s *RedisStore) Save(ctx context.Context, r Record) error {
	data, err := Encode(r)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Delete removes the stored record.
func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
