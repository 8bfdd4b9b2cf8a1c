package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, id uuid.UUID) (User, bool, error)
	Set(ctx context.Context, u User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NopCache struct{}

func (NopCache) Get(context.Context, uuid.UUID) (User, bool, error) { return User{}, false, nil }
func (NopCache) Set(context.Context, User) error                     { return nil }
func (NopCache) Delete(context.Context, uuid.UUID) error             { return nil }

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func profileKey(id uuid.UUID) string {
	return "session:profile:" + id.String()
}

func (r *RedisCache) Get(ctx context.Context, id uuid.UUID) (User, bool, error) {
	raw, err := r.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func (r *RedisCache) Set(ctx context.Context, u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKey(u.ID), raw, r.ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, profileKey(id)).Err()
}

// NewRedisClient opens a client and pings it.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
