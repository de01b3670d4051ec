package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quicknotes/model"

	"github.com/redis/go-redis/v9"
)

// UserCache is a read-through cache for user profiles. Cached entries never
// hold the password hash. A miss is (nil, nil).
type UserCache interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
}

type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ UserCache = (*RedisUserCache)(nil)

// NewRedisUserCache connects to redisURL and verifies the connection.
func NewRedisUserCache(redisURL string, ttl time.Duration) (*RedisUserCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisUserCacheFromClient(client, ttl), nil
}

func NewRedisUserCacheFromClient(client *redis.Client, ttl time.Duration) *RedisUserCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisUserCache{client: client, ttl: ttl}
}

func userKey(userID string) string {
	return "user:" + userID
}

func (c *RedisUserCache) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	data, err := c.client.Get(ctx, userKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	var entry model.TokenUser
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}

	return &model.User{
		ID:        entry.ID,
		FullName:  entry.FullName,
		Email:     entry.Email,
		CreatedOn: entry.CreatedOn,
	}, nil
}

func (c *RedisUserCache) SetUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	data, err := json.Marshal(user.Identity())
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache user: %w", err)
	}
	return nil
}

func (c *RedisUserCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisUserCache) Close() error {
	return c.client.Close()
}
