package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	tokenKeyPrefix = "token:"
)

// ErrTokenNotFound is returned when a session has no stored token
var ErrTokenNotFound = errors.New("token not found")

// Config holds configuration for the Redis token repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed token repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func tokenKey(sessionID string) string {
	return fmt.Sprintf("%s%s", tokenKeyPrefix, sessionID)
}

// SaveToken stores the token with no expiry
func (r *redisRepository) SaveToken(ctx context.Context, input *SaveTokenInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if err := r.client.Set(ctx, tokenKey(input.SessionID), input.Token, 0).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// GetToken retrieves a session's token from Redis
func (r *redisRepository) GetToken(ctx context.Context, input *GetTokenInput) (string, error) {
	if input == nil || input.SessionID == "" {
		return "", errors.New("input and session ID cannot be empty")
	}

	value, err := r.client.Get(ctx, tokenKey(input.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return value, nil
}

// DeleteToken removes a session's token; deleting a missing token is not an error
func (r *redisRepository) DeleteToken(ctx context.Context, input *DeleteTokenInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if err := r.client.Del(ctx, tokenKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
