package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-blog/internal/logger"
)

// SessionTokenSource is the durable token storage behind the cache.
type SessionTokenSource interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, key string) (string, error)
	GetUserID(ctx context.Context, key string) (uuid.UUID, error)
	GetKey(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) (string, error)
}

// SessionTokenCacheRepository caches token to user id lookups in Redis.
// Redis failures degrade to the source and are only logged.
type SessionTokenCacheRepository struct {
	client *redis.Client
	source SessionTokenSource
	exp    time.Duration
}

// NewSessionTokenCacheRepository wraps source with a Redis cache entry per token living for expiration.
func NewSessionTokenCacheRepository(client *redis.Client, source SessionTokenSource, expiration time.Duration) *SessionTokenCacheRepository {
	return &SessionTokenCacheRepository{
		client: client,
		source: source,
		exp:    expiration,
	}
}

func sessionKey(token string) string {
	return "session_token:" + token
}

// GetOrCreate delegates to the source and warms the cache with the resulting token.
func (r *SessionTokenCacheRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	stored, err := r.source.GetOrCreate(ctx, userID, key)
	if err != nil {
		return "", err
	}
	r.set(ctx, stored, userID)
	return stored, nil
}

// GetUserID serves from Redis and falls back to the source on a miss.
func (r *SessionTokenCacheRepository) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.client.Get(ctx, sessionKey(token)).Result()
	switch {
	case err == nil:
		if userID, parseErr := uuid.Parse(val); parseErr == nil {
			return userID, nil
		}
		logger.Log.Warnw("corrupt session cache entry", "value", val)
	case errors.Is(err, redis.Nil):
	default:
		logger.Log.Errorw("session cache read failed", "error", err)
	}

	userID, err := r.source.GetUserID(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	r.set(ctx, token, userID)
	return userID, nil
}

// Revoke evicts the user's token from the cache, then deletes it from the source.
// A failed eviction leaves the token stored, so it is never revoked in Postgres while still cached.
func (r *SessionTokenCacheRepository) Revoke(ctx context.Context, userID uuid.UUID) error {
	token, err := r.source.GetKey(ctx, userID)
	if err != nil {
		return err
	}

	if err := r.evict(ctx, token); err != nil {
		return fmt.Errorf("evict session token: %w", err)
	}

	if _, err := r.source.Delete(ctx, userID); err != nil {
		return err
	}

	// a lookup between eviction and delete may have cached the token again
	if err := r.evict(ctx, token); err != nil {
		return fmt.Errorf("evict session token: %w", err)
	}
	return nil
}

func (r *SessionTokenCacheRepository) evict(ctx context.Context, token string) error {
	err := r.client.Del(ctx, sessionKey(token)).Err()
	logger.Log.Infow("session cache evict",
		"key", "session_token:***",
		"error", err,
	)
	return err
}

func (r *SessionTokenCacheRepository) set(ctx context.Context, token string, userID uuid.UUID) {
	err := r.client.Set(ctx, sessionKey(token), userID.String(), r.exp).Err()
	logger.Log.Infow("session cache set",
		"key", "session_token:***",
		"user_id", userID,
		"error", err,
	)
}
