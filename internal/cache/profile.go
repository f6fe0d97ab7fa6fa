package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
)

// ProfileCache keeps user profiles in Redis with a TTL so repeated
// profile reads skip the database.
type ProfileCache struct {
	client *redis.Client
	exp    time.Duration
}

// NewProfileCache creates a new cache instance with the given TTL.
func NewProfileCache(client *redis.Client, expiration time.Duration) *ProfileCache {
	return &ProfileCache{
		client: client,
		exp:    expiration,
	}
}

func profileKey(userID int64) string {
	return fmt.Sprintf("profile:%d", userID)
}

// Get returns the cached profile for the user, or nil on a miss.
func (c *ProfileCache) Get(ctx context.Context, userID int64) (*models.UserDB, error) {
	key := profileKey(userID)

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("failed to decode cached profile", "key", key, "error", err)
		return nil, err
	}

	return &user, nil
}

// Set stores the profile with the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, user *models.UserDB) error {
	key := profileKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = c.client.Set(ctx, key, data, c.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached profile so the next read hits the database.
func (c *ProfileCache) Invalidate(ctx context.Context, userID int64) error {
	key := profileKey(userID)
	err := c.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
