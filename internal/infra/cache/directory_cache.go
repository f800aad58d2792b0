// Package cache provides a Redis read-through cache in front of the restaurant directory.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"
	"truefans/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "truefans:directory:"

// directoryCache decorates a RestaurantDirectory. Misses and Redis failures fall
// through to the wrapped directory; lookups that fail are never cached.
type directoryCache struct {
	next   repository.RestaurantDirectory
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewDirectoryCache wraps next with a Redis cache whose entries expire after ttl.
func NewDirectoryCache(next repository.RestaurantDirectory, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) repository.RestaurantDirectory {
	return &directoryCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func restaurantKey(restaurantID string) string {
	return keyPrefix + "restaurant:" + restaurantID
}

func locationKey(restaurantID, locationID string) string {
	return keyPrefix + "location:" + restaurantID + ":" + locationID
}

func listKey() string {
	return keyPrefix + "restaurants"
}

// GetRestaurant retrieves a restaurant, consulting the cache first.
func (c *directoryCache) GetRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if c.load(ctx, restaurantKey(restaurantID), &restaurant) {
		return &restaurant, nil
	}

	found, err := c.next.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, restaurantKey(restaurantID), found)

	return found, nil
}

// GetLocation retrieves a restaurant location, consulting the cache first.
func (c *directoryCache) GetLocation(ctx context.Context, restaurantID, locationID string) (*entity.RestaurantLocation, error) {
	var location entity.RestaurantLocation
	if c.load(ctx, locationKey(restaurantID, locationID), &location) {
		return &location, nil
	}

	found, err := c.next.GetLocation(ctx, restaurantID, locationID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, locationKey(restaurantID, locationID), found)

	return found, nil
}

// ListRestaurants returns every restaurant, consulting the cache first.
func (c *directoryCache) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	if c.load(ctx, listKey(), &restaurants) {
		return restaurants, nil
	}

	found, err := c.next.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, listKey(), found)

	return found, nil
}

func (c *directoryCache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Directory cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.WarnContext(ctx, "Directory cache entry is corrupt", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (c *directoryCache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Directory cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
