// Package redis caches the active menu so the customer read path does
// not hit postgres on every page load. Admin writes invalidate the key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"marmitaria/internal/models"
)

const activeMenuKey = "menu:active"

// ErrCacheMiss is returned when no cached menu exists.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) SetActiveMenu(menu *models.Menu, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}
	return c.rdb.Set(ctx, activeMenuKey, jsonData, ttl).Err()
}

func (c *Client) GetActiveMenu() (*models.Menu, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, activeMenuKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached menu: %w", err)
	}

	var menu models.Menu
	if err := json.Unmarshal([]byte(val), &menu); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached menu: %w", err)
	}
	return &menu, nil
}

func (c *Client) InvalidateActiveMenu() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, activeMenuKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
