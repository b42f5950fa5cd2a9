package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
)

const (
	KeyActiveCategories  = "category:active"
	KeyPopularCategories = "category:popular:%d"

	categoryCacheTTL = 5 * time.Minute
)

type categoryCache struct {
	client *redis.Client
}

var _ domain.CategoryCache = (*categoryCache)(nil)

func NewCategoryCache(client *redis.Client) *categoryCache {
	return &categoryCache{
		client,
	}
}

func (c *categoryCache) GetActive(ctx context.Context) ([]domain.Category, error) {
	return c.getList(ctx, KeyActiveCategories)
}

func (c *categoryCache) SetActive(ctx context.Context, categories []domain.Category) error {
	return c.setList(ctx, KeyActiveCategories, categories)
}

func (c *categoryCache) GetPopular(ctx context.Context, limit int) ([]domain.Category, error) {
	return c.getList(ctx, fmt.Sprintf(KeyPopularCategories, limit))
}

func (c *categoryCache) SetPopular(ctx context.Context, limit int, categories []domain.Category) error {
	return c.setList(ctx, fmt.Sprintf(KeyPopularCategories, limit), categories)
}

func (c *categoryCache) Invalidate(ctx context.Context) error {
	keys := []string{KeyActiveCategories}

	iter := c.client.Scan(ctx, 0, "category:popular:*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	return c.client.Del(ctx, keys...).Err()
}

func (c *categoryCache) getList(ctx context.Context, key string) ([]domain.Category, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var res []domain.Category
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *categoryCache) setList(ctx context.Context, key string, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, categoryCacheTTL).Err()
}
