package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
)

const categoryListKey = "categories:list"

// CategoryCacheStore caches the public category listing in Redis.
type CategoryCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewCategoryCacheStore(rdb *redis.Client) *CategoryCacheStore {
	return &CategoryCacheStore{
		rdb:     rdb,
		listTTL: 30 * time.Minute,
	}
}

var _ contract.ICategoryCache = (*CategoryCacheStore)(nil)

func (c *CategoryCacheStore) GetCategories(ctx context.Context) ([]entity.Category, bool, error) {
	b, err := c.rdb.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var categories []entity.Category
	if err := json.Unmarshal(b, &categories); err != nil {
		return nil, false, nil
	}
	return categories, true, nil
}

func (c *CategoryCacheStore) SetCategories(ctx context.Context, categories []entity.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, categoryListKey, data, c.listTTL).Err()
}

func (c *CategoryCacheStore) InvalidateCategories(ctx context.Context) error {
	return c.rdb.Del(ctx, categoryListKey).Err()
}
