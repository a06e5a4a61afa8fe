package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss key 不存在或已過期
var ErrCacheMiss = errors.New("cache miss")

const (
	KeyActors = "catalog:actors"
	KeyGenres = "catalog:genres"
	KeyHalls  = "catalog:halls"
	KeyPlays  = "catalog:plays"
)

func KeyPlayDetail(playID string) string {
	return fmt.Sprintf("catalog:plays:%s", playID)
}

// CatalogCache 目錄資料的讀取快取。只放不含票務衍生欄位的資料：
// 場次列表的 available_tickets 必須每次重算，不進快取。
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Invalidate 目錄異動後清除相關 key
	Invalidate(ctx context.Context, keys ...string) error
	// InvalidatePrefix 清除某資源底下所有 key（含詳情頁）
	InvalidatePrefix(ctx context.Context, prefix string) error
}

type CatalogCacheImpl struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) CatalogCache {
	return &CatalogCacheImpl{
		client: client,
	}
}

func (c *CatalogCacheImpl) Get(ctx context.Context, key string, dest interface{}) error {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, dest)
}

func (c *CatalogCacheImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *CatalogCacheImpl) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *CatalogCacheImpl) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
