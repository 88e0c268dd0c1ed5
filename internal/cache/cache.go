package cache

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dbk/assets-ms-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetProductRating(ctx context.Context, productID string) ([]byte, error) {
	log.Printf("getting cached rating for product %q...", productID)

	val, err := c.client.Get(ctx, getCacheKey(productID, false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return val, nil
}

func (c *Cache) GetEtagProductRating(ctx context.Context, productID string) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(productID, true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}

	return val, nil
}

// SetProductRating caches the serialised rating and its etag until
// validUntil. Failures are logged; a cold cache is never an error.
func (c *Cache) SetProductRating(ctx context.Context, productID string, data []byte, validUntil time.Time) {
	log.Printf("creating cache entry for product %q rating, valid until %s...", productID, validUntil.Format(time.RFC1123))

	ttl := time.Until(validUntil)
	if err := c.client.Set(ctx, getCacheKey(productID, false), data, ttl).Err(); err != nil {
		log.Printf("redis set failed for product %q rating: %v", productID, err)
		return
	}
	etag := fmt.Sprintf("%08x", crc32.ChecksumIEEE(data))
	c.SetEtagProductRating(ctx, productID, etag, validUntil)
}

func (c *Cache) SetEtagProductRating(ctx context.Context, productID string, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, getCacheKey(productID, true), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for product %q rating etag: %v", productID, err)
	}
}

func (c *Cache) DeleteProductRating(ctx context.Context, productID string) error {
	log.Printf("deleting cache entry for product %q rating...", productID)

	keys := []string{getCacheKey(productID, false), getCacheKey(productID, true)}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(productID string, etag bool) string {
	if etag {
		return "rating:" + productID + ":etag"
	}
	return "rating:" + productID
}
