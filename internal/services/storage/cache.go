package storage

import (
	"context"
	"crypto/md5"
	"fmt"

	"github.com/phambaophuc/logo-compositor/internal/models"
	"github.com/redis/go-redis/v9"
)

const cachePrefix = "logo_cache:"

func (s *StorageService) GetFromCache(ctx context.Context, cacheKey string) ([]byte, error) {
	if !s.CacheEnabled() {
		return nil, ErrCacheDisabled
	}

	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *StorageService) SetCache(ctx context.Context, cacheKey string, data []byte) error {
	if !s.CacheEnabled() {
		return ErrCacheDisabled
	}
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

// GenerateCacheKey hashes every field that affects the composited output.
// Upload is left out since it does not change the image.
func GenerateCacheKey(request *models.CombineRequest) string {
	hash := md5.New()

	hash.Write([]byte(fmt.Sprintf("base_%s|%s|", request.BaseImage, request.BaseImageURL)))
	hash.Write([]byte(fmt.Sprintf("logo_%s|%s|", request.LogoImage, request.LogoImageURL)))
	hash.Write([]byte(fmt.Sprintf("size_%g|position_%s|", request.LogoSize, request.Position)))
	hash.Write([]byte(fmt.Sprintf("padding_%s_%s_%s|", optional(request.Padding), optional(request.PaddingX), optional(request.PaddingY))))
	hash.Write([]byte(fmt.Sprintf("opacity_%s", optional(request.Opacity))))

	return fmt.Sprintf("%s%x", cachePrefix, hash.Sum(nil))
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func (s *StorageService) CleanupCache(ctx context.Context) error {
	if !s.CacheEnabled() {
		return ErrCacheDisabled
	}

	keys, err := s.redisClient.Keys(ctx, cachePrefix+"*").Result()
	if err != nil {
		return err
	}

	for _, key := range keys {
		ttl := s.redisClient.TTL(ctx, key).Val()
		if ttl < 0 {
			s.redisClient.Del(ctx, key)
		}
	}

	return nil
}

func (s *StorageService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	if !s.CacheEnabled() {
		return nil, ErrCacheDisabled
	}

	info, err := s.redisClient.Info(ctx, "memory").Result()
	if err != nil {
		return nil, err
	}

	dbSize, err := s.redisClient.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"db_keys": dbSize,
		"info":    info,
	}

	return stats, nil
}
