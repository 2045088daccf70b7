package storage

import (
	"errors"
	"time"

	"github.com/phambaophuc/logo-compositor/internal/config"
	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"
)

var (
	ErrCacheDisabled  = errors.New("redis is not configured")
	ErrUploadDisabled = errors.New("supabase storage is not configured")
	ErrJobNotFound    = errors.New("job not found")
)

// StorageService wraps the Redis cache and Supabase bucket. Either backend
// may be absent, in which case the matching operations return
// ErrCacheDisabled or ErrUploadDisabled.
type StorageService struct {
	sbClient      *storage_go.Client
	redisClient   *redis.Client
	bucket        string
	cacheDuration time.Duration
	jobTTL        time.Duration
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	s := &StorageService{
		bucket:        cfg.Supabase.BUCKET,
		cacheDuration: cfg.Storage.CacheDuration,
		jobTTL:        cfg.Storage.JobTTL,
	}

	if cfg.Supabase.URL != "" && cfg.Supabase.BUCKET != "" {
		s.sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	if cfg.Redis.Addr != "" {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	return s, nil
}

func (s *StorageService) CacheEnabled() bool {
	return s != nil && s.redisClient != nil
}

func (s *StorageService) UploadEnabled() bool {
	return s != nil && s.sbClient != nil
}

func (s *StorageService) Close() error {
	if s.redisClient != nil {
		return s.redisClient.Close()
	}
	return nil
}
