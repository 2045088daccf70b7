package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phambaophuc/logo-compositor/internal/models"
	"github.com/redis/go-redis/v9"
)

const jobPrefix = "logo_job:"

func jobKey(id string) string {
	return jobPrefix + id
}

// SaveJob stores the job record. Inline image payloads are dropped so the
// record stays small; the result image is kept.
func (s *StorageService) SaveJob(ctx context.Context, job *models.CombineJob) error {
	if !s.CacheEnabled() {
		return ErrCacheDisabled
	}

	record := *job
	record.Request.BaseImage = ""
	record.Request.LogoImage = ""

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return s.redisClient.Set(ctx, jobKey(job.ID), data, s.jobTTL).Err()
}

func (s *StorageService) GetJob(ctx context.Context, id string) (*models.CombineJob, error) {
	if !s.CacheEnabled() {
		return nil, ErrCacheDisabled
	}

	data, err := s.redisClient.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("job get error: %w", err)
	}

	var job models.CombineJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}
