package storage

import (
	"context"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"
)

const statusNotConfigured = "not configured"

// HealthCheck checks Redis + Supabase
func (s *StorageService) HealthCheck(ctx context.Context) map[string]string {
	status := make(map[string]string)

	if !s.CacheEnabled() {
		status["redis"] = statusNotConfigured
	} else if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status["redis"] = "unhealthy: " + err.Error()
	} else {
		status["redis"] = "healthy"
	}

	if !s.UploadEnabled() {
		status["supabase"] = statusNotConfigured
		return status
	}

	if _, err := s.sbClient.ListFiles(s.bucket, "", storage_go.FileSearchOptions{}); err != nil {
		status["supabase"] = "unhealthy: " + fmt.Sprintf("%v", err)
	} else {
		status["supabase"] = "healthy"
	}

	return status
}
