package queue

import (
	"context"
	"time"

	"github.com/phambaophuc/logo-compositor/internal/models"
	"go.uber.org/zap"
)

// processJob runs the combine and records the outcome on job.
func (q *QueueService) processJob(ctx context.Context, job *models.CombineJob) {
	result, err := q.combiner.Combine(ctx, &job.Request)
	if err != nil {
		job.Status = models.StatusFailed
		job.Error = err.Error()
		q.logger.Error("Job processing failed",
			zap.String("job_id", job.ID),
			zap.Error(err))
		return
	}

	job.Status = models.StatusCompleted
	job.URL = result.URL
	job.Image = result.Image
	q.logger.Info("Job completed successfully",
		zap.String("job_id", job.ID),
		zap.Bool("cached", result.Cached))
}

func (q *QueueService) storeJobResult(ctx context.Context, job *models.CombineJob) {
	job.UpdatedAt = time.Now()

	if q.jobs == nil {
		q.logger.Info("Job result not stored, no job store",
			zap.String("job_id", job.ID),
			zap.String("status", job.Status))
		return
	}

	if err := q.jobs.SaveJob(ctx, job); err != nil {
		q.logger.Warn("Failed to store job result",
			zap.String("job_id", job.ID),
			zap.String("status", job.Status),
			zap.Error(err))
	}
}
