package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phambaophuc/logo-compositor/internal/models"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// NewJob builds a pending job for req.
func NewJob(req models.CombineRequest) *models.CombineJob {
	now := time.Now()
	return &models.CombineJob{
		ID:        uuid.New().String(),
		Request:   req,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (q *QueueService) PublishJob(ctx context.Context, job *models.CombineJob) error {
	jobBytes, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if q.jobs != nil {
		if err := q.jobs.SaveJob(ctx, job); err != nil {
			q.logger.Warn("Failed to store pending job", zap.String("job_id", job.ID), zap.Error(err))
		}
	}

	err = q.channel.Publish(
		"",          // exchange
		q.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         jobBytes,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			MessageId:    job.ID,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	q.logger.Info("Job published to queue", zap.String("job_id", job.ID))
	return nil
}
