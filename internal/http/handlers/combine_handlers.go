package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-compositor/internal/models"
	"github.com/phambaophuc/logo-compositor/internal/services/combiner"
	"github.com/phambaophuc/logo-compositor/internal/services/queue"
	"github.com/phambaophuc/logo-compositor/internal/services/storage"
	"go.uber.org/zap"
)

type Combiner interface {
	Combine(ctx context.Context, req *models.CombineRequest) (*combiner.Result, error)
}

type JobQueue interface {
	PublishJob(ctx context.Context, job *models.CombineJob) error
	GetQueueStats() (map[string]interface{}, error)
	HealthCheck() string
}

type Storage interface {
	GetJob(ctx context.Context, id string) (*models.CombineJob, error)
	GetCacheStats(ctx context.Context) (map[string]interface{}, error)
	HealthCheck(ctx context.Context) map[string]string
}

type CombineHandler struct {
	combiner Combiner
	storage  Storage
	queue    JobQueue
	logger   *zap.Logger
}

func NewCombineHandler(
	combiner Combiner,
	storage Storage,
	queue JobQueue,
	logger *zap.Logger,
) *CombineHandler {
	return &CombineHandler{
		combiner: combiner,
		storage:  storage,
		queue:    queue,
		logger:   logger,
	}
}

// === MAIN API ENDPOINTS ===

// Combine composites the logo onto the base image and returns a base64 PNG.
func (h *CombineHandler) Combine(c *gin.Context) {
	req, err := h.parseCombineRequest(c)
	if err != nil {
		h.respondCombineError(c, parseErrorStatus(err), err.Error())
		return
	}

	result, err := h.combiner.Combine(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, combiner.ErrMissingInput) {
			h.respondCombineError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Combine failed", zap.Error(err))
		h.respondCombineError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.CombineResponse{
		Success: true,
		Image:   result.Image,
		URL:     result.URL,
	})
}

// SubmitJob queues a combine request for a worker.
func (h *CombineHandler) SubmitJob(c *gin.Context) {
	if h.queue == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Job queue is not available")
		return
	}

	req, err := h.parseCombineRequest(c)
	if err != nil {
		h.respondError(c, parseErrorStatus(err), err.Error())
		return
	}

	if err := combiner.Validate(req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	job := queue.NewJob(*req)
	if err := h.queue.PublishJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to publish job", zap.String("job_id", job.ID), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to queue job")
		return
	}

	c.JSON(http.StatusAccepted, models.APIResponse{
		Success: true,
		Data: models.JobAccepted{
			JobID:  job.ID,
			Status: job.Status,
		},
	})
}

// GetJob returns the stored job record.
func (h *CombineHandler) GetJob(c *gin.Context) {
	if h.storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Job store is not available")
		return
	}

	job, err := h.storage.GetJob(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, storage.ErrJobNotFound):
		h.respondError(c, http.StatusNotFound, "Job not found")
		return
	case errors.Is(err, storage.ErrCacheDisabled):
		h.respondError(c, http.StatusServiceUnavailable, "Job store is not available")
		return
	case err != nil:
		h.logger.Error("Failed to load job", zap.String("job_id", c.Param("id")), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to load job")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// HealthCheck
func (h *CombineHandler) HealthCheck(c *gin.Context) {
	services := map[string]string{
		"queue": statusNotConfigured,
	}
	if h.queue != nil {
		services["queue"] = h.queue.HealthCheck()
	}
	if h.storage != nil {
		for k, v := range h.storage.HealthCheck(c.Request.Context()) {
			services[k] = v
		}
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

// GetStats returns queue and cache statistics
func (h *CombineHandler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"timestamp": time.Now(),
	}

	if h.queue != nil {
		queueStats, err := h.queue.GetQueueStats()
		if err != nil {
			h.logger.Error("Failed to get queue stats", zap.Error(err))
		}
		stats["queue"] = queueStats
	}

	if h.storage != nil {
		cacheStats, err := h.storage.GetCacheStats(c.Request.Context())
		if err != nil && !errors.Is(err, storage.ErrCacheDisabled) {
			h.logger.Error("Failed to get cache stats", zap.Error(err))
		}
		stats["cache"] = cacheStats
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}
