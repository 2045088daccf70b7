package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-compositor/internal/models"
)

const statusNotConfigured = "not configured"

var errBodyTooLarge = errors.New("request body too large")

// === REQUEST PARSING ===

func (h *CombineHandler) parseCombineRequest(c *gin.Context) (*models.CombineRequest, error) {
	var req models.CombineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("request body is required")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid request body: %v", err)
	}
	return &req, nil
}

// parseErrorStatus maps a parseCombineRequest error to its HTTP status.
func parseErrorStatus(err error) int {
	if errors.Is(err, errBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// === RESPONSE HANDLING ===

func (h *CombineHandler) respondCombineError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.ErrorResponse{Error: message})
}

func (h *CombineHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// === UTILITY METHODS ===

func (h *CombineHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != statusNotConfigured {
			return "unhealthy"
		}
	}
	return "healthy"
}
