package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-compositor/internal/http/handlers"
	"github.com/phambaophuc/logo-compositor/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	combineHandler *handlers.CombineHandler
	logger         *zap.Logger
	maxBodySize    int64
}

func NewRouter(
	combineHandler *handlers.CombineHandler,
	logger *zap.Logger,
	maxBodySize int64,
) *Router {
	return &Router{
		combineHandler: combineHandler,
		logger:         logger,
		maxBodySize:    maxBodySize,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	requireJSON := middleware.RequireJSON(r.maxBodySize)

	router.POST("/combine", requireJSON, r.combineHandler.Combine)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.combineHandler.HealthCheck)
		v1.GET("/stats", r.combineHandler.GetStats)
		v1.POST("/combine", requireJSON, r.combineHandler.Combine)

		jobs := v1.Group("/jobs")
		{
			jobs.POST("", requireJSON, r.combineHandler.SubmitJob)
			jobs.GET("/:id", r.combineHandler.GetJob)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Logo compositor is running",
		})
	})

	return router
}
