package routes

import (
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-compositor/internal/http/handlers"
	"github.com/phambaophuc/logo-compositor/internal/services/combiner"
	"github.com/phambaophuc/logo-compositor/internal/services/placement"
	"github.com/phambaophuc/logo-compositor/internal/services/processor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := combiner.NewService(
		placement.NewCalculator(placement.DefaultDefaults()),
		processor.NewImageProcessor(1<<20),
		zap.NewNop(),
	)
	router := NewRouter(handlers.NewCombineHandler(svc, nil, nil, zap.NewNop()), zap.NewNop(), 1<<20).SetupRoutes()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodPost, "/combine", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/combine", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/jobs", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/jobs/abc", http.StatusServiceUnavailable},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCombineRejectsOversizeBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := combiner.NewService(
		placement.NewCalculator(placement.DefaultDefaults()),
		processor.NewImageProcessor(1<<20),
		zap.NewNop(),
	)
	router := NewRouter(handlers.NewCombineHandler(svc, nil, nil, zap.NewNop()), zap.NewNop(), 32).SetupRoutes()

	body := `{"baseImage":"` + strings.Repeat("A", 64) + `","logoImage":"BBB"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/combine", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request body too large")
}
