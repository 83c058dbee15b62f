package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	StatusHealthy = "healthy"
	StatusReady   = "ready"
	StatusDown    = "unavailable"

	readinessTimeout = 2 * time.Second
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	cfg          config.Config
	dependencies map[string]Pinger
	logger       logger.Logger
	now          func() time.Time
}

// NewHealthHandler checks every named dependency on /readyz.
func NewHealthHandler(cfg config.Config, dependencies map[string]Pinger, log logger.Logger) *HealthHandler {
	return &HealthHandler{
		cfg:          cfg,
		dependencies: dependencies,
		logger:       log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": StatusHealthy, "service": ServiceName})
}

// Detailed reports static subsystem flags; it does not probe anything.
func (h *HealthHandler) Detailed(c *gin.Context) {
	c.JSON(http.StatusOK, DetailedHealthDTO{
		Status:      StatusHealthy,
		Service:     ServiceName,
		Timestamp:   h.now().Format(time.RFC3339Nano),
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		Checks: HealthChecks{
			Database:   StatusHealthy,
			Redis:      StatusHealthy,
			AIServices: StatusHealthy,
		},
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	resp := ReadinessDTO{Status: StatusReady, Service: ServiceName, Checks: map[string]string{}}
	code := http.StatusOK
	for name, dep := range h.dependencies {
		if err := dep.Ping(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = StatusDown
			resp.Status = StatusDown
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = StatusHealthy
	}
	c.JSON(code, resp)
}
