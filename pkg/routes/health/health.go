package health

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/juniper/pkg/database"
)

// Checker reports service health. The database is required; redis is
// optional and only checked when configured.
type Checker struct {
	db        database.DB
	redis     interface{ Ping() error }
	version   string
	startTime time.Time
	ready     atomic.Bool
}

// NewChecker creates a new health checker
func NewChecker(db database.DB, redis interface{ Ping() error }, version string) *Checker {
	return &Checker{
		db:        db,
		redis:     redis,
		version:   version,
		startTime: time.Now(),
	}
}

// SetReady sets the readiness state
func (c *Checker) SetReady(ready bool) {
	c.ready.Store(ready)
}

// Register registers health check endpoints
func (c *Checker) Register(e *echo.Echo) {
	e.GET("/api/v1/health", c.Health)
	e.GET("/api/v1/health/live", c.Live)
	e.GET("/api/v1/health/ready", c.Ready)
}

// Status is the health check response
type Status struct {
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	Uptime     string            `json:"uptime"`
	Checks     map[string]string `json:"checks"`
	ReportedAt time.Time         `json:"reported_at"`
}

// Health returns the overall health status
func (c *Checker) Health(ectx echo.Context) error {
	status := &Status{
		Status:     "healthy",
		Version:    c.version,
		Uptime:     time.Since(c.startTime).Round(time.Second).String(),
		Checks:     make(map[string]string),
		ReportedAt: time.Now(),
	}

	if err := c.db.PingContext(ectx.Request().Context()); err != nil {
		status.Status = "unhealthy"
		status.Checks["database"] = err.Error()
	} else {
		status.Checks["database"] = "healthy"
	}

	if c.redis != nil {
		if err := c.redis.Ping(); err != nil {
			status.Status = "unhealthy"
			status.Checks["redis"] = err.Error()
		} else {
			status.Checks["redis"] = "healthy"
		}
	}

	httpStatus := http.StatusOK
	if status.Status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	return ectx.JSON(httpStatus, status)
}

// Live returns the liveness status
func (c *Checker) Live(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready returns the readiness status
func (c *Checker) Ready(ectx echo.Context) error {
	if c.ready.Load() {
		return ectx.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
	return ectx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
}
