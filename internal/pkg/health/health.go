package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tapea/backoffice/internal/pkg/database"
	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/nats"
)

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a new PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Ping(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a new Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NATSChecker checks NATS connection health
type NATSChecker struct {
	client *nats.Client
}

// NewNATSChecker creates a new NATS health checker
func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.IsConnected() {
		return fmt.Errorf("NATS not connected")
	}
	return nil
}

// Service runs health checks over registered dependencies
type Service struct {
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates a new health service
func NewService(zl *logger.ZapLogger) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		logger:   zl,
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// CheckResult is the outcome of one dependency check
type CheckResult struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// Report is the aggregated health report
type Report struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Time    time.Time              `json:"time"`
	Checks  map[string]CheckResult `json:"checks"`
}

// Check runs all registered checkers with a per-check timeout
func (s *Service) Check(ctx context.Context, serviceName, version string) Report {
	report := Report{
		Status:  "ok",
		Service: serviceName,
		Version: version,
		Time:    time.Now().UTC(),
		Checks:  make(map[string]CheckResult),
	}

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		start := time.Now()
		err := checker.CheckHealth(checkCtx)
		cancel()

		result := CheckResult{Status: "ok", Latency: time.Since(start).String()}
		if err != nil {
			result.Status = "unhealthy"
			result.Error = err.Error()
			report.Status = "unhealthy"
			s.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		}
		report.Checks[name] = result
	}

	return report
}

// RegisterEndpoints registers the health endpoints on the echo server
func RegisterEndpoints(e *echo.Echo, serviceName, version string, s *Service) {
	e.GET("/health", func(c echo.Context) error {
		report := s.Check(c.Request().Context(), serviceName, version)
		status := http.StatusOK
		if report.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, report)
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		report := s.Check(c.Request().Context(), serviceName, version)
		if report.Status != "ok" {
			return c.String(http.StatusServiceUnavailable, "NOT READY")
		}
		return c.String(http.StatusOK, "READY")
	})
}
