package services

import (
	"context"
	"log/slog"
	"time"
)

// HealthStatus is the payload for health and readiness checks.
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	UptimeSec float64   `json:"uptime_seconds"`
}

// HealthService reports process liveness and build information.
type HealthService struct {
	service string
	version string
	started time.Time
	logger  *slog.Logger
}

// NewHealthService creates a health service.
func NewHealthService(service, version string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		service: service,
		version: version,
		started: time.Now(),
		logger:  logger,
	}
}

// HealthCheck reports overall service health. The analyzer holds no external
// connections, so health reduces to process liveness.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "healthy",
		Service:   s.service,
		Version:   s.version,
		Timestamp: time.Now(),
		UptimeSec: time.Since(s.started).Seconds(),
	}
}

// Version returns build identification.
func (s *HealthService) Version() map[string]string {
	return map[string]string{
		"service": s.service,
		"version": s.version,
	}
}
