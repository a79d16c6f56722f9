package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
)

type healthService struct {
	pinger store.Pinger

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Check reports whether the database answers a ping.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
