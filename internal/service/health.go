package service

import (
	"context"
	"time"

	"exusiai.dev/shufflestat/internal/pkg/bininfo"
)

type HealthStatus struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Started time.Time `json:"started"`
}

type Health struct {
	started time.Time
}

func NewHealth() *Health {
	return &Health{
		started: time.Now(),
	}
}

// Ping reports liveness. The service holds no external connections, so it only
// fails when ctx is already done.
func (s *Health) Ping(ctx context.Context) (*HealthStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &HealthStatus{
		Status:  "ok",
		Version: bininfo.Version,
		Started: s.started,
	}, nil
}
