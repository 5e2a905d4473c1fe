package service

import (
	"context"

	"github.com/devjourney/journey-go/internal/dto/response"
)

// DiagnosticsService defines the interface for store diagnostics
type DiagnosticsService interface {
	// Check probes store connectivity and performs a write/read round trip.
	Check(ctx context.Context) *response.StoreTestResponse
}
