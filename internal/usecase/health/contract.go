package health

import "context"

// Pinger checks backing-store availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker checks a remote provider's availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}
