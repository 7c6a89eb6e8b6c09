package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates both backing stores are down.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks across the analytical store, the
// exemplar index, and the model providers.
type Service struct {
	analytics Pinger
	index     Pinger
	embedding ProviderChecker
	providers map[string]ProviderChecker
}

// New creates a Service. embedding can be nil; providers maps provider
// names to their checkers and can be empty.
func New(analytics, index Pinger, embedding ProviderChecker, providers map[string]ProviderChecker) *Service {
	return &Service{analytics: analytics, index: index, embedding: embedding, providers: providers}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	checks["analytics"] = result(s.analytics.Ping(ctx))
	checks["index"] = result(s.index.Ping(ctx))

	if s.embedding != nil {
		checks["embedding"] = result(s.embedding.HealthCheck(ctx))
	}
	for name, p := range s.providers {
		checks["generation:"+name] = result(p.HealthCheck(ctx))
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	if checks["analytics"] == CheckError && checks["index"] == CheckError {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
