package classify

import (
	"context"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

// Generator is the blocking generation contract used by the classifier.
type Generator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) (domain.GenerationResult, error)
}

// Result is one routed question.
type Result struct {
	// Bucket the question was routed to.
	Bucket domain.Bucket
	// Routable is false when the classifier produced no recognizable
	// bucket label.
	Routable bool
	// Message is the grammatically corrected question for data buckets, or
	// the user-facing reply for Conversation and NoBucket.
	Message string
	// Usage holds the token counts of the classification call.
	Usage domain.StageUsage
}
