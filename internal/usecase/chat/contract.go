package chat

import (
	"context"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/usecase/classify"
)

// Classifier routes a question to its bucket.
type Classifier interface {
	Classify(ctx context.Context, history []string, question string) (classify.Result, error)
}

// Retriever finds the grounding exemplar for a question.
type Retriever interface {
	Retrieve(ctx context.Context, question string) (domain.Exemplar, domain.StageUsage, error)
}

// Synthesizer produces SQL for a routed question.
type Synthesizer interface {
	Synthesize(ctx context.Context, bucket domain.Bucket, question string, exemplar domain.Exemplar) (string, domain.StageUsage, error)
}

// Executor runs one analytical query.
type Executor interface {
	Query(ctx context.Context, sql string) (domain.Rows, error)
}

// Answerer streams the reply for an executed query.
type Answerer interface {
	Answer(ctx context.Context, question, sql, result string) (*domain.Stream, error)
}

// Expert streams a qualitative fallback answer.
type Expert interface {
	Consult(ctx context.Context, question string) (*domain.Stream, error)
}

// Recorder persists completed interactions.
type Recorder interface {
	Save(ctx context.Context, in *domain.Interaction) error
}

// Config tunes the orchestrator.
type Config struct {
	// ExecutionRetries bounds how many times a failed execution is
	// re-synthesized and re-run before falling back to the expert path.
	ExecutionRetries int
	// SessionHistory is how many past turns feed the classifier.
	SessionHistory int
}
