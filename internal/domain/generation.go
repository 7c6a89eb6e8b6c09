package domain

import "context"

// GenerationParams selects the model and sampling settings for one call.
// Every pipeline stage carries its own params so providers stay stateless.
type GenerationParams struct {
	Model       string
	Temperature float32
	MaxTokens   int
	// Stage labels the call for logging and metrics.
	Stage Stage
}

// GenerationResult is the output of a blocking generation call.
type GenerationResult struct {
	Text         string
	PromptTokens int
	OutputTokens int
}

// Generator is a text-generation backend. Implementations must be safe for
// concurrent use; all per-request state lives in the arguments.
type Generator interface {
	// Generate performs a single blocking completion.
	Generate(ctx context.Context, prompt string, params GenerationParams) (GenerationResult, error)

	// GenerateStream starts a streaming completion and returns a Stream of
	// text fragments. The stream is closed by the producer; its Err reports
	// a mid-stream provider failure.
	GenerateStream(ctx context.Context, prompt string, params GenerationParams) (*Stream, error)

	// Name identifies the provider for logging and metrics.
	Name() string
}

// EmbeddingResult carries an embedding vector and its token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker is implemented by backends that can verify availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
