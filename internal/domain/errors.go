package domain

import "errors"

var (
	// ErrRetrievalFailed signals an exemplar index or embedding backend failure.
	ErrRetrievalFailed = errors.New("exemplar retrieval failed")
	// ErrSynthesisFailed signals that SQL generation yielded no usable query.
	ErrSynthesisFailed = errors.New("sql synthesis failed")
	// ErrExecutionFailed signals that the analytical store rejected the query.
	ErrExecutionFailed = errors.New("sql execution failed")
	// ErrResultTooLarge signals a result-size guard trip.
	ErrResultTooLarge = errors.New("query result too large")
	// ErrGenerationProviderError signals a generation backend failure.
	ErrGenerationProviderError = errors.New("generation provider error")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrInteractionNotFound signals a missing logged interaction.
	ErrInteractionNotFound = errors.New("interaction not found")
)

// Recoverable reports whether the pipeline can still produce an answer by
// rerouting to the expert path instead of failing the request.
func Recoverable(err error) bool {
	return errors.Is(err, ErrSynthesisFailed) ||
		errors.Is(err, ErrExecutionFailed) ||
		errors.Is(err, ErrResultTooLarge)
}
