package chat

import (
	"fmt"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/metrics"
)

// tokenCounter measures prompt-equivalent token counts.
type tokenCounter interface {
	Count(text string) int
}

// Guard rejects query results too large to embed in an answer prompt.
type Guard struct {
	count  tokenCounter
	budget int
}

// NewGuard creates a result-size guard with the given token budget.
func NewGuard(count tokenCounter, budget int) *Guard {
	return &Guard{count: count, budget: budget}
}

// Count measures the token length of text with the guard's tokenizer.
func (g *Guard) Count(text string) int {
	return g.count.Count(text)
}

// Check returns ErrResultTooLarge when the serialized result exceeds the
// token budget.
func (g *Guard) Check(serialized string) error {
	n := g.count.Count(serialized)
	if n > g.budget {
		metrics.GuardTripsTotal.Inc()
		return fmt.Errorf("result is %d tokens, budget is %d: %w", n, g.budget, domain.ErrResultTooLarge)
	}
	return nil
}
