package synthesize

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

const (
	fenceOpen  = "```sql"
	fenceClose = "```"
)

// ExtractSQL pulls the first fenced SQL block out of a raw model response.
// A response with no fenced block, or one carrying a refusal marker
// ("error" or "cannot", case-insensitive), is a synthesis failure.
// Extraction is pure: the same input always yields the same output.
func ExtractSQL(raw string) (string, error) {
	if refused(raw) {
		return "", fmt.Errorf("model declined to answer: %w", domain.ErrSynthesisFailed)
	}

	start := strings.Index(raw, fenceOpen)
	if start < 0 {
		return "", fmt.Errorf("no sql block in response: %w", domain.ErrSynthesisFailed)
	}

	rest := raw[start+len(fenceOpen):]
	end := strings.Index(rest, fenceClose)
	if end < 0 {
		return "", fmt.Errorf("unterminated sql block: %w", domain.ErrSynthesisFailed)
	}

	sql := strings.TrimSpace(rest[:end])
	if sql == "" {
		return "", fmt.Errorf("empty sql block: %w", domain.ErrSynthesisFailed)
	}

	return sql, nil
}

// refused detects the refusal markers the synthesis prompt instructs the
// model to emit for unanswerable questions.
func refused(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "error") || strings.Contains(lower, "cannot")
}
