// Package expert streams a qualitative reply for questions the data
// pipeline cannot answer.
package expert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

// Generator is the streaming generation contract used by the expert path.
type Generator interface {
	GenerateStream(ctx context.Context, prompt string, params domain.GenerationParams) (*domain.Stream, error)
}

// Service answers from general football knowledge rather than the
// analytical store. It handles ExpertAnalysis questions and serves as the
// fallback when SQL synthesis, execution, or the result-size guard fails.
type Service struct {
	gen    Generator
	params domain.GenerationParams
	now    func() time.Time
}

// New creates an expert service.
func New(gen Generator, params domain.GenerationParams) *Service {
	params.Stage = domain.StageExpert
	return &Service{gen: gen, params: params, now: time.Now}
}

// Consult streams a qualitative answer to the question.
func (s *Service) Consult(ctx context.Context, question string) (*domain.Stream, error) {
	stream, err := s.gen.GenerateStream(ctx, buildPrompt(question, s.now()), s.params)
	if err != nil {
		return nil, fmt.Errorf("consult expert: %w", err)
	}
	return stream, nil
}

func buildPrompt(question string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert NFL analyst. Answer the following question from your knowledge of football: teams, players, coaching, strategy, trades, draft analysis, and historical context. Give a direct, well-reasoned answer.

The question is:

%s

The current date is %s. When a question depends on statistics you do not have exact figures for, reason qualitatively and say so rather than inventing numbers.

Format the response to look good on a chat interface. Use bullet points for lists and numbers for rankings, one item per line. Be concise and clear.
`, question, now.Format("January 2, 2006"))

	return b.String()
}
