// Package answer turns a query result into a streamed natural-language
// reply.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

// Generator is the streaming generation contract used by the answerer.
type Generator interface {
	GenerateStream(ctx context.Context, prompt string, params domain.GenerationParams) (*domain.Stream, error)
}

// Service renders answers from SQL results.
type Service struct {
	gen    Generator
	params domain.GenerationParams
}

// New creates an answer service.
func New(gen Generator, params domain.GenerationParams) *Service {
	params.Stage = domain.StageAnswer
	return &Service{gen: gen, params: params}
}

// Answer streams the reply to a question given the SQL that answered it
// and the serialized result. Concatenating the stream's fragments in order
// yields the canonical answer text.
func (s *Service) Answer(ctx context.Context, question, sql, result string) (*domain.Stream, error) {
	stream, err := s.gen.GenerateStream(ctx, buildPrompt(question, sql, result), s.params)
	if err != nil {
		return nil, fmt.Errorf("stream answer: %w", err)
	}
	return stream, nil
}

func buildPrompt(question, sql, result string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a conversational sports data assistant. You will be given a user question, a sql query to answer that question, and the result of the query. Then you will answer the question as best as you can. Use the sql query to understand what the response to the sql query might entail.

This is the user question:

%s

This is the sql query:
%s

This is the result of the sql query:

%s

Please answer the question: %s

<special_instructions>
If you are given urls as part of the answer, make sure to include the proper markdown in your response to display for the user. All urls should be properly hyperlinked. For props, only bold the lines, e.g. "To Score 3 touchdowns". Add bullet points for each sportsbook's respective lines for that prop.

Never order by alphabetical order, always order by rank in terms of the statistics that are being asked of the question. Always use bullet points in the answer, do not fit multiple items on one line. If you are asked to rank things, use numbers, once again don't include multiple items in one line.
</special_instructions>

Format the response to look good on a chat interface. Make sure to be concise and clear.
`, question, sql, result, question)

	return b.String()
}
