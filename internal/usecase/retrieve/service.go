// Package retrieve finds the stored exemplar closest to a question for
// one-shot grounding of SQL synthesis.
package retrieve

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/metrics"
)

// Index is the exemplar lookup contract.
type Index interface {
	Nearest(ctx context.Context, vector []float32) (domain.Exemplar, bool, error)
}

// Service embeds the question and retrieves the single nearest exemplar.
type Service struct {
	embed domain.Embedder
	index Index
}

// New creates a retrieval service.
func New(embed domain.Embedder, index Index) *Service {
	return &Service{embed: embed, index: index}
}

// Retrieve returns the best matching exemplar for the question. An empty
// index falls back to the fixed default exemplar; a backend failure is a
// retrieval failure that aborts the request.
func (s *Service) Retrieve(ctx context.Context, question string) (domain.Exemplar, domain.StageUsage, error) {
	emb, err := s.embed.Embed(ctx, question)
	if err != nil {
		metrics.ExemplarLookupsTotal.WithLabelValues("error").Inc()
		return domain.Exemplar{}, domain.StageUsage{}, fmt.Errorf("embed question: %w: %w", err, domain.ErrRetrievalFailed)
	}
	usage := domain.StageUsage{InputTokens: emb.PromptTokens}

	ex, found, err := s.index.Nearest(ctx, emb.Embedding)
	if err != nil {
		metrics.ExemplarLookupsTotal.WithLabelValues("error").Inc()
		return domain.Exemplar{}, usage, fmt.Errorf("exemplar lookup: %w: %w", err, domain.ErrRetrievalFailed)
	}
	if !found {
		metrics.ExemplarLookupsTotal.WithLabelValues("default").Inc()
		return domain.DefaultExemplar, usage, nil
	}

	metrics.ExemplarLookupsTotal.WithLabelValues("hit").Inc()
	return ex, usage, nil
}
