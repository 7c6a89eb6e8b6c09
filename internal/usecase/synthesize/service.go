// Package synthesize turns a routed question and its grounding exemplar
// into one executable SQL query.
package synthesize

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

// Generator is the blocking generation contract used by the synthesizer.
type Generator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) (domain.GenerationResult, error)
}

// Service generates SQL for data buckets. One templated prompt serves all
// buckets; the per-bucket spec table supplies catalogs and rules.
type Service struct {
	gen    Generator
	params domain.GenerationParams
	now    func() time.Time
}

// New creates a synthesis service.
func New(gen Generator, params domain.GenerationParams) *Service {
	params.Stage = domain.StageSynthesis
	return &Service{gen: gen, params: params, now: time.Now}
}

// Synthesize produces the SQL query answering the question for the given
// bucket. Terminal buckets have no synthesis strategy and are rejected.
func (s *Service) Synthesize(ctx context.Context, bucket domain.Bucket, question string, exemplar domain.Exemplar) (string, domain.StageUsage, error) {
	spec, ok := bucketSpecs[bucket]
	if !ok {
		return "", domain.StageUsage{}, fmt.Errorf("bucket %s has no synthesis strategy: %w", bucket, domain.ErrSynthesisFailed)
	}

	prompt := buildPrompt(spec, question, exemplar, s.now())

	resp, err := s.gen.Generate(ctx, prompt, s.params)
	if err != nil {
		return "", domain.StageUsage{}, fmt.Errorf("generate sql: %w", err)
	}
	usage := domain.StageUsage{InputTokens: resp.PromptTokens, OutputTokens: resp.OutputTokens}

	sql, err := ExtractSQL(resp.Text)
	if err != nil {
		return "", usage, err
	}

	return sql, usage, nil
}
