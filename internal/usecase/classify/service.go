// Package classify routes a user question to the bucket that decides the
// rest of the pipeline, correcting its grammar along the way.
package classify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

// Service classifies questions with a single blocking generation call.
type Service struct {
	gen    Generator
	params domain.GenerationParams
	now    func() time.Time
}

// New creates a classification service.
func New(gen Generator, params domain.GenerationParams) *Service {
	params.Stage = domain.StageClassify
	return &Service{gen: gen, params: params, now: time.Now}
}

// Classify routes the question. history holds the prior turns of the
// session, oldest first, already formatted one per line.
func (s *Service) Classify(ctx context.Context, history []string, question string) (Result, error) {
	prompt := buildPrompt(history, question, s.now())

	resp, err := s.gen.Generate(ctx, prompt, s.params)
	if err != nil {
		return Result{}, fmt.Errorf("classify question: %w", err)
	}

	label, message := extractBucketAndQuestion(resp.Text)
	bucket, ok := domain.ParseBucket(label)

	return Result{
		Bucket:   bucket,
		Routable: ok,
		Message:  message,
		Usage: domain.StageUsage{
			InputTokens:  resp.PromptTokens,
			OutputTokens: resp.OutputTokens,
		},
	}, nil
}

// extractBucketAndQuestion parses the line-oriented classifier response.
// Missing labels yield empty fields.
func extractBucketAndQuestion(text string) (bucket, question string) {
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := strings.CutPrefix(line, "Bucket:"); ok {
			bucket = strings.TrimSpace(rest)
		} else if rest, ok := strings.CutPrefix(line, "Question:"); ok {
			question = strings.TrimSpace(rest)
		}
	}
	return bucket, question
}
