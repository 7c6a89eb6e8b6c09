package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

type mockGenerator struct {
	fragments []string
	err       error
	gotPrompt string
	gotParams domain.GenerationParams
}

func (m *mockGenerator) GenerateStream(ctx context.Context, prompt string, params domain.GenerationParams) (*domain.Stream, error) {
	m.gotPrompt = prompt
	m.gotParams = params
	if m.err != nil {
		return nil, m.err
	}
	stream := domain.NewStream()
	go func() {
		for _, frag := range m.fragments {
			if !stream.Push(ctx, frag) {
				stream.Close(ctx.Err())
				return
			}
		}
		stream.Close(nil)
	}()
	return stream, nil
}

func TestAnswer_StreamConcatenation(t *testing.T) {
	gen := &mockGenerator{fragments: []string{"The Ravens ", "won 13 ", "games."}}
	svc := New(gen, domain.GenerationParams{Model: "gpt-4o"})

	stream, err := svc.Answer(context.Background(), "How many games did the Ravens win?",
		`SELECT COUNT(*) FROM "teamlog"`, "count\n13")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	text, err := stream.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if text != "The Ravens won 13 games." {
		t.Errorf("unexpected answer: %q", text)
	}
	if gen.gotParams.Stage != domain.StageAnswer {
		t.Errorf("expected answer stage, got %s", gen.gotParams.Stage)
	}
}

func TestAnswer_PromptCarriesQuestionSQLAndResult(t *testing.T) {
	gen := &mockGenerator{fragments: []string{"ok"}}
	svc := New(gen, domain.GenerationParams{Model: "gpt-4o"})

	_, err := svc.Answer(context.Background(), "Who leads in passing yards?",
		`SELECT "Name" FROM playerlog`, "Name | PassingYards\nPatrick Mahomes | 375")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	for _, want := range []string{
		"Who leads in passing yards?",
		`SELECT "Name" FROM playerlog`,
		"Patrick Mahomes | 375",
		"Never order by alphabetical order",
	} {
		if !strings.Contains(gen.gotPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAnswer_ProviderError(t *testing.T) {
	gen := &mockGenerator{err: domain.ErrGenerationProviderError}
	svc := New(gen, domain.GenerationParams{Model: "gpt-4o"})

	_, err := svc.Answer(context.Background(), "q", "sql", "result")
	if !errors.Is(err, domain.ErrGenerationProviderError) {
		t.Errorf("expected provider error, got %v", err)
	}
}
