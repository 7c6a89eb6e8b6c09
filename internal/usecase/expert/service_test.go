package expert

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

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

func TestConsult_StreamsAnswer(t *testing.T) {
	gen := &mockGenerator{fragments: []string{"The Eagles' ", "offensive line ", "is elite."}}
	svc := New(gen, domain.GenerationParams{Model: "claude-3-5-sonnet-20240620"})
	svc.now = func() time.Time { return time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC) }

	stream, err := svc.Consult(context.Background(), "How good is the Eagles offensive line?")
	if err != nil {
		t.Fatalf("Consult failed: %v", err)
	}

	text, err := stream.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if text != "The Eagles' offensive line is elite." {
		t.Errorf("unexpected answer: %q", text)
	}
	if gen.gotParams.Stage != domain.StageExpert {
		t.Errorf("expected expert stage, got %s", gen.gotParams.Stage)
	}
	for _, want := range []string{
		"How good is the Eagles offensive line?",
		"November 10, 2024",
		"expert NFL analyst",
	} {
		if !strings.Contains(gen.gotPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestConsult_ProviderError(t *testing.T) {
	gen := &mockGenerator{err: domain.ErrGenerationProviderError}
	svc := New(gen, domain.GenerationParams{Model: "claude-3-5-sonnet-20240620"})

	_, err := svc.Consult(context.Background(), "question")
	if !errors.Is(err, domain.ErrGenerationProviderError) {
		t.Errorf("expected provider error, got %v", err)
	}
}
