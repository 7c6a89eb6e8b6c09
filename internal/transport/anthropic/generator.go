// Package anthropic adapts the Anthropic Messages API to the generation
// boundary, as an interchangeable alternative to the OpenAI provider.
package anthropic

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/metrics"
)

const providerName = "anthropic"

// Generator is a chat-completion backend using the Anthropic Messages API.
type Generator struct {
	client anthropic.Client
	logger *zap.Logger
}

// GeneratorConfig holds the generation provider settings.
type GeneratorConfig struct {
	APIKey  string
	BaseURL string
	Logger  *zap.Logger
}

// NewGenerator creates an Anthropic generation provider.
func NewGenerator(cfg *GeneratorConfig) *Generator {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		client: anthropic.NewClient(opts...),
		logger: cfg.Logger,
	}
}

// Name implements domain.Generator.
func (g *Generator) Name() string { return providerName }

// Generate implements domain.Generator with a single blocking completion.
func (g *Generator) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (domain.GenerationResult, error) {
	start := time.Now()

	msg, err := g.client.Messages.New(ctx, messageParams(prompt, params))
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues(providerName, params.Model, string(params.Stage)).Inc()
		return domain.GenerationResult{}, fmt.Errorf("messages request failed: %v: %w", err, domain.ErrGenerationProviderError)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	in := int(msg.Usage.InputTokens)
	out := int(msg.Usage.OutputTokens)
	observe(params, start, in, out)

	return domain.GenerationResult{
		Text:         text,
		PromptTokens: in,
		OutputTokens: out,
	}, nil
}

// GenerateStream implements domain.Generator. Text deltas are pushed in the
// order the provider emits them.
func (g *Generator) GenerateStream(ctx context.Context, prompt string, params domain.GenerationParams) (*domain.Stream, error) {
	upstream := g.client.Messages.NewStreaming(ctx, messageParams(prompt, params))

	start := time.Now()
	stream := domain.NewStream()
	go func() {
		for upstream.Next() {
			event := upstream.Current()
			if event.Type != "content_block_delta" {
				continue
			}
			delta := event.AsContentBlockDelta()
			if delta.Delta.Type != "text_delta" || delta.Delta.Text == "" {
				continue
			}
			if !stream.Push(ctx, delta.Delta.Text) {
				stream.Close(ctx.Err())
				return
			}
		}
		if err := upstream.Err(); err != nil {
			metrics.GenerationErrorsTotal.WithLabelValues(providerName, params.Model, string(params.Stage)).Inc()
			stream.Close(fmt.Errorf("messages stream failed: %v: %w", err, domain.ErrGenerationProviderError))
			return
		}
		observe(params, start, 0, 0)
		stream.Close(nil)
	}()

	return stream, nil
}

func messageParams(prompt string, params domain.GenerationParams) anthropic.MessageNewParams {
	p := anthropic.MessageNewParams{
		Model:     anthropic.Model(params.Model),
		MaxTokens: int64(params.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if params.Temperature > 0 {
		p.Temperature = anthropic.Float(float64(params.Temperature))
	}
	return p
}

func observe(params domain.GenerationParams, start time.Time, in, out int) {
	metrics.GenerationRequestDuration.
		WithLabelValues(providerName, params.Model, string(params.Stage)).
		Observe(time.Since(start).Seconds())
	if in > 0 {
		metrics.GenerationTokensTotal.WithLabelValues(providerName, params.Model, string(params.Stage), "input").Add(float64(in))
	}
	if out > 0 {
		metrics.GenerationTokensTotal.WithLabelValues(providerName, params.Model, string(params.Stage), "output").Add(float64(out))
	}
}
