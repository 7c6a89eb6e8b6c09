package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/metrics"
)

const providerName = "openai"

// Generator is a chat-completion backend using the OpenAI-compatible API.
// A BaseURL override points it at any compatible provider.
type Generator struct {
	client *openai.Client
	logger *zap.Logger
}

// GeneratorConfig holds the generation provider settings.
type GeneratorConfig struct {
	APIKey  string
	BaseURL string
	Logger  *zap.Logger
}

// NewGenerator creates an OpenAI-compatible generation provider.
func NewGenerator(cfg *GeneratorConfig) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		logger: cfg.Logger,
	}
}

// Name implements domain.Generator.
func (g *Generator) Name() string { return providerName }

// Generate implements domain.Generator with a single blocking completion.
func (g *Generator) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (domain.GenerationResult, error) {
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, chatRequest(prompt, params))
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues(providerName, params.Model, string(params.Stage)).Inc()
		return domain.GenerationResult{}, parseAPIError("generation", err, domain.ErrGenerationProviderError)
	}
	if len(resp.Choices) == 0 {
		metrics.GenerationErrorsTotal.WithLabelValues(providerName, params.Model, string(params.Stage)).Inc()
		return domain.GenerationResult{}, fmt.Errorf("empty completion response: %w", domain.ErrGenerationProviderError)
	}

	observe(params, start, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return domain.GenerationResult{
		Text:         resp.Choices[0].Message.Content,
		PromptTokens: resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}

// GenerateStream implements domain.Generator. Fragments are pushed in the
// order the provider emits them; the stream closes when the provider
// finishes or the context is cancelled.
func (g *Generator) GenerateStream(ctx context.Context, prompt string, params domain.GenerationParams) (*domain.Stream, error) {
	req := chatRequest(prompt, params)
	req.Stream = true

	start := time.Now()

	upstream, err := g.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues(providerName, params.Model, string(params.Stage)).Inc()
		return nil, parseAPIError("generation stream", err, domain.ErrGenerationProviderError)
	}

	stream := domain.NewStream()
	go func() {
		defer upstream.Close()
		for {
			chunk, recvErr := upstream.Recv()
			if errors.Is(recvErr, io.EOF) {
				observe(params, start, 0, 0)
				stream.Close(nil)
				return
			}
			if recvErr != nil {
				metrics.GenerationErrorsTotal.WithLabelValues(providerName, params.Model, string(params.Stage)).Inc()
				stream.Close(parseAPIError("generation stream", recvErr, domain.ErrGenerationProviderError))
				return
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			if delta := chunk.Choices[0].Delta.Content; delta != "" {
				if !stream.Push(ctx, delta) {
					stream.Close(ctx.Err())
					return
				}
			}
		}
	}()

	return stream, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (g *Generator) HealthCheck(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

func chatRequest(prompt string, params domain.GenerationParams) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       params.Model,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
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
