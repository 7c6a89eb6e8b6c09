package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

func testParams() domain.GenerationParams {
	return domain.GenerationParams{
		Model:       "test-model",
		Temperature: 0.5,
		MaxTokens:   256,
		Stage:       domain.StageSynthesis,
	}
}

func TestGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": "The 49ers won 12 games."},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     30,
				"completion_tokens": 8,
				"total_tokens":      38,
			},
		})
	}))
	defer server.Close()

	gen := NewGenerator(&GeneratorConfig{APIKey: "test-key", BaseURL: server.URL, Logger: zap.NewNop()})

	result, err := gen.Generate(context.Background(), "how many wins?", testParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Text != "The 49ers won 12 games." {
		t.Errorf("unexpected text: %q", result.Text)
	}
	if result.PromptTokens != 30 || result.OutputTokens != 8 {
		t.Errorf("unexpected usage: %+v", result)
	}
}

func TestGenerator_GenerateStream(t *testing.T) {
	fragments := []string{"The ", "49ers ", "won."}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for i, frag := range fragments {
			chunk := map[string]any{
				"id":     "cmpl-1",
				"object": "chat.completion.chunk",
				"model":  "test-model",
				"choices": []map[string]any{
					{"index": 0, "delta": map[string]any{"content": frag}},
				},
			}
			if i == len(fragments)-1 {
				chunk["choices"].([]map[string]any)[0]["finish_reason"] = "stop"
			}
			data, _ := json.Marshal(chunk)
			fmt.Fprintf(w, "data: %s\n\n", data)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	gen := NewGenerator(&GeneratorConfig{APIKey: "test-key", BaseURL: server.URL, Logger: zap.NewNop()})

	stream, err := gen.GenerateStream(context.Background(), "how many wins?", testParams())
	if err != nil {
		t.Fatalf("GenerateStream failed: %v", err)
	}

	var got []string
	for frag := range stream.Fragments() {
		got = append(got, frag)
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}

	if len(got) != len(fragments) {
		t.Fatalf("expected %d fragments, got %d: %v", len(fragments), len(got), got)
	}
	for i, frag := range fragments {
		if got[i] != frag {
			t.Errorf("fragment[%d] = %q, want %q", i, got[i], frag)
		}
	}
}

func TestGenerator_GenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "upstream unavailable", "type": "server_error"},
		})
	}))
	defer server.Close()

	gen := NewGenerator(&GeneratorConfig{APIKey: "test-key", BaseURL: server.URL, Logger: zap.NewNop()})

	_, err := gen.Generate(context.Background(), "how many wins?", testParams())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !errors.Is(err, domain.ErrGenerationProviderError) {
		t.Errorf("expected ErrGenerationProviderError, got %v", err)
	}
}
