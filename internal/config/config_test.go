package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP:      HTTPConfig{Port: 8080},
		Analytics: AnalyticsConfig{DSN: "postgres://localhost:5432/nfl"},
		Redis:     RedisConfig{Addrs: []string{"localhost:6379"}},
		Generation: GenerationConfig{
			Providers: map[string]ProviderConfig{
				"openai":    {APIKey: "test-key"},
				"anthropic": {APIKey: "test-key"},
			},
		},
	}
}

func TestValidate_InvalidStageProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.Stages = map[string]StageConfig{
		StageSynthesis: {Provider: "perplexity", Model: "sonar"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid stage provider")
	}

	expected := `generation.stages.synthesis.provider must be "openai" or "anthropic", got "perplexity"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_StageReferencesUnconfiguredProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.Providers = map[string]ProviderConfig{
		"openai": {APIKey: "test-key"},
	}
	cfg.Generation.Stages = map[string]StageConfig{
		StageExpert: {Provider: "anthropic", Model: "claude-3-5-sonnet-20240620"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unconfigured provider reference")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAnalyticsDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Analytics.DSN = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing analytics dsn")
	}
}

func TestValidate_MissingRedisAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Addrs = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 120 {
		t.Errorf("expected WriteTimeoutSec=120, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Redis.KeyPrefix != "gridiron:" {
		t.Errorf("expected KeyPrefix='gridiron:', got %q", cfg.Redis.KeyPrefix)
	}
	if cfg.Embedding.Model != "text-embedding-3-large" {
		t.Errorf("expected embedding model default, got %q", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimensions != 3072 {
		t.Errorf("expected Dimensions=3072, got %d", cfg.Embedding.Dimensions)
	}
	if cfg.Pipeline.AnswerTokenBudget != 5000 {
		t.Errorf("expected AnswerTokenBudget=5000, got %d", cfg.Pipeline.AnswerTokenBudget)
	}
	if cfg.Pipeline.ExecutionRetries != 2 {
		t.Errorf("expected ExecutionRetries=2, got %d", cfg.Pipeline.ExecutionRetries)
	}
	if cfg.Pipeline.SessionHistory != 6 {
		t.Errorf("expected SessionHistory=6, got %d", cfg.Pipeline.SessionHistory)
	}
}

func TestApplyDefaults_Stages(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	for _, name := range []string{StageClassify, StageSynthesis, StageAnswer, StageExpert} {
		s, ok := cfg.Generation.Stages[name]
		if !ok {
			t.Fatalf("stage %s not defaulted", name)
		}
		if s.Provider == "" || s.Model == "" {
			t.Errorf("stage %s missing provider or model: %+v", name, s)
		}
		if s.MaxTokens <= 0 {
			t.Errorf("stage %s missing max tokens: %+v", name, s)
		}
	}
	if got := cfg.Generation.Stages[StageExpert].Provider; got != "anthropic" {
		t.Errorf("expected expert provider anthropic, got %q", got)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Redis:    RedisConfig{KeyPrefix: "custom:", ReadinessTimeout: 15},
		Pipeline: PipelineConfig{AnswerTokenBudget: 8000, ExecutionRetries: 1},
		Generation: GenerationConfig{
			Stages: map[string]StageConfig{
				StageSynthesis: {Provider: "anthropic", Model: "claude-3-5-sonnet-20240620", Temperature: 0.5, MaxTokens: 4096},
			},
		},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Redis.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Redis.KeyPrefix)
	}
	if cfg.Pipeline.AnswerTokenBudget != 8000 {
		t.Errorf("expected AnswerTokenBudget=8000, got %d", cfg.Pipeline.AnswerTokenBudget)
	}
	s := cfg.Generation.Stages[StageSynthesis]
	if s.Provider != "anthropic" || s.Model != "claude-3-5-sonnet-20240620" || s.MaxTokens != 4096 {
		t.Errorf("synthesis stage overridden: %+v", s)
	}
}
