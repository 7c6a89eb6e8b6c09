package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the gridiron API configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Analytics  AnalyticsConfig  `yaml:"analytics"`
	Redis      RedisConfig      `yaml:"redis"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Generation GenerationConfig `yaml:"generation"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AnalyticsConfig holds the Postgres connection for the NFL analytical store.
type AnalyticsConfig struct {
	DSN             string `yaml:"dsn"`
	MaxConns        int    `yaml:"max_conns"`
	QueryTimeoutSec int    `yaml:"query_timeout_sec"`
}

// RedisConfig holds the exemplar index and interaction store connection.
type RedisConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	ExemplarIndex    string   `yaml:"exemplar_index"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// EmbeddingConfig holds question-embedding settings.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// GenerationConfig maps pipeline stages onto generation providers.
type GenerationConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
	Stages    map[string]StageConfig    `yaml:"stages"`
}

// ProviderConfig holds generation provider credentials.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// StageConfig selects the model for one pipeline stage.
type StageConfig struct {
	Provider    string  `yaml:"provider"` // openai, anthropic
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// PipelineConfig holds orchestration knobs.
type PipelineConfig struct {
	// AnswerTokenBudget caps the serialized query result size before the
	// request reroutes to the expert fallback.
	AnswerTokenBudget int `yaml:"answer_token_budget"`
	// ExecutionRetries bounds re-synthesize-and-execute attempts after a
	// failed query.
	ExecutionRetries int `yaml:"execution_retries"`
	// SessionHistory is how many prior turns feed the classifier.
	SessionHistory int `yaml:"session_history"`
}

// Stage names used as keys in GenerationConfig.Stages.
const (
	StageClassify  = "classify"
	StageSynthesis = "synthesis"
	StageAnswer    = "answer"
	StageExpert    = "expert"
)

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		// Answer streams stay open while the model generates.
		c.HTTP.WriteTimeoutSec = 120
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Analytics.MaxConns <= 0 {
		c.Analytics.MaxConns = 4
	}
	if c.Analytics.QueryTimeoutSec <= 0 {
		c.Analytics.QueryTimeoutSec = 30
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "gridiron:"
	}
	if c.Redis.ExemplarIndex == "" {
		c.Redis.ExemplarIndex = "gridiron:exemplar-idx"
	}
	if c.Redis.ReadinessTimeout <= 0 {
		c.Redis.ReadinessTimeout = 10
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "text-embedding-3-large"
	}
	if c.Embedding.Dimensions <= 0 {
		c.Embedding.Dimensions = 3072
	}
	if c.Generation.Stages == nil {
		c.Generation.Stages = make(map[string]StageConfig)
	}
	defaultStage := func(name string, def StageConfig) {
		s := c.Generation.Stages[name]
		if s.Provider == "" {
			s.Provider = def.Provider
		}
		if s.Model == "" {
			s.Model = def.Model
		}
		if s.Temperature == 0 {
			s.Temperature = def.Temperature
		}
		if s.MaxTokens <= 0 {
			s.MaxTokens = def.MaxTokens
		}
		c.Generation.Stages[name] = s
	}
	defaultStage(StageClassify, StageConfig{Provider: "openai", Model: "gpt-4o", Temperature: 0.3, MaxTokens: 1024})
	defaultStage(StageSynthesis, StageConfig{Provider: "openai", Model: "gpt-4o", Temperature: 0.96, MaxTokens: 2048})
	defaultStage(StageAnswer, StageConfig{Provider: "openai", Model: "gpt-4o", Temperature: 0.7, MaxTokens: 2048})
	defaultStage(StageExpert, StageConfig{Provider: "anthropic", Model: "claude-3-5-sonnet-20240620", Temperature: 0.5, MaxTokens: 2048})
	if c.Pipeline.AnswerTokenBudget <= 0 {
		c.Pipeline.AnswerTokenBudget = 5000
	}
	if c.Pipeline.ExecutionRetries <= 0 {
		c.Pipeline.ExecutionRetries = 2
	}
	if c.Pipeline.SessionHistory <= 0 {
		c.Pipeline.SessionHistory = 6
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Analytics.DSN == "" {
		return fmt.Errorf("analytics.dsn is required")
	}
	if len(c.Redis.Addrs) == 0 {
		return fmt.Errorf("redis.addrs is required")
	}
	for name, s := range c.Generation.Stages {
		switch s.Provider {
		case "openai", "anthropic":
			// ok
		default:
			return fmt.Errorf(
				"generation.stages.%s.provider must be \"openai\" or \"anthropic\", got %q",
				name, s.Provider,
			)
		}
		if _, ok := c.Generation.Providers[s.Provider]; !ok {
			return fmt.Errorf("generation.stages.%s references unconfigured provider %q", name, s.Provider)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
