package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gridiron/internal/config"
	dbRedis "github.com/kailas-cloud/gridiron/internal/db/redis"
	"github.com/kailas-cloud/gridiron/internal/domain"
	logpkg "github.com/kailas-cloud/gridiron/internal/logger"
	"github.com/kailas-cloud/gridiron/internal/metrics"
	analyticsrepo "github.com/kailas-cloud/gridiron/internal/repository/analytics"
	exemplarrepo "github.com/kailas-cloud/gridiron/internal/repository/exemplar"
	interactionrepo "github.com/kailas-cloud/gridiron/internal/repository/interaction"
	"github.com/kailas-cloud/gridiron/internal/tokenizer"
	anthropicGen "github.com/kailas-cloud/gridiron/internal/transport/anthropic"
	chiTransport "github.com/kailas-cloud/gridiron/internal/transport/chi"
	openaiGen "github.com/kailas-cloud/gridiron/internal/transport/openai"
	"github.com/kailas-cloud/gridiron/internal/usecase/answer"
	"github.com/kailas-cloud/gridiron/internal/usecase/chat"
	"github.com/kailas-cloud/gridiron/internal/usecase/classify"
	"github.com/kailas-cloud/gridiron/internal/usecase/expert"
	healthuc "github.com/kailas-cloud/gridiron/internal/usecase/health"
	"github.com/kailas-cloud/gridiron/internal/usecase/retrieve"
	"github.com/kailas-cloud/gridiron/internal/usecase/synthesize"
	"github.com/kailas-cloud/gridiron/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting gridiron API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("redis_addrs", cfg.Redis.Addrs),
	)

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	// Redis store: exemplar index + interaction log
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Redis.Addrs,
		Password: cfg.Redis.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create redis store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Redis.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Redis not ready", zap.Error(err))
	}
	logger.Info("Connected to redis")

	// Analytical store (read-only NFL data)
	analytics, err := analyticsrepo.Open(ctx, analyticsrepo.Config{
		DSN:          cfg.Analytics.DSN,
		MaxConns:     cfg.Analytics.MaxConns,
		QueryTimeout: time.Duration(cfg.Analytics.QueryTimeoutSec) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to connect to analytical store", zap.Error(err))
	}
	defer analytics.Close()
	logger.Info("Connected to analytical store")

	// Repositories
	exemplars := exemplarrepo.New(store, cfg.Redis.ExemplarIndex, cfg.Redis.KeyPrefix)
	if err := exemplars.EnsureIndex(ctx, cfg.Embedding.Dimensions); err != nil {
		logger.Fatal("Failed to ensure exemplar index", zap.Error(err))
	}
	interactions := interactionrepo.New(store, cfg.Redis.KeyPrefix)

	// Question embedder for exemplar retrieval
	embedder := openaiGen.NewEmbedder(&openaiGen.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Logger:     logger,
	})

	// Generation providers, created once and shared across stages
	providers := buildProviders(cfg.Generation, logger)
	stageGen := func(stage string) (domain.Generator, domain.GenerationParams) {
		sc := cfg.Generation.Stages[stage]
		return providers[sc.Provider], domain.GenerationParams{
			Model:       sc.Model,
			Temperature: sc.Temperature,
			MaxTokens:   sc.MaxTokens,
		}
	}

	// Use case services
	classifyGen, classifyParams := stageGen(config.StageClassify)
	classifySvc := classify.New(classifyGen, classifyParams)

	retrieveSvc := retrieve.New(embedder, exemplars)

	synthGen, synthParams := stageGen(config.StageSynthesis)
	synthSvc := synthesize.New(synthGen, synthParams)

	answerGen, answerParams := stageGen(config.StageAnswer)
	answerSvc := answer.New(answerGen, answerParams)

	expertGen, expertParams := stageGen(config.StageExpert)
	expertSvc := expert.New(expertGen, expertParams)

	counter, err := tokenizer.NewCounter()
	if err != nil {
		logger.Fatal("Failed to load tokenizer", zap.Error(err))
	}
	guard := chat.NewGuard(counter, cfg.Pipeline.AnswerTokenBudget)

	chatSvc := chat.New(classifySvc, retrieveSvc, synthSvc, analytics, answerSvc, expertSvc,
		interactions, guard, chat.Config{
			ExecutionRetries: cfg.Pipeline.ExecutionRetries,
			SessionHistory:   cfg.Pipeline.SessionHistory,
		})

	// Health service
	providerCheckers := make(map[string]healthuc.ProviderChecker, len(providers))
	for name, p := range providers {
		if hc, ok := p.(domain.HealthChecker); ok {
			providerCheckers[name] = hc
		}
	}
	healthSvc := healthuc.New(analytics, store, embedder, providerCheckers)

	// Create chi server
	server := chiTransport.NewServer(chatSvc, interactions, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildProviders creates one generator per configured provider. Only
// providers some stage references are constructed.
func buildProviders(cfg config.GenerationConfig, logger *zap.Logger) map[string]domain.Generator {
	needed := make(map[string]struct{})
	for _, s := range cfg.Stages {
		needed[s.Provider] = struct{}{}
	}

	providers := make(map[string]domain.Generator, len(needed))
	for name := range needed {
		pc := cfg.Providers[name]
		switch name {
		case "openai":
			providers[name] = openaiGen.NewGenerator(&openaiGen.GeneratorConfig{
				APIKey:  pc.APIKey,
				BaseURL: pc.BaseURL,
				Logger:  logger,
			})
		case "anthropic":
			providers[name] = anthropicGen.NewGenerator(&anthropicGen.GeneratorConfig{
				APIKey:  pc.APIKey,
				BaseURL: pc.BaseURL,
				Logger:  logger,
			})
		}
	}
	return providers
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
