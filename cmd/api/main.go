// Comfort Census API
//
// Mood check-in service that prescribes small comforts.
//
//	@title			Comfort Census API
//	@version		1.0
//	@description	Mood and comfort check-ins, AI comfort prescriptions with a curated fallback, and community check-in counters.
//
//	@BasePath	/api
//
//	@tag.name			prescriptions
//	@tag.description	Comfort prescription generation and feedback
//
//	@tag.name			check-ins
//	@tag.description	Check-in recording and history
//
//	@tag.name			metrics
//	@tag.description	Daily community counters
//
//	@tag.name			sessions
//	@tag.description	Server-driven check-in flow
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/comfort-census/internal/api"
	"github.com/blaisecz/comfort-census/internal/api/handler"
	"github.com/blaisecz/comfort-census/internal/config"
	"github.com/blaisecz/comfort-census/internal/flow"
	"github.com/blaisecz/comfort-census/internal/langfuse"
	"github.com/blaisecz/comfort-census/internal/llm"
	"github.com/blaisecz/comfort-census/internal/prescription"
	"github.com/blaisecz/comfort-census/internal/repository"
	"github.com/blaisecz/comfort-census/internal/seed"
	"github.com/blaisecz/comfort-census/internal/service"
	"github.com/blaisecz/comfort-census/internal/telemetry"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "comfort-census-api"

func main() {
	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	// A missing API key is fatal here rather than on the first request.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database migration completed")

	checkInRepo := repository.NewCheckInRepository(db)

	if cfg.Seed {
		log.Info().Msg("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, checkInRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	langfuseCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}
	langfuseClient := langfuse.NewClient(langfuseCfg)

	systemTemplate := loadSystemTemplate(ctx, cfg, langfuseCfg)

	provider, err := llm.NewProviderFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure AI provider")
	}

	generator := llm.NewGenerator(
		provider,
		prescription.NewSchema(cfg.MaxSuggestions, cfg.MaxSuggestions),
		llm.WithSuggestionCount(cfg.MaxSuggestions),
		llm.WithSystemTemplate(systemTemplate),
		llm.WithLangfuse(langfuseClient),
	)

	prescriptionService := service.NewPrescriptionService(generator, langfuseClient, service.PrescriptionConfig{
		Timeout:    cfg.AITimeout,
		MaxRetries: cfg.AIMaxRetries,
	})
	checkInService := service.NewCheckInService(checkInRepo)

	registry, err := flow.NewRegistry(cfg.SessionCacheSize, prescriptionService, checkInService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session registry")
	}

	router := api.NewRouter(
		handler.NewPrescriptionHandler(prescriptionService),
		handler.NewCheckInHandler(checkInService),
		handler.NewMetricsHandler(checkInService),
		handler.NewSessionHandler(registry, checkInService),
		cfg.CORSAllowedOrigin,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("ai_provider", cfg.AIProvider).
			Dur("ai_timeout", cfg.AITimeout).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
		stop()
	case err := <-errCh:
		log.Error().Err(err).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info().Msg("server exited")
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if lvl == zerolog.DebugLevel {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}


// loadSystemTemplate returns the managed prompt, or "" for the built-in one.
func loadSystemTemplate(ctx context.Context, cfg *config.Config, lf langfuse.Config) string {
	if cfg.LangfusePromptName == "" && cfg.PromptCachePath == "" {
		return ""
	}

	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tmpl, err := langfuse.LoadPrompt(loadCtx, langfuse.PromptLoaderConfig{
		Config:      lf,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		SavePath:    cfg.PromptCachePath,
	})
	if err != nil {
		log.Warn().Err(err).Msg("prompt not loaded, using built-in system template")
		return ""
	}
	log.Info().Str("prompt", cfg.LangfusePromptName).Msg("loaded system template")
	return tmpl
}
