// Generates one prescription against the configured AI provider and prints
// it, so provider credentials and the schema contract can be checked by hand.
// Usage: go run ./scripts/prescription-smoke -mood tired -comfort stillness
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/comfort-census/internal/config"
	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/langfuse"
	"github.com/blaisecz/comfort-census/internal/llm"
	"github.com/blaisecz/comfort-census/internal/prescription"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mood := flag.String("mood", string(domain.MoodTired), "mood: energized, calm, neutral, tired")
	comfort := flag.String("comfort", string(domain.ComfortStillness), "comfort: warmth, stillness, distraction")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	m, c := domain.MoodState(*mood), domain.ComfortType(*comfort)
	if !m.Valid() || !c.Valid() {
		log.Fatal().Str("mood", *mood).Str("comfort", *comfort).Msg("unknown mood or comfort")
	}

	provider, err := llm.NewProviderFromConfig(cfg)
	if err != nil || provider == nil {
		log.Fatal().Err(err).Str("provider", cfg.AIProvider).Msg("no AI provider configured")
	}
	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})
	schema := prescription.NewSchema(cfg.MaxSuggestions, cfg.MaxSuggestions)
	generator := llm.NewGenerator(provider, schema,
		llm.WithSuggestionCount(cfg.MaxSuggestions),
		llm.WithLangfuse(lf),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AITimeout)
	defer cancel()

	fmt.Printf("=== %s: %s / %s ===\n", provider.Name(), m, c)
	start := time.Now()
	rec, err := generator.Generate(ctx, m, c)
	if err != nil {
		log.Fatal().Err(err).Dur("elapsed", time.Since(start)).Msg("generation failed")
	}

	out, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(out))
	fmt.Printf("generated in %s\n", time.Since(start).Round(time.Millisecond))

	if lf.IsEnabled() {
		// Trace delivery is asynchronous.
		time.Sleep(2 * time.Second)
		fmt.Printf("trace sent to %s\n", cfg.LangfuseBaseURL)
	}
}
