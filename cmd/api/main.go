package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"homenet/pkg/api"
	"homenet/pkg/assistant"
	"homenet/pkg/db"
	"homenet/pkg/discovery"
	"homenet/pkg/registry"

	_ "homenet/docs"
)

// @title           HomeNet Panel API
// @version         1.0
// @description     Backend for the HomeNet smart-home control panel: device inventory, automations, discovery wizard and assistant.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/homenet/homenet.db)")
	flag.Parse()

	ctx := context.Background()

	// Open the config database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("timezone", cfg.Profile.Timezone).
		Str("address", cfg.Address()).
		Msg("Configuration loaded")

	// Device and automation state is in-memory only; every start is a
	// fresh seed.
	store := registry.NewSeededStore()
	log.Info().Int("devices", store.Len()).Msg("Registry seeded")

	// Discovery is simulated; there is no real scanning protocol behind
	// the wizard.
	discoverer := discovery.NewSimulator()

	// The environment wins over the stored key so deployments can inject
	// credentials without touching the database.
	apiKey, model := "", ""
	if cfg.Assistant != nil {
		apiKey, model = cfg.Assistant.APIKey, cfg.Assistant.Model
	}
	if envKey := os.Getenv("GEMINI_API_KEY"); envKey != "" {
		apiKey = envKey
	}
	asst := assistant.NewClient(apiKey, model)
	if !asst.Configured() {
		log.Warn().Msg("No assistant API key configured, serving fallback content")
	}

	router := api.NewRouter(store, discoverer, asst)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	addr := cfg.Address()
	log.Info().Str("address", addr).Msg("Starting panel API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
