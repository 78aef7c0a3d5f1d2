// Package main is the entry point for Overworld.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetryConfig())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// telemetryConfig builds the exporter settings. Standard OTEL_* variables
// win; otherwise a Honeycomb API key selects the Honeycomb endpoint.
func telemetryConfig() telemetry.Config {
	cfg := telemetry.Config{
		Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Headers:  telemetry.ParseHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")),
	}

	apiKey := os.Getenv("HONEYCOMB_OVERWORLD_API_KEY")
	if apiKey == "" {
		return cfg
	}
	dataset := os.Getenv("HONEYCOMB_OVERWORLD_DATASET")
	if dataset == "" {
		dataset = "overworld"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.honeycomb.io"
	}
	cfg.Headers["x-honeycomb-team"] = apiKey
	cfg.Headers["x-honeycomb-dataset"] = dataset
	log.Printf("Exporting traces to %s (dataset %s)", cfg.Endpoint, dataset)
	return cfg
}
