// Package main is the entry point for minesweeper.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/minesweeper/internal/cli"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

func main() {
	// Not fatal, env vars might be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	enabled := setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{Enabled: enabled})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		shutdown = func(context.Context) error { return nil }
	}

	code := 0
	if err := cli.Execute(ctx); err != nil {
		code = 1
	}

	if err := shutdown(ctx); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
	os.Exit(code)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
// It reports whether export should be enabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("MINESWEEPER_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("MINESWEEPER_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = telemetry.ServiceName
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	// Built here because .env files may hold an unexpanded variable reference.
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
