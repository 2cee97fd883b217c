package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"revenue-metrics/internal/config"
	"revenue-metrics/internal/gateway"
	"revenue-metrics/internal/logger"
	"revenue-metrics/internal/metrics"
	"revenue-metrics/internal/normalizer"
	"revenue-metrics/internal/usecase"
)

func main() {
	// Define command-line flags
	exportFile := flag.String("file", "", "Path or gs://bucket/object of the billing export CSV (required)")
	nowStr := flag.String("now", "", "Reference date for all period calculations (YYYY-MM-DD, default today in UTC)")
	configPath := flag.String("config", "", "Path to a config file (default: arrmetrics.yaml if present)")
	flag.Parse()

	if *exportFile == "" {
		fmt.Fprintln(os.Stderr, "Error: the -file flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}

	// The shell is the only place that reads the wall clock.
	now := time.Now().UTC()
	if *nowStr != "" {
		now, err = time.Parse(time.DateOnly, *nowStr)
		if err != nil {
			log.Fatal().Err(err).Str("now", *nowStr).Msg("Error parsing reference date")
		}
	}

	// --- Dependency Injection (Wiring the application) ---
	exportRepo := gateway.NewCSVExportRepository()
	analyticsUseCase := usecase.NewAnalyticsUseCase(exportRepo, usecase.Options{
		Normalizer: normalizer.Options{
			CentsThreshold:  cfg.Normalizer.CentsThreshold,
			DefaultCurrency: cfg.Normalizer.DefaultCurrency,
		},
		Metrics: metrics.Options{Parallel: cfg.Engine.Parallel},
	})

	// --- Execute the Usecase ---
	ctx := logger.WithContext(context.Background(), log)
	report, err := analyticsUseCase.Process(ctx, *exportFile, now)
	if err != nil {
		log.Fatal().Err(err).Str("file", *exportFile).Msg("Processing failed")
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate JSON report")
	}

	fmt.Println(string(output))
}
