package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"go-docgen/internal/model"
	"go-docgen/internal/scheduler"
	"go-docgen/internal/store"
)

func main() {
	var (
		configPath      = flag.String("config", "", "YAML config file with the generation spec")
		total           = flag.Int("n", 0, "total number of documents to generate")
		outputDir       = flag.String("out", "", "output directory for generated documents")
		batchSize       = flag.Int("batch", 0, "documents per batch")
		workers         = flag.Int("workers", 0, "concurrent generation workers (0 = number of CPUs)")
		checkpointEvery = flag.Int("checkpoint-every", 0, "write a checkpoint every N batches")
		seed            = flag.Int64("seed", 0, "random seed (0 = time-based)")
		unitTimeout     = flag.String("timeout", "", "per-document timeout, e.g. 30s (empty = none)")
		dbPath          = flag.String("db", "", "SQLite path for run tracking (empty = no database)")
	)
	flag.Parse()

	spec, err := loadSpec(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	// Flags override config file values
	if *total > 0 {
		spec.TotalDocuments = *total
	}
	if *outputDir != "" {
		spec.OutputDir = *outputDir
	}
	if *batchSize > 0 {
		spec.BatchSize = *batchSize
	}
	if *workers > 0 {
		spec.Workers = *workers
	}
	if *checkpointEvery > 0 {
		spec.CheckpointEvery = *checkpointEvery
	}
	if *seed != 0 {
		spec.Seed = *seed
	}
	if *unitTimeout != "" {
		spec.UnitTimeout = *unitTimeout
	}

	if spec.TotalDocuments <= 0 {
		fmt.Fprintln(os.Stderr, "❌ Set -n or totalDocuments in the config file")
		flag.Usage()
		os.Exit(1)
	}

	if *dbPath != "" {
		if err := store.InitDB(*dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to open database: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New().String()
	if err := store.SaveRun(runID, spec); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to save run: %v\n", err)
		os.Exit(1)
	}

	rep, err := scheduler.Run(ctx, runID, spec)
	if err != nil {
		store.SaveRunError(runID, err)
		store.UpdateRunStatus(runID, "failed")
		fmt.Fprintf(os.Stderr, "❌ Generation failed: %v\n", err)
		os.Exit(1)
	}
	store.UpdateRunStatus(runID, "completed")

	fmt.Printf("✅ Generated %d documents in %.2f seconds\n", rep.SuccessCount, rep.ElapsedSeconds)
	fmt.Printf("📊 Average: %.2f documents per second\n", rep.DocumentsPerSecond)
	if rep.FailedCount > 0 {
		fmt.Printf("⚠️  %d documents failed\n", rep.FailedCount)
	}
}

// loadSpec reads the generation spec from a YAML file, or returns a zero
// spec (defaults applied later) when no config file is given.
func loadSpec(path string) (model.GenerationJobSpec, error) {
	var spec model.GenerationJobSpec
	if path == "" {
		return spec, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("failed to parse config file: %w", err)
	}
	return spec, nil
}
