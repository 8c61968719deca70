package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"openelev/internal/config"
	"openelev/internal/enrich"
	"openelev/internal/input"
	"openelev/internal/output"
	"openelev/internal/storage"
)

// Options are the command-line flags for a one-shot enrichment run. Flags
// override the file/env configuration.
type Options struct {
	Input     string `short:"i" long:"input"      env:"INPUT_FILE"  description:"Path to the CSV or GeoJSON input file" required:"true"`
	Format    string `short:"f" long:"format"     env:"INPUT_FORMAT" description:"Input format (csv or geojson); detected from the file name when omitted" choice:"csv" choice:"geojson"`
	OutDir    string `short:"o" long:"out-dir"    env:"OUTPUT_DIR"  description:"Directory for the saved CSV and GeoJSON outputs"`
	APIURL    string `short:"u" long:"api-url"    env:"API_URL"     description:"Elevation lookup endpoint"`
	BatchSize int    `short:"b" long:"batch-size" env:"BATCH_SIZE"  description:"Maximum coordinate pairs per lookup request"`
	Archive   bool   `short:"a" long:"archive"    description:"Also upload the outputs to the configured S3-compatible store"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyOverrides(cfg, opts)

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, opts, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.OutDir != "" {
		cfg.Output.Dir = opts.OutDir
	}
	if opts.APIURL != "" {
		cfg.Elevation.APIURL = opts.APIURL
	}
	if opts.BatchSize > 0 {
		cfg.Elevation.BatchSize = opts.BatchSize
	}
}

func run(cfg *config.Config, opts Options, logger *slog.Logger) error {
	file, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	format := input.Format(opts.Format)
	if format == "" {
		format = input.DetectFormat(opts.Input)
	}

	records, err := input.Read(file, format)
	if err != nil {
		return err
	}
	logger.Info("loaded input", "file", opts.Input, "format", format, "records", len(records))

	service := enrich.NewService(cfg, logger)
	result, err := service.Enrich(context.Background(), records)
	if err != nil {
		return err
	}

	csvData, err := output.EncodeCSV(result)
	if err != nil {
		return err
	}
	geojsonData, err := output.EncodeGeoJSON(result)
	if err != nil {
		return err
	}

	csvPath, geojsonPath, err := output.Save(cfg.Output.Dir, csvData, geojsonData, time.Now())
	if err != nil {
		return err
	}

	summary := result.Summary()
	logger.Info("saved outputs",
		"csv", csvPath,
		"geojson", geojsonPath,
		"enriched", summary.Enriched,
		"rejected", summary.Rejected,
	)
	for _, rejection := range summary.Rejections {
		logger.Warn("rejected record", "index", rejection.Index, "reason", rejection.Reason)
	}

	if opts.Archive {
		if !cfg.StorageEnabled() {
			return fmt.Errorf("archive requested but no storage endpoint configured")
		}
		archive, err := storage.NewArchiveService(cfg.Storage, logger)
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := archive.EnsureBucket(ctx); err != nil {
			return err
		}
		if err := archive.StoreArtifact(ctx, path.Base(csvPath), csvData, "text/csv"); err != nil {
			return err
		}
		if err := archive.StoreArtifact(ctx, path.Base(geojsonPath), geojsonData, "application/geo+json"); err != nil {
			return err
		}
	}

	return nil
}
