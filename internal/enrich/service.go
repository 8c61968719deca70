// Package enrich runs the elevation pipeline: extract coordinates from raw
// records, look elevations up in batches, and join the results back onto the
// records. Strictly sequential, no state shared between runs.
package enrich

import (
	"context"
	"fmt"
	"log/slog"

	"openelev/internal/config"
	"openelev/internal/extract"
	"openelev/internal/providers/openelevation"
	"openelev/internal/types"
)

// Service enriches raw input records with elevation data
type Service interface {
	// Enrich runs the full pipeline over the records. Per-record coordinate
	// problems become rejections in the output; a lookup failure aborts the
	// run with no output.
	Enrich(ctx context.Context, records []types.Record) (*Output, error)
}

// ElevationProvider defines the interface for the batched elevation lookup
type ElevationProvider interface {
	Lookup(ctx context.Context, locations []openelevation.Location, batchSize int) ([]openelevation.LookupResult, error)
}

type enrichService struct {
	provider  ElevationProvider
	batchSize int
	logger    *slog.Logger
}

// NewService creates an enrichment service backed by the Open-Elevation client
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	client := openelevation.NewClient(cfg.Elevation.APIURL, cfg.LookupTimeout(), logger)
	return NewServiceWithProvider(client, cfg.Elevation.BatchSize, logger)
}

// NewServiceWithProvider creates an enrichment service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider ElevationProvider, batchSize int, logger *slog.Logger) Service {
	if batchSize <= 0 {
		batchSize = openelevation.DefaultBatchSize
	}
	return &enrichService{
		provider:  provider,
		batchSize: batchSize,
		logger:    logger.With("component", "enrich-service"),
	}
}

func (s *enrichService) Enrich(ctx context.Context, records []types.Record) (*Output, error) {
	points, rejections := extract.Extract(records)

	s.logger.Debug("extracted coordinates",
		"records", len(records),
		"points", len(points),
		"rejections", len(rejections),
	)

	locations := make([]openelevation.Location, len(points))
	for i, p := range points {
		locations[i] = openelevation.Location{
			Latitude:  p.Coordinates.Latitude,
			Longitude: p.Coordinates.Longitude,
		}
	}

	results, err := s.provider.Lookup(ctx, locations, s.batchSize)
	if err != nil {
		s.logger.Error("elevation lookup failed", "points", len(points), "error", err)
		return nil, fmt.Errorf("failed to look up elevations: %w", err)
	}

	output := merge(records, points, results, rejections)

	s.logger.Info("enrichment run complete",
		"enriched", len(output.Enriched),
		"rejected", len(output.Rejections),
	)

	return output, nil
}
