package enrich

import (
	"openelev/internal/providers/openelevation"
	"openelev/internal/types"
)

// merge joins elevation results back onto their source records. The join key
// is the point's record index: results are order-aligned with points, so
// results[i] belongs to points[i], which carries the index of its source
// record. An exact 1:1 join, no spatial matching.
func merge(records []types.Record, points []types.Point, results []openelevation.LookupResult, rejections []types.Rejection) *Output {
	enriched := make([]EnrichedRecord, 0, len(points))
	for i, point := range points {
		enriched = append(enriched, EnrichedRecord{
			Record:    records[point.Index],
			Point:     point,
			Elevation: types.NewElevationFromMeters(results[i].Elevation),
		})
	}

	return &Output{
		Source:     records,
		Enriched:   enriched,
		Rejections: rejections,
	}
}
