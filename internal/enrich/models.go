package enrich

import "openelev/internal/types"

// EnrichedRecord is one input record joined with its resolved coordinate and
// looked-up elevation. Created once per successful lookup and never mutated.
type EnrichedRecord struct {
	Record    types.Record
	Point     types.Point
	Elevation types.Elevation
}

// Output is the result of one pipeline run. Source keeps every input record
// in its original order so renderings can include rejected rows; Enriched is
// ordered by source record index.
type Output struct {
	Source     []types.Record
	Enriched   []EnrichedRecord
	Rejections []types.Rejection
}

// Summary reports the user-visible outcome of a run.
type Summary struct {
	Enriched   int               `json:"enriched"`
	Rejected   int               `json:"rejected"`
	Rejections []types.Rejection `json:"rejections,omitempty"`
}

func (o *Output) Summary() Summary {
	return Summary{
		Enriched:   len(o.Enriched),
		Rejected:   len(o.Rejections),
		Rejections: o.Rejections,
	}
}
