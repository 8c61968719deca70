package input

import (
	"fmt"
	"io"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"openelev/internal/types"
)

// readGeoJSON parses a GeoJSON feature collection into one record per Point
// feature. Coordinates come from the geometry ([longitude, latitude] per the
// GeoJSON convention) and are exposed as latitude/longitude columns; the
// feature's properties become the remaining columns. Features with non-Point
// geometry are skipped, matching how point-collection uploads have always
// been handled.
func readGeoJSON(r io.Reader) ([]types.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var records []types.Record
	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		columns := []string{"latitude", "longitude"}
		fields := map[string]any{
			"latitude":  point.Lat(),
			"longitude": point.Lon(),
		}

		// Property order is lost in the JSON map; sort for a stable
		// column layout.
		propNames := make([]string, 0, len(f.Properties))
		for name := range f.Properties {
			if name == "latitude" || name == "longitude" {
				continue
			}
			propNames = append(propNames, name)
		}
		sort.Strings(propNames)
		for _, name := range propNames {
			columns = append(columns, name)
			fields[name] = f.Properties[name]
		}

		records = append(records, types.NewRecord(columns, fields))
	}

	return records, nil
}
