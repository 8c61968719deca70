package output

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"openelev/internal/enrich"
)

// CollectionName is the foreign "name" member stamped on the produced
// feature collection.
const CollectionName = "open_elevation"

// EncodeGeoJSON renders the run as a feature collection: one Point feature
// per enriched record with the original fields plus elevation as properties.
// Rejected records are omitted; a feature needs valid geometry.
func EncodeGeoJSON(o *enrich.Output) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{"name": CollectionName}

	for _, er := range o.Enriched {
		coords := er.Point.Coordinates
		f := geojson.NewFeature(orb.Point{coords.Longitude, coords.Latitude})

		for _, col := range er.Record.Columns {
			if v, ok := er.Record.Fields[col]; ok {
				f.Properties[col] = v
			}
		}
		f.Properties["latitude"] = coords.Latitude
		f.Properties["longitude"] = coords.Longitude
		f.Properties["elevation"] = er.Elevation.Meters

		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode feature collection: %w", err)
	}
	return data, nil
}
