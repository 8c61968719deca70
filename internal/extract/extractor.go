// Package extract resolves heterogeneous coordinate columns into canonical
// latitude/longitude points.
package extract

import (
	"fmt"
	"strconv"

	"openelev/internal/types"
)

// aliasRule pairs the column aliases that resolve to latitude with those that
// resolve to longitude. Rules are checked in priority order per record and
// the first rule whose two sides both match wins.
type aliasRule struct {
	lat []string
	lon []string
}

// Column-name resolution policy. Northing/easting values are treated as
// already-geographic degrees: no projected-to-geographic reprojection is
// performed, so data in a projected CRS will produce wrong elevations. Known
// limitation.
var aliasRules = []aliasRule{
	{lat: []string{"latitude"}, lon: []string{"longitude"}},
	{lat: []string{"lat"}, lon: []string{"lon", "long"}},
	{lat: []string{"y"}, lon: []string{"x"}},
	{lat: []string{"northing", "northings"}, lon: []string{"easting", "eastings"}},
}

// Extract partitions records into canonical points and rejections. A record
// is rejected when no recognized coordinate column pair is present, a value
// is missing or non-numeric, or a resolved coordinate is out of geographic
// range. Rejections carry the record index and a human-readable reason;
// extraction never fails the run for a single bad record.
func Extract(records []types.Record) ([]types.Point, []types.Rejection) {
	var points []types.Point
	var rejections []types.Rejection

	for i, record := range records {
		point, err := extractOne(i, record)
		if err != nil {
			rejections = append(rejections, types.Rejection{Index: i, Reason: err.Error()})
			continue
		}
		points = append(points, point)
	}

	return points, rejections
}

func extractOne(index int, record types.Record) (types.Point, error) {
	latName, lonName, ok := resolveColumns(record)
	if !ok {
		return types.Point{}, fmt.Errorf("no recognized coordinate columns (expected latitude/longitude, lat/lon, y/x, or northing/easting)")
	}

	lat, err := numericField(record, latName)
	if err != nil {
		return types.Point{}, err
	}
	lon, err := numericField(record, lonName)
	if err != nil {
		return types.Point{}, err
	}

	if lat < -90 || lat > 90 {
		return types.Point{}, fmt.Errorf("latitude %v is outside [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return types.Point{}, fmt.Errorf("longitude %v is outside [-180, 180]", lon)
	}

	return types.NewPoint(index, lat, lon), nil
}

// resolveColumns returns the alias names of the first rule fully matched by
// the record's columns.
func resolveColumns(record types.Record) (latName, lonName string, ok bool) {
	for _, rule := range aliasRules {
		latName, latOK := firstPresent(record, rule.lat)
		lonName, lonOK := firstPresent(record, rule.lon)
		if latOK && lonOK {
			return latName, lonName, true
		}
	}
	return "", "", false
}

func firstPresent(record types.Record, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if _, ok := record.Lookup(alias); ok {
			return alias, true
		}
	}
	return "", false
}

func numericField(record types.Record, name string) (float64, error) {
	value, ok := record.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("missing %s value", name)
	}

	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("missing %s value", name)
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if v == "" {
			return 0, fmt.Errorf("missing %s value", name)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%s value %q is not numeric", name, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s value %v is not numeric", name, value)
	}
}
