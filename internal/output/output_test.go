package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"openelev/internal/enrich"
	"openelev/internal/extract"
	"openelev/internal/input"
	"openelev/internal/types"
)

func record(pairs ...any) types.Record {
	var columns []string
	fields := make(map[string]any)
	for i := 0; i < len(pairs); i += 2 {
		name := pairs[i].(string)
		columns = append(columns, name)
		fields[name] = pairs[i+1]
	}
	return types.NewRecord(columns, fields)
}

// testOutput builds the run output for the canonical three-record scenario:
// two enriched records and one rejection.
func testOutput() *enrich.Output {
	source := []types.Record{
		record("name", "first", "lat", "10", "lon", "20"),
		record("name", "second", "latitude", "-5", "longitude", "170"),
		record("name", "third", "x", "1"),
	}
	return &enrich.Output{
		Source: source,
		Enriched: []enrich.EnrichedRecord{
			{Record: source[0], Point: types.NewPoint(0, 10, 20), Elevation: types.NewElevationFromMeters(1200)},
			{Record: source[1], Point: types.NewPoint(1, -5, 170), Elevation: types.NewElevationFromMeters(33.5)},
		},
		Rejections: []types.Rejection{
			{Index: 2, Reason: "no recognized coordinate columns"},
		},
	}
}

func TestEncodeCSV(t *testing.T) {
	data, err := EncodeCSV(testOutput())
	if err != nil {
		t.Fatalf("EncodeCSV() returned error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse produced CSV: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("CSV has %d rows, want header + 3", len(rows))
	}

	header := rows[0]
	wantHeader := []string{"name", "lat", "lon", "latitude", "longitude", "x", "elevation", "reason"}
	if len(header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", header, wantHeader)
	}
	for i := range header {
		if header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, header[i], wantHeader[i])
		}
	}

	byName := func(row []string, col string) string {
		for i, h := range header {
			if h == col {
				return row[i]
			}
		}
		t.Fatalf("column %q not in header", col)
		return ""
	}

	// Row i corresponds to input record i
	if byName(rows[1], "name") != "first" || byName(rows[1], "elevation") != "1200" {
		t.Errorf("row 1 = %v, want first with elevation 1200", rows[1])
	}
	if byName(rows[2], "elevation") != "33.5" {
		t.Errorf("row 2 elevation = %q, want 33.5", byName(rows[2], "elevation"))
	}
	if byName(rows[2], "reason") != "" {
		t.Errorf("row 2 reason = %q, want empty", byName(rows[2], "reason"))
	}

	// The rejected record keeps its row: empty elevation, reason filled
	if byName(rows[3], "name") != "third" {
		t.Errorf("row 3 name = %q, want third", byName(rows[3], "name"))
	}
	if byName(rows[3], "elevation") != "" {
		t.Errorf("row 3 elevation = %q, want empty", byName(rows[3], "elevation"))
	}
	if byName(rows[3], "reason") != "no recognized coordinate columns" {
		t.Errorf("row 3 reason = %q", byName(rows[3], "reason"))
	}
}

func TestEncodeGeoJSON(t *testing.T) {
	data, err := EncodeGeoJSON(testOutput())
	if err != nil {
		t.Fatalf("EncodeGeoJSON() returned error: %v", err)
	}

	var doc struct {
		Type     string `json:"type"`
		Name     string `json:"name"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("failed to parse produced GeoJSON: %v", err)
	}

	if doc.Type != "FeatureCollection" {
		t.Errorf("type = %q, want FeatureCollection", doc.Type)
	}
	if doc.Name != "open_elevation" {
		t.Errorf("name = %q, want open_elevation", doc.Name)
	}

	// The rejected record has no geometry and is omitted
	if len(doc.Features) != 2 {
		t.Fatalf("feature count = %d, want 2", len(doc.Features))
	}

	first := doc.Features[0]
	if first.Geometry.Type != "Point" {
		t.Errorf("geometry type = %q, want Point", first.Geometry.Type)
	}
	// GeoJSON positions are [longitude, latitude]
	if first.Geometry.Coordinates[0] != 20 || first.Geometry.Coordinates[1] != 10 {
		t.Errorf("coordinates = %v, want [20 10]", first.Geometry.Coordinates)
	}
	if first.Properties["elevation"] != 1200.0 {
		t.Errorf("elevation property = %v, want 1200", first.Properties["elevation"])
	}
	if first.Properties["name"] != "first" {
		t.Errorf("name property = %v, want first", first.Properties["name"])
	}
}

// Encoding a run's point collection and re-reading it must reproduce the same
// canonical coordinates.
func TestGeoJSONRoundTrip(t *testing.T) {
	original := testOutput()

	data, err := EncodeGeoJSON(original)
	if err != nil {
		t.Fatalf("EncodeGeoJSON() returned error: %v", err)
	}

	records, err := input.Read(bytes.NewReader(data), input.FormatGeoJSON)
	if err != nil {
		t.Fatalf("re-reading produced GeoJSON failed: %v", err)
	}

	points, rejections := extract.Extract(records)
	if len(rejections) != 0 {
		t.Fatalf("re-extraction rejected %v", rejections)
	}
	if len(points) != len(original.Enriched) {
		t.Fatalf("re-extracted %d points, want %d", len(points), len(original.Enriched))
	}

	const tolerance = 1e-9
	for i, point := range points {
		want := original.Enriched[i].Point.Coordinates
		if math.Abs(point.Coordinates.Latitude-want.Latitude) > tolerance {
			t.Errorf("point %d latitude = %v, want %v", i, point.Coordinates.Latitude, want.Latitude)
		}
		if math.Abs(point.Coordinates.Longitude-want.Longitude) > tolerance {
			t.Errorf("point %d longitude = %v, want %v", i, point.Coordinates.Longitude, want.Longitude)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	o := testOutput()
	csvData, err := EncodeCSV(o)
	if err != nil {
		t.Fatalf("EncodeCSV() returned error: %v", err)
	}
	geojsonData, err := EncodeGeoJSON(o)
	if err != nil {
		t.Fatalf("EncodeGeoJSON() returned error: %v", err)
	}

	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	csvPath, geojsonPath, err := Save(filepath.Join(dir, "outputs"), csvData, geojsonData, now)
	if err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	if filepath.Base(csvPath) != "open_elevation_20250601_123045.csv" {
		t.Errorf("csv path = %s, want timestamped name", csvPath)
	}

	for _, path := range []string{csvPath, geojsonPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Save() did not write %s: %v", path, err)
		}
	}
}
