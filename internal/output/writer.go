package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Save writes the CSV and GeoJSON renderings of a run into dir, creating it
// if needed. File names carry a timestamp so repeated runs never overwrite
// each other. Returns the two written paths.
func Save(dir string, csvData, geojsonData []byte, now time.Time) (csvPath, geojsonPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output dir: %w", err)
	}

	ts := now.Format("20060102_150405")
	csvPath = filepath.Join(dir, fmt.Sprintf("open_elevation_%s.csv", ts))
	geojsonPath = filepath.Join(dir, fmt.Sprintf("open_elevation_%s.geojson", ts))

	if err := os.WriteFile(csvPath, csvData, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write CSV output: %w", err)
	}
	if err := os.WriteFile(geojsonPath, geojsonData, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write GeoJSON output: %w", err)
	}

	return csvPath, geojsonPath, nil
}
