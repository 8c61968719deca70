//go:build integration

package openelevation

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area plus Edinburgh
	locations := []Location{
		{Latitude: 39.11539, Longitude: -107.65840},
		{Latitude: 55.95, Longitude: -3.19},
	}

	client := NewClient("", 0, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	t.Logf("Making API call to Open-Elevation API...")

	results, err := client.Lookup(context.Background(), locations, 100)
	if err != nil {
		t.Fatalf("Failed to look up elevations: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(results) != len(locations) {
		t.Fatalf("Got %d results for %d locations", len(results), len(locations))
	}

	// Sanity check - the Aspen area should be between 2000-4000 meters
	if results[0].Elevation < 1000 || results[0].Elevation > 5000 {
		t.Errorf("Elevation seems unreasonable: %v meters", results[0].Elevation)
	}

	t.Log("✓ API call successful, response structure valid")
}
