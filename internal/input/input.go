// Package input resolves the two supported upload formats (tabular CSV and
// GeoJSON point collections) into a single sequence of records, so the rest
// of the pipeline never branches on the source format.
package input

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"openelev/internal/types"
)

// Format identifies the shape of an input document.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatGeoJSON Format = "geojson"
)

// ErrInvalidFormat is returned when the input is neither a parseable CSV
// table nor a valid GeoJSON feature collection. It is surfaced before any
// extraction begins.
var ErrInvalidFormat = errors.New("input is not a valid CSV table or GeoJSON feature collection")

// DetectFormat guesses an input format from a file name. GeoJSON wins for
// .geojson and .json, everything else is treated as CSV.
func DetectFormat(filename string) Format {
	switch strings.ToLower(path.Ext(filename)) {
	case ".geojson", ".json":
		return FormatGeoJSON
	default:
		return FormatCSV
	}
}

// Read parses the document into records. The returned slice preserves the
// document's row/feature order.
func Read(r io.Reader, format Format) ([]types.Record, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatGeoJSON:
		return readGeoJSON(r)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidFormat, format)
	}
}
