// Package output renders an enrichment run into its two downloadable
// encodings, CSV and GeoJSON, and optionally writes them to disk. The
// pipeline core never touches files; callers hand a finished Output here.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"openelev/internal/enrich"
	"openelev/internal/types"
)

// EncodeCSV renders the run as a CSV table: one row per input record in the
// original order, the original columns first, then an elevation column (in
// meters) and a reason column. Rejected records keep their row with an empty
// elevation and the rejection reason, so row i always corresponds to input
// record i.
func EncodeCSV(o *enrich.Output) ([]byte, error) {
	columns := unionColumns(o.Source)

	byIndex := make(map[int]enrich.EnrichedRecord, len(o.Enriched))
	for _, er := range o.Enriched {
		byIndex[er.Point.Index] = er
	}
	reasons := make(map[int]string, len(o.Rejections))
	for _, r := range o.Rejections {
		reasons[r.Index] = r.Reason
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, columns...), "elevation", "reason")
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, record := range o.Source {
		row := make([]string, 0, len(header))
		for _, col := range columns {
			v, _ := record.Lookup(col)
			row = append(row, formatValue(v))
		}

		if er, ok := byIndex[i]; ok {
			row = append(row, strconv.FormatFloat(er.Elevation.Meters, 'f', -1, 64), "")
		} else {
			row = append(row, "", reasons[i])
		}

		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// unionColumns merges the column sets of all records, preserving first-seen
// order. Records parsed from one document usually share one layout; the
// union keeps mixed layouts renderable.
func unionColumns(records []types.Record) []string {
	var columns []string
	seen := make(map[string]struct{})
	for _, record := range records {
		for _, col := range record.Columns {
			key := strings.ToLower(col)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			columns = append(columns, col)
		}
	}
	return columns
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
