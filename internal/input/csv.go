package input

import (
	"encoding/csv"
	"fmt"
	"io"

	"openelev/internal/types"
)

// readCSV parses a CSV document with a header row into one record per data
// row. Cell values stay strings; the extractor parses numbers where it needs
// them.
func readCSV(r io.Reader) ([]types.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Short rows become records with missing values, which the extractor
	// rejects individually instead of failing the whole document.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty CSV document", ErrInvalidFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var records []types.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}

		fields := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(row) {
				fields[col] = row[i]
			}
		}
		records = append(records, types.NewRecord(header, fields))
	}

	return records, nil
}
