package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renders reports into sectioned CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes, one header+body block per section.
func (e *CSVExporter) Render(r Report) ([]byte, error) {
	if err := validate(r); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	for _, sec := range r.Sections {
		if err := writer.Write([]string{sec.Title, fmt.Sprintf("count=%d", len(sec.Rows))}); err != nil {
			return nil, fmt.Errorf("write csv section: %w", err)
		}
		if err := writer.Write(sec.Headers); err != nil {
			return nil, fmt.Errorf("write csv headers: %w", err)
		}
		for _, row := range sec.Rows {
			record := make([]string, len(sec.Headers))
			for i, header := range sec.Headers {
				record[i] = row[header]
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
