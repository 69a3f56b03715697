package export

import (
	"bytes"
	"fmt"
	"strings"
)

// TextExporter renders reports into the flat-text layout read by humans.
type TextExporter struct{}

// NewTextExporter builds a text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Render produces the sectioned text report.
func (e *TextExporter) Render(r Report) ([]byte, error) {
	if err := validate(r); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "================== %s ==================\n", strings.ToUpper(r.Title))
	fmt.Fprintf(buf, "Export Date: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	if r.SessionID != "" {
		fmt.Fprintf(buf, "Session: %s\n", r.SessionID)
	}

	for _, sec := range r.Sections {
		fmt.Fprintf(buf, "\n============ %s ============\n", strings.ToUpper(sec.Title))
		fmt.Fprintf(buf, "Total %s: %d\n\n", sec.Title, len(sec.Rows))
		for _, row := range sec.Rows {
			pairs := make([]string, 0, len(sec.Headers))
			for _, header := range sec.Headers {
				pairs = append(pairs, fmt.Sprintf("%s: %s", header, row[header]))
			}
			fmt.Fprintf(buf, "%s\n", strings.Join(pairs, " | "))
		}
	}

	fmt.Fprintf(buf, "\n========== END OF EXPORT ==========\n")
	return buf.Bytes(), nil
}
