package export

import (
	"fmt"
	"strings"
	"time"
)

// Format selects the rendering backend for a report.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat normalises operator input; empty input means text.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// Report is a multi-section document rendered into one of the supported formats.
type Report struct {
	Title       string
	SessionID   string
	GeneratedAt time.Time
	Sections    []Section
}

// Section is one tabular block of a report.
type Section struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

func validate(r Report) error {
	if len(r.Sections) == 0 {
		return fmt.Errorf("report requires at least one section")
	}
	for _, sec := range r.Sections {
		if len(sec.Headers) == 0 {
			return fmt.Errorf("section %q requires at least one header", sec.Title)
		}
	}
	return nil
}
