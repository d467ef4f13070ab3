// Package export renders tabular datasets into downloadable documents.
package export

import (
	"fmt"
	"strings"
)

// Dataset defines tabular export content. Rows are keyed by header.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
	// Widths are relative column weights; ignored unless one per header.
	Widths []float64
}

// Renderer turns a dataset into document bytes.
type Renderer interface {
	Render(data Dataset, title string) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the renderer for a format name ("csv" or "pdf").
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "csv":
		return NewCSVExporter(), nil
	case "pdf":
		return NewPDFExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func (d Dataset) validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("dataset requires at least one header")
	}
	return nil
}

func (d Dataset) record(row map[string]string) []string {
	record := make([]string, len(d.Headers))
	for i, header := range d.Headers {
		record[i] = row[header]
	}
	return record
}

func (d Dataset) columnWidths(total float64) []float64 {
	widths := make([]float64, len(d.Headers))
	if len(d.Widths) != len(d.Headers) {
		for i := range widths {
			widths[i] = total / float64(len(d.Headers))
		}
		return widths
	}
	var sum float64
	for _, w := range d.Widths {
		if w > 0 {
			sum += w
		}
	}
	for i, w := range d.Widths {
		if sum == 0 || w <= 0 {
			widths[i] = total / float64(len(d.Headers))
			continue
		}
		widths[i] = total * w / sum
	}
	return widths
}
