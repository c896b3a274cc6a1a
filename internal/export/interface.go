package export

import (
	"fmt"
	"io"
)

// Exporter defines the interface for all output formats
type Exporter interface {
	Export(v any, w io.Writer) error
	Extension() string
}

// Table is tabular data the text exporter renders as aligned columns
type Table interface {
	Header() []string
	Rows() [][]string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "text", "":
		return &TextExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, yaml, json)", format)
	}
}
