package export

import (
	"encoding/json"
	"io"

	"github.com/irjudson/codalab-cli/internal"
)

// JSONExporter writes values as pretty-printed JSON
type JSONExporter struct{}

// Export writes v to w as JSON
func (e *JSONExporter) Export(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return &internal.ExportError{Format: "json", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
