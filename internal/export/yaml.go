package export

import (
	"io"

	"github.com/irjudson/codalab-cli/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes values as YAML
type YAMLExporter struct{}

// Export writes v to w as a YAML document
func (e *YAMLExporter) Export(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(v); err != nil {
		return &internal.ExportError{Format: "yaml", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
