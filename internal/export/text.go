package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/irjudson/codalab-cli/internal"
)

// TextExporter writes human-readable aligned output
type TextExporter struct{}

// Export writes v to w. Tables become aligned columns and maps become sorted
// key/value lines; anything else is printed with %v.
func (e *TextExporter) Export(v any, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch x := v.(type) {
	case Table:
		fmt.Fprintln(tw, strings.Join(x.Header(), "\t"))
		for _, row := range x.Rows() {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(tw, "%s:\t%s\n", k, formatValue(x[k]))
		}
	default:
		fmt.Fprintf(tw, "%v\n", v)
	}

	if err := tw.Flush(); err != nil {
		return &internal.ExportError{Format: "text", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}

func formatValue(v any) string {
	switch x := v.(type) {
	case []string:
		if len(x) == 0 {
			return "[]"
		}
		return strings.Join(x, ", ")
	case string:
		if x == "" {
			return `""`
		}
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
