package formats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Transformer converts one representation into another, e.g. a generated
// entity into an export row.
type Transformer[In, Out any] interface {
	Transform(in In) (Out, error)
}

// TransformerFunc adapts a closure to the Transformer capability.
type TransformerFunc[In, Out any] func(in In) (Out, error)

// Transform calls the wrapped closure.
func (f TransformerFunc[In, Out]) Transform(in In) (Out, error) {
	return f(in)
}

// TransformAll maps t over every input, stopping at the first failure.
func TransformAll[In, Out any](t Transformer[In, Out], in []In) ([]Out, error) {
	out := make([]Out, 0, len(in))
	for i, v := range in {
		o, err := t.Transform(v)
		if err != nil {
			return nil, fmt.Errorf("formats: transform record %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// JSONExporter writes any value as JSON. An empty Indent produces compact
// output.
type JSONExporter struct {
	Indent string
}

// Export encodes v to w.
func (e JSONExporter) Export(w io.Writer, v any) error {
	if w == nil {
		return ErrNilWriter
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("formats: encode json: %w", err)
	}
	return nil
}

// CSVExporter writes records as CSV with a fixed column order. Values are
// rendered with fmt.Sprint; missing keys become empty cells.
type CSVExporter struct {
	Columns []string
}

// Export writes a header row followed by one row per record.
func (e CSVExporter) Export(w io.Writer, records []map[string]any) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(e.Columns) == 0 {
		return ErrNoColumns
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(e.Columns); err != nil {
		return fmt.Errorf("formats: write csv header: %w", err)
	}

	row := make([]string, len(e.Columns))
	for _, rec := range records {
		for i, col := range e.Columns {
			if v, ok := rec[col]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			} else {
				row[i] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("formats: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("formats: flush csv: %w", err)
	}
	return nil
}
