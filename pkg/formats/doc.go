// Package formats provides the transformer capability and common exporters
// (JSON, CSV) for turning generated entities into interchange formats.
//
// A Transformer converts one representation into another; exporters write a
// batch of records to an io.Writer. Both are stateless values, safe to share
// and reuse across cohorts.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := formats.JSONExporter{Indent: "  "}.Export(&buf, people)
//
//	csv := formats.CSVExporter{Columns: []string{"id", "name", "age"}}
//	err = csv.Export(&buf, rows)
package formats
