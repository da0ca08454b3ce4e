package formats_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simkit/simkit/pkg/formats"
)

func TestJSONExporter(t *testing.T) {
	t.Parallel()

	type record struct {
		ID   string `json:"id"`
		Age  int    `json:"age"`
		Note string `json:"note,omitempty"`
	}

	t.Run("compact output round-trips", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		in := []record{{ID: "a", Age: 30}, {ID: "b", Age: 41, Note: "x"}}

		require.NoError(t, formats.JSONExporter{}.Export(&buf, in))

		var out []record
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, in, out)
	})

	t.Run("indented output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, formats.JSONExporter{Indent: "  "}.Export(&buf, record{ID: "a"}))
		assert.Contains(t, buf.String(), "\n  \"id\"")
	})

	t.Run("nil writer", func(t *testing.T) {
		t.Parallel()
		err := formats.JSONExporter{}.Export(nil, "x")
		assert.ErrorIs(t, err, formats.ErrNilWriter)
	})

	t.Run("unencodable value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := formats.JSONExporter{}.Export(&buf, func() {})
		assert.Error(t, err)
	})
}

func TestCSVExporter(t *testing.T) {
	t.Parallel()

	t.Run("header and rows in column order", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		e := formats.CSVExporter{Columns: []string{"id", "name", "age"}}

		err := e.Export(&buf, []map[string]any{
			{"id": "p1", "name": "Ada", "age": 36},
			{"id": "p2", "name": "Lin"},
		})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,name,age", lines[0])
		assert.Equal(t, "p1,Ada,36", lines[1])
		assert.Equal(t, "p2,Lin,", lines[2], "missing keys become empty cells")
	})

	t.Run("no columns", func(t *testing.T) {
		t.Parallel()
		err := formats.CSVExporter{}.Export(&bytes.Buffer{}, nil)
		assert.ErrorIs(t, err, formats.ErrNoColumns)
	})

	t.Run("empty record set still writes the header", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := formats.CSVExporter{Columns: []string{"id"}}.Export(&buf, nil)
		require.NoError(t, err)
		assert.Equal(t, "id\n", buf.String())
	})

	t.Run("values needing quoting", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := formats.CSVExporter{Columns: []string{"note"}}.Export(&buf, []map[string]any{
			{"note": "hello, world"},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"hello, world"`)
	})
}

func TestTransformer(t *testing.T) {
	t.Parallel()

	double := formats.TransformerFunc[int, int](func(in int) (int, error) {
		if in < 0 {
			return 0, errors.New("negative input")
		}
		return in * 2, nil
	})

	t.Run("all succeed", func(t *testing.T) {
		t.Parallel()
		out, err := formats.TransformAll[int, int](double, []int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, out)
	})

	t.Run("first failure stops", func(t *testing.T) {
		t.Parallel()
		_, err := formats.TransformAll[int, int](double, []int{1, -2, 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 1")
	})
}
