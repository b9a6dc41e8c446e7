// Package render converts frequency tables into rows and serializes them.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/revelaction/relex/extract"
	"github.com/revelaction/relex/freq"
	"github.com/revelaction/relex/storage"
)

const Delimiter = '\t'

// Renderer writes rows to an output.
type Renderer interface {
	Render(rows []storage.Row) error
}

// Rows returns one row per distinct pattern, in table order.
func Rows[K extract.Pattern](t *freq.Table[K]) []storage.Row {
	rows := make([]storage.Row, 0, t.Len())
	t.Each(func(k K, n int) {
		rows = append(rows, storage.Row{Fields: k.Fields(), Count: n})
	})
	return rows
}

// TSVRenderer writes rows as tab separated lines: the pattern fields
// followed by the count, without header.
type TSVRenderer struct {
	W io.Writer
}

func NewTSVRenderer(w io.Writer) *TSVRenderer {
	return &TSVRenderer{W: w}
}

func (r *TSVRenderer) Render(rows []storage.Row) error {
	w := csv.NewWriter(r.W)
	w.Comma = Delimiter

	for _, row := range rows {
		record := append(append([]string(nil), row.Fields...), strconv.Itoa(row.Count))
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadTSV parses rows written by TSVRenderer.
func ReadTSV(r io.Reader) ([]storage.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []storage.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		if len(record) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected pattern fields and count, got %d fields", line, len(record))
		}

		last := len(record) - 1
		n, err := strconv.Atoi(record[last])
		if err != nil {
			line, _ := cr.FieldPos(last)
			return nil, fmt.Errorf("line %d: bad count %q", line, record[last])
		}

		rows = append(rows, storage.Row{Fields: record[:last], Count: n})
	}
}

// compile-time interface check
var _ Renderer = (*TSVRenderer)(nil)
