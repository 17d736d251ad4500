package output

import (
	"github.com/charmbracelet/lipgloss"

	"alphabetter/internal/records"
)

// UI/view-model types (no printing here)
type Column struct {
	Title string // header label, rendered verbatim
	Field string // wire name of the record field
}

// Schema is the fixed column layout of one record collection.
type Schema struct {
	Columns  []Column
	KeyField string
}

type Row struct {
	Key   string
	Cells []string
}

type Grid struct {
	Header []string
	Rows   []Row
}

// BuildGrid projects records into a header row plus one row per record, in
// input order. Records sharing a key are all kept.
func BuildGrid[R records.Record](schema Schema, recs []R) Grid {
	header := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		header[i] = c.Title
	}

	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		cells := make([]string, len(schema.Columns))
		for i, c := range schema.Columns {
			cells[i] = rec.Field(c.Field).String()
		}
		rows = append(rows, Row{
			Key:   rec.Field(schema.KeyField).String(),
			Cells: cells,
		})
	}

	return Grid{Header: header, Rows: rows}
}

// Widths returns the display width of each column: the widest of the header
// and every cell below it.
func (g Grid) Widths() []int {
	w := make([]int, len(g.Header))
	for i, h := range g.Header {
		w[i] = lipgloss.Width(h)
	}
	for _, r := range g.Rows {
		for i, c := range r.Cells {
			if i < len(w) && lipgloss.Width(c) > w[i] {
				w[i] = lipgloss.Width(c)
			}
		}
	}
	return w
}

// Body returns the cells of every row, for renderers that take [][]string.
func (g Grid) Body() [][]string {
	body := make([][]string, len(g.Rows))
	for i, r := range g.Rows {
		body[i] = r.Cells
	}
	return body
}
