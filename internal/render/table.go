package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zakazai/normtab/internal/types"
)

// ErrColumnMismatch is returned when a row's cell count differs from the
// number of columns.
var ErrColumnMismatch = errors.New("row does not match column count")

const (
	cellPadding = 2
	border      = "|"
)

// Table renders bordered text tables for a fixed column set.
type Table struct {
	Columns []types.Column
}

// NewTable creates a renderer for columns.
func NewTable(columns []types.Column) *Table {
	return &Table{Columns: columns}
}

// ColumnWidths returns the width of each column for rows. Widths come from
// the raw cell strings; formatters are applied later and do not widen.
func (t *Table) ColumnWidths(rows []types.Row) ([]int, error) {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col.Name) + cellPadding
	}

	for r, row := range rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), len(t.Columns), ErrColumnMismatch)
		}
		for i, v := range row {
			if w := len(fmt.Sprint(v)) + cellPadding; w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths, nil
}

// Render returns the table as text without a trailing newline.
func (t *Table) Render(rows []types.Row) (string, error) {
	widths, err := t.ColumnWidths(rows)
	if err != nil {
		return "", err
	}

	cells := make([]Cell, len(widths))
	dashes := make([]string, len(widths))
	for i, w := range widths {
		cells[i] = Cell{Width: w, LeftPadding: 1}
		dashes[i] = strings.Repeat("-", w)
	}
	layout := RowLayout{Cells: cells, Delimiter: border, Wrap: true}
	separator := "+" + strings.Join(dashes, "+") + "+"

	headers := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Name
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, separator, layout.Format(headers...), separator)
	for _, row := range rows {
		values := make([]interface{}, len(row))
		for i, s := range row.Strings() {
			if f := t.Columns[i].Format; f != nil {
				s = f(s)
			}
			values[i] = s
		}
		lines = append(lines, layout.Format(values...))
	}
	lines = append(lines, separator)

	return strings.Join(lines, "\n"), nil
}

// Fprint writes the rendered table followed by a newline.
func (t *Table) Fprint(w io.Writer, rows []types.Row) error {
	out, err := t.Render(rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Source is anything that carries its columns and rows, such as a
// storage.Table.
type Source interface {
	ColumnDefs() []types.Column
	Rows() []types.Row
}

// Print renders src under a title line.
func Print(w io.Writer, title string, src Source) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	return NewTable(src.ColumnDefs()).Fprint(w, src.Rows())
}
