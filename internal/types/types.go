package types

import "fmt"

// Value is a single cell. Only string, int and float64 are stored.
type Value interface{}

// Row is an ordered tuple of values aligned with a table's columns.
type Row []Value

// Strings returns the display form of every cell.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Formatter decorates the string form of a cell at render time.
type Formatter func(string) string

// Column describes one column of a table.
type Column struct {
	Name   string
	Format Formatter // optional
}

// Indent returns a formatter that prepends n spaces.
func Indent(n int) Formatter {
	pad := fmt.Sprintf("%*s", n, "")
	return func(s string) string {
		return pad + s
	}
}
