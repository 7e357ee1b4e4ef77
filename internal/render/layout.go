package render

import (
	"fmt"
	"strings"
)

// Cell is one column slot of a RowLayout.
type Cell struct {
	Width       int
	LeftPadding int
}

// RowLayout lays values out in fixed-width columns. Values longer than
// their slot are not truncated.
type RowLayout struct {
	Cells     []Cell
	Delimiter string
	Wrap      bool // surround the line with Delimiter
}

// Widths builds an unpadded layout with no delimiter.
func Widths(widths ...int) RowLayout {
	cells := make([]Cell, len(widths))
	for i, w := range widths {
		cells[i] = Cell{Width: w}
	}
	return RowLayout{Cells: cells}
}

// Format renders values into one line. Extra values beyond the layout are
// ignored; missing trailing values simply end the line early.
func (l RowLayout) Format(values ...interface{}) string {
	n := len(values)
	if n > len(l.Cells) {
		n = len(l.Cells)
	}

	parts := make([]string, n)
	for i := 0; i < n; i++ {
		c := l.Cells[i]
		text := strings.Repeat(" ", c.LeftPadding) + fmt.Sprint(values[i])
		parts[i] = ljust(text, c.Width)
	}

	line := strings.Join(parts, l.Delimiter)
	if l.Wrap {
		line = l.Delimiter + line + l.Delimiter
	}
	return line
}

// Width is the length of a fully populated line.
func (l RowLayout) Width() int {
	total := 0
	for _, c := range l.Cells {
		total += c.Width
	}
	if len(l.Cells) > 1 {
		total += (len(l.Cells) - 1) * len(l.Delimiter)
	}
	if l.Wrap {
		total += 2 * len(l.Delimiter)
	}
	return total
}

// Rule returns a line of fill characters as wide as the layout.
func (l RowLayout) Rule(fill string) string {
	return strings.Repeat(fill, l.Width())
}

func ljust(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
