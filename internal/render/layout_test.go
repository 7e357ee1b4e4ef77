package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLayoutFormat(t *testing.T) {
	tests := []struct {
		name   string
		layout RowLayout
		values []interface{}
		want   string
	}{
		{
			name:   "plain widths",
			layout: Widths(6, 4),
			values: []interface{}{"ab", 7},
			want:   "ab    7   ",
		},
		{
			name:   "left padding and delimiter",
			layout: RowLayout{Cells: []Cell{{Width: 5, LeftPadding: 1}, {Width: 4, LeftPadding: 2}}, Delimiter: "|"},
			values: []interface{}{"x", "y"},
			want:   " x   |  y ",
		},
		{
			name:   "wrap",
			layout: RowLayout{Cells: []Cell{{Width: 3, LeftPadding: 1}}, Delimiter: "|", Wrap: true},
			values: []interface{}{"a"},
			want:   "| a |",
		},
		{
			name:   "overflow is not truncated",
			layout: Widths(2, 2),
			values: []interface{}{"long", "b"},
			want:   "longb ",
		},
		{
			name:   "fewer values than cells",
			layout: RowLayout{Cells: []Cell{{Width: 3}, {Width: 3}, {Width: 3}}, Delimiter: "|"},
			values: []interface{}{"a", "b"},
			want:   "a  |b  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.Format(tt.values...))
		})
	}
}

func TestRowLayoutWidth(t *testing.T) {
	assert.Equal(t, 61, Widths(12, 16, 20, 13).Width())

	npv := RowLayout{Cells: []Cell{{8, 0}, {22, 6}, {13, 4}, {12, 2}}, Delimiter: "|"}
	assert.Equal(t, 58, npv.Width())
	assert.Equal(t, 58, len(npv.Rule("-")))

	wrapped := RowLayout{Cells: []Cell{{3, 0}, {3, 0}}, Delimiter: "|", Wrap: true}
	assert.Equal(t, 9, wrapped.Width())
	assert.Equal(t, len(wrapped.Format("a", "b")), wrapped.Width())
}
