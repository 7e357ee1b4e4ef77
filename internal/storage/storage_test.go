package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakazai/normtab/internal/storage"
	"github.com/zakazai/normtab/internal/types"
)

var columns = []types.Column{{Name: "Id"}, {Name: "Name"}}

func TestTableAdd(t *testing.T) {
	tbl := storage.NewTable[string]("people", columns)

	assert.True(t, tbl.Add("a", types.Row{"a", "first"}))
	assert.True(t, tbl.Add("b", types.Row{"b", "second"}))
	assert.False(t, tbl.Add("a", types.Row{"a", "replacement"}))

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"a", "b"}, tbl.Keys())

	row, ok := tbl.Get("a")
	require.True(t, ok)
	assert.Equal(t, types.Row{"a", "first"}, row)
}

func TestTableDistinctKeysKeepFirstOccurrenceOrder(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want []int
	}{
		{name: "empty", keys: nil, want: []int{}},
		{name: "no duplicates", keys: []int{3, 1, 2}, want: []int{3, 1, 2}},
		{name: "duplicates", keys: []int{5, 5, 2, 5, 7, 2}, want: []int{5, 2, 7}},
		{name: "all same", keys: []int{9, 9, 9}, want: []int{9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := storage.NewTable[int]("t", columns)
			for i, k := range tt.keys {
				tbl.Add(k, types.Row{k, i})
			}

			assert.Equal(t, len(tt.want), tbl.Len())
			assert.Equal(t, tt.want, tbl.Keys())

			rows := tbl.Rows()
			require.Len(t, rows, len(tt.want))
			for i, k := range tt.want {
				assert.Equal(t, k, rows[i][0])
				stored, ok := tbl.Get(k)
				require.True(t, ok)
				assert.Equal(t, stored, rows[i])
			}
		})
	}
}

func TestTableLookupNotFound(t *testing.T) {
	tbl := storage.NewTable[string]("people", columns)

	_, ok := tbl.Get("missing")
	assert.False(t, ok)

	_, err := tbl.Lookup("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "people")
}

func TestTableRowsIsSnapshot(t *testing.T) {
	tbl := storage.NewTable[string]("people", columns)
	tbl.Add("a", types.Row{"a", "x"})
	tbl.Add("b", types.Row{"b", "y"})

	rows := tbl.Rows()
	rows[0], rows[1] = rows[1], rows[0]

	assert.Equal(t, []string{"a", "b"}, tbl.Keys())
	assert.Equal(t, "a", tbl.Rows()[0][0])
}

func TestTableAddCopiesRow(t *testing.T) {
	tbl := storage.NewTable[string]("people", columns)
	row := types.Row{"a", "x"}
	tbl.Add("a", row)
	row[1] = "mutated"

	stored, _ := tbl.Get("a")
	assert.Equal(t, "x", stored[1])
}

func TestTableReturnsCopies(t *testing.T) {
	tbl := storage.NewTable[string]("people", columns)
	tbl.Add("a", types.Row{"a", "x"})

	got, ok := tbl.Get("a")
	require.True(t, ok)
	got[1] = "from get"

	looked, err := tbl.Lookup("a")
	require.NoError(t, err)
	looked[1] = "from lookup"

	tbl.Rows()[0][1] = "from rows"

	stored, _ := tbl.Get("a")
	assert.Equal(t, types.Row{"a", "x"}, stored)
	assert.Equal(t, types.Row{"a", "x"}, tbl.Rows()[0])
}

func TestTableSortRows(t *testing.T) {
	tbl := storage.NewTable[int]("t", columns)
	tbl.Add(1, types.Row{1, "b"})
	tbl.Add(2, types.Row{2, "a"})
	tbl.Add(3, types.Row{3, "b"})
	tbl.Add(4, types.Row{4, "a"})

	tbl.SortRows(func(a, b types.Row) bool {
		return a[1].(string) < b[1].(string)
	})

	assert.Equal(t, []int{2, 4, 1, 3}, tbl.Keys())
	assert.Equal(t, 4, tbl.Len())
	for _, k := range tbl.Keys() {
		_, ok := tbl.Get(k)
		assert.True(t, ok)
	}
}

func TestTabular(t *testing.T) {
	tbl := storage.NewTable[string]("people", columns)
	var view storage.Tabular = tbl

	assert.Equal(t, "people", view.TableName())
	assert.Equal(t, columns, view.ColumnDefs())
	assert.Empty(t, view.Rows())
}
