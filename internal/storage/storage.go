package storage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zakazai/normtab/internal/types"
)

// ErrNotFound is returned by Lookup when a key has never been added.
var ErrNotFound = errors.New("row not found")

// Tabular is the read-only view shared by renderers and exporters.
type Tabular interface {
	TableName() string
	ColumnDefs() []types.Column
	Rows() []types.Row
}

// Table is an append-only collection of rows keyed by K. A key is
// stored once; later adds with the same key are ignored. The map and the
// ordered sequence always hold the same rows.
type Table[K comparable] struct {
	Name    string
	Columns []types.Column

	byKey map[K]types.Row
	keys  []K
	rows  []types.Row
}

// NewTable creates an empty table with a fixed column schema.
func NewTable[K comparable](name string, columns []types.Column) *Table[K] {
	return &Table[K]{
		Name:    name,
		Columns: columns,
		byKey:   make(map[K]types.Row),
	}
}

// Add stores row under key if key is absent and reports whether it did.
func (t *Table[K]) Add(key K, row types.Row) bool {
	if t.byKey == nil {
		t.byKey = make(map[K]types.Row)
	}
	if _, exists := t.byKey[key]; exists {
		return false
	}

	stored := cloneRow(row)
	t.byKey[key] = stored
	t.keys = append(t.keys, key)
	t.rows = append(t.rows, stored)
	return true
}

// Get returns a copy of the row stored under key.
func (t *Table[K]) Get(key K) (types.Row, bool) {
	row, ok := t.byKey[key]
	if !ok {
		return nil, false
	}
	return cloneRow(row), true
}

// Lookup is Get with an error for callers that propagate failures.
func (t *Table[K]) Lookup(key K) (types.Row, error) {
	row, ok := t.byKey[key]
	if !ok {
		return nil, fmt.Errorf("table %s: key %v: %w", t.Name, key, ErrNotFound)
	}
	return cloneRow(row), nil
}

// Rows returns the rows in insertion order (or sorted order after SortRows).
// The returned rows are copies, so changing them does not affect the table.
func (t *Table[K]) Rows() []types.Row {
	out := make([]types.Row, len(t.rows))
	for i, row := range t.rows {
		out[i] = cloneRow(row)
	}
	return out
}

// Keys returns the keys aligned with Rows.
func (t *Table[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct keys stored.
func (t *Table[K]) Len() int {
	return len(t.rows)
}

// SortRows stably reorders the sequence once before rendering. Membership
// is unchanged.
func (t *Table[K]) SortRows(less func(a, b types.Row) bool) {
	order := make([]int, len(t.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(t.rows[order[i]], t.rows[order[j]])
	})

	keys := make([]K, len(order))
	rows := make([]types.Row, len(order))
	for i, idx := range order {
		keys[i] = t.keys[idx]
		rows[i] = t.rows[idx]
	}
	t.keys = keys
	t.rows = rows
}

// TableName implements Tabular.
func (t *Table[K]) TableName() string {
	return t.Name
}

// ColumnDefs implements Tabular.
func (t *Table[K]) ColumnDefs() []types.Column {
	return t.Columns
}

func cloneRow(row types.Row) types.Row {
	out := make(types.Row, len(row))
	copy(out, row)
	return out
}
