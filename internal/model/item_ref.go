package model

import "github.com/udisondev/enemyedit/internal/table"

// ItemRef identifies an entry of a shared name table.
// Both fields are fixed at construction.
type ItemRef struct {
	names *table.NameTable
	index int
}

// NewItemRef creates a reference to entry index of names. The index is not
// validated here; Name reports a bad index.
func NewItemRef(names *table.NameTable, index int) ItemRef {
	return ItemRef{names: names, index: index}
}

// Index returns the entry index.
func (r ItemRef) Index() int {
	return r.index
}

// Table returns the shared name table.
func (r ItemRef) Table() *table.NameTable {
	return r.names
}

// Name looks up the display name. Returns table.ErrIndexOutOfRange if the
// index is not in the table.
func (r ItemRef) Name() (string, error) {
	return r.names.Lookup(r.index)
}
