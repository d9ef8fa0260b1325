// Package table holds the index-addressed name tables shared by enemy and
// item records.
package table

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Lookup for an index the table does not contain.
var ErrIndexOutOfRange = errors.New("name table index out of range")

// NameTable is an ordered, index-addressed list of display strings.
// A NameTable is immutable after construction and safe for concurrent lookups;
// records hold it by pointer and never modify it.
type NameTable struct {
	names []string
}

// New builds a NameTable from names. The slice is copied.
func New(names []string) *NameTable {
	return &NameTable{names: append([]string(nil), names...)}
}

// Lookup returns the string at index. A nil table has no entries.
func (t *NameTable) Lookup(index int) (string, error) {
	if index < 0 || index >= t.Len() {
		return "", fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, index, t.Len())
	}
	return t.names[index], nil
}

// Len returns the number of entries.
func (t *NameTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns a copy of all entries in index order.
func (t *NameTable) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}
