package table

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameTable_Lookup(t *testing.T) {
	names := New([]string{"Potion", "Medica", "Theriaca"})

	got, err := names.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Medica", got)
	assert.Equal(t, 3, names.Len())
}

func TestNameTable_LookupOutOfRange(t *testing.T) {
	names := New([]string{"a", "b", "c"})

	for _, idx := range []int{3, 5, -1} {
		_, err := names.Lookup(idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Lookup(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestNameTable_NewCopiesInput(t *testing.T) {
	src := []string{"Wolf"}
	names := New(src)
	src[0] = "Changed"

	got, err := names.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, "Wolf", got)

	out := names.Names()
	out[0] = "Changed"
	got, _ = names.Lookup(0)
	assert.Equal(t, "Wolf", got)
}

func TestNameTable_ConcurrentLookup(t *testing.T) {
	names := New([]string{"a", "b", "c", "d"})

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 1000 {
				if _, err := names.Lookup((i + j) % names.Len()); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
