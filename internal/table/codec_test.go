package table

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	src := New([]string{"Forest Rat", "", "スノードロップ", "Mandrake"})

	raw, err := Encode(src)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, src.Names(), got.Names())
}

func TestEncode_Layout(t *testing.T) {
	raw, err := Encode(New([]string{"ab", "c"}))
	require.NoError(t, err)

	want := []byte{
		2, 0, 0, 0, // count
		0, 0, 0, 0, // offset "ab"
		3, 0, 0, 0, // offset "c"
		'a', 'b', 0,
		'c', 0,
	}
	assert.Equal(t, want, raw)
}

func TestEncode_NilTable(t *testing.T) {
	var nt *NameTable

	raw, err := Encode(nt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, raw)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestDecode_SharedOffsets(t *testing.T) {
	raw := []byte{
		2, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		'x', 0,
	}

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, got.Names())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"count too large", []byte{0xFF, 0, 0, 0}},
		{"offset out of bounds", func() []byte {
			b := make([]byte, 8)
			binary.LittleEndian.PutUint32(b, 1)
			binary.LittleEndian.PutUint32(b[4:], 100)
			return b
		}()},
		{"unterminated", []byte{1, 0, 0, 0, 0, 0, 0, 0, 'a'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.Error(t, err)
		})
	}
}
