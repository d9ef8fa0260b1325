package table

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"

	"github.com/udisondev/enemyedit/internal/packet"
)

// Decode parses a binary name table:
//
//	u32 count | u32 offsets[count] | NUL-terminated Shift-JIS strings
//
// Offsets are relative to the start of the string block.
func Decode(data []byte) (*NameTable, error) {
	r := packet.NewReader(data)

	count, err := r.ReadUInt()
	if err != nil {
		return nil, fmt.Errorf("reading name count: %w", err)
	}
	if uint64(count)*4 > uint64(r.Remaining()) {
		return nil, fmt.Errorf("name count %d exceeds table size %d", count, len(data))
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		if offsets[i], err = r.ReadUInt(); err != nil {
			return nil, fmt.Errorf("reading offset %d: %w", i, err)
		}
	}

	base := r.Position()
	dec := japanese.ShiftJIS.NewDecoder()
	names := make([]string, count)
	for i, off := range offsets {
		if err := r.Seek(base + int(off)); err != nil {
			return nil, fmt.Errorf("name %d: %w", i, err)
		}
		raw, err := r.ReadCString()
		if err != nil {
			return nil, fmt.Errorf("name %d: %w", i, err)
		}
		s, err := dec.Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding name %d: %w", i, err)
		}
		names[i] = string(s)
	}

	return &NameTable{names: names}, nil
}

// Encode serializes t in the format read by Decode. Strings are laid out in
// index order with no sharing. A nil table encodes as an empty one.
func Encode(t *NameTable) ([]byte, error) {
	enc := japanese.ShiftJIS.NewEncoder()
	names := t.Names()

	strs := packet.NewWriter(len(names) * 16)
	offsets := make([]uint32, len(names))
	for i, name := range names {
		raw, err := enc.Bytes([]byte(name))
		if err != nil {
			return nil, fmt.Errorf("encoding name %d %q: %w", i, name, err)
		}
		offsets[i] = uint32(strs.Len())
		strs.WriteCString(raw)
	}

	w := packet.NewWriter(4 + 4*len(offsets) + strs.Len())
	w.WriteUInt(uint32(len(offsets)))
	for _, off := range offsets {
		w.WriteUInt(off)
	}
	w.WriteBytes(strs.Bytes())
	return w.Bytes(), nil
}
