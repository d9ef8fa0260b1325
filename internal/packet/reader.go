package packet

import (
	"encoding/binary"
	"fmt"
)

// Reader provides sequential access to table data.
// Uses Little-Endian byte order for all multi-byte values.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new table reader.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		pos:  0,
	}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("ReadByte: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadShort reads an int16 (2 bytes, LE).
func (r *Reader) ReadShort() (int16, error) {
	v, err := r.ReadUShort()
	return int16(v), err
}

// ReadUShort reads a uint16 (2 bytes, LE).
func (r *Reader) ReadUShort() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, fmt.Errorf("ReadUShort: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return val, nil
}

// ReadUInt reads a uint32 (4 bytes, LE).
func (r *Reader) ReadUInt() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("ReadUInt: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return val, nil
}

// ReadCString reads a NUL-terminated byte string (ZERO-COPY, terminator excluded).
// Caller MUST NOT modify returned bytes.
func (r *Reader) ReadCString() ([]byte, error) {
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			s := r.data[r.pos:i]
			r.pos = i + 1
			return s, nil
		}
	}
	return nil, fmt.Errorf("ReadCString: missing terminator (pos=%d, len=%d)", r.pos, len(r.data))
}

// Seek moves the read position to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("Seek: offset %d out of bounds (len=%d)", pos, len(r.data))
	}
	r.pos = pos
	return nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
