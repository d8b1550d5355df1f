// Package reader provides little-endian primitive reads over an
// in-memory TJS2 bytecode buffer.
package reader

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ErrTruncated is wrapped by every error produced when a read runs past
// the end of the buffer.
var ErrTruncated = fmt.Errorf("truncated")

// Reader is a cursor over an immutable byte slice. It never buffers or
// streams: the whole file is loaded once by the caller.
type Reader struct {
	data []byte
	pos  int
}

// New wraps data for positioned little-endian reads starting at offset 0.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total size of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Tell returns the current cursor position.
func (r *Reader) Tell() int {
	return r.pos
}

// Seek moves the cursor to an absolute position.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("seek to %d: %w", pos, ErrTruncated)
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("negative skip %d", n)
	}
	return r.Seek(r.pos + n)
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, r.pos, len(r.data)-r.pos, ErrTruncated)
	}
	return nil
}

// ReadBytes reads and returns a raw run of n bytes, advancing the cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadF64 reads a little-endian IEEE-754 double.
func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
