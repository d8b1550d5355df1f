package container

import (
	"encoding/binary"
	"math"
)

// byteBuilder assembles a little-endian TJS2 byte stream by hand, the
// same shape loadDataArea/loadObjectsArea expect to read back.
type byteBuilder struct {
	buf []byte
}

func (b *byteBuilder) u16(v uint16) *byteBuilder {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *byteBuilder) u32(v uint32) *byteBuilder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *byteBuilder) i32(v int32) *byteBuilder {
	return b.u32(uint32(v))
}

func (b *byteBuilder) u64(v uint64) *byteBuilder {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *byteBuilder) f64(v float64) *byteBuilder {
	return b.u64(math.Float64bits(v))
}

func (b *byteBuilder) byte(v byte) *byteBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *byteBuilder) bytes(v []byte) *byteBuilder {
	b.buf = append(b.buf, v...)
	return b
}

func (b *byteBuilder) utf16le(s string) *byteBuilder {
	for _, r := range s {
		b.u16(uint16(r))
	}
	return b
}

func (b *byteBuilder) pad4(n int) *byteBuilder {
	pad := (4 - n%4) % 4
	for i := 0; i < pad; i++ {
		b.buf = append(b.buf, 0)
	}
	return b
}

func (b *byteBuilder) bytesLen() []byte {
	return b.buf
}

// emptyDataSection builds a DATA section with every typed array empty.
func emptyDataSection() []byte {
	var b byteBuilder
	b.u32(dataTag).i32(0) // tag, size (unused)
	for i := 0; i < 7; i++ {
		b.i32(0) // byte, short, int, long, double, string, octet counts
	}
	return b.bytesLen()
}
