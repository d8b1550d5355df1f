package container

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/reader"
)

const (
	fileMagic uint32 = 0x32534A54 // "TJS2"
	fileVer   uint32 = 0x00303031 // "100\0"
	dataTag   uint32 = 0x41544144 // "DATA"
	objsTag   uint32 = 0x534A424F // "OBJS"
	objectTag uint32 = 0x32534A54 // same magic, reused per object record
)

// Header is the fixed 12-byte file header: magic, version, declared size.
type Header struct {
	Magic   uint32
	Version uint32
	Size    int32
}

/*
 * ParseHeader reads and validates the file header:
 *
 *   u32 magic=0x32534A54
 *   u32 version=0x00303031
 *   i32 file_size
 *
 * The declared size must equal the buffer length; any mismatch is a
 * fatal InvalidFormat error, same as a bad magic or version.
 */
func ParseHeader(r *reader.Reader) (*Header, error) {
	magic, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != fileMagic {
		return nil, fmt.Errorf("bad magic 0x%08X: %w", magic, ErrInvalidFormat)
	}

	version, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version != fileVer {
		return nil, fmt.Errorf("bad version 0x%08X: %w", version, ErrInvalidFormat)
	}

	size, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read file size: %w", err)
	}
	if int(size) != r.Len() {
		return nil, fmt.Errorf("declared size %d does not match buffer length %d: %w", size, r.Len(), ErrInvalidFormat)
	}

	return &Header{Magic: magic, Version: version, Size: size}, nil
}

// readSectionHeader reads the 8-byte (tag, size) prologue shared by the
// Data and Objects sections and enforces the tag. The size field is
// read but not otherwise used; the parser follows counts inside.
func readSectionHeader(r *reader.Reader, want uint32, name string) error {
	tag, err := r.ReadU32()
	if err != nil {
		return fmt.Errorf("failed to read %s tag: %w", name, err)
	}
	if tag != want {
		return fmt.Errorf("expected %s tag 0x%08X, got 0x%08X: %w", name, want, tag, ErrInvalidFormat)
	}
	if _, err := r.ReadI32(); err != nil {
		return fmt.Errorf("failed to read %s section size: %w", name, err)
	}
	return nil
}
