// Package container parses a TJS2 bytecode file into its constant
// pool and object graph: the header, the Data Area, and the Objects
// Area with its cross-reference fixup pass.
package container

import (
	"fmt"
	"os"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/internal/tjs2/reader"
)

// File is a fully loaded and fixed-up bytecode file: the header, the
// constant pool, every object in file order, and the designated
// top-level object (nil if the file declares none).
type File struct {
	Header  *Header
	Pool    *model.ConstantPool
	Objects []*model.CodeContext
	Top     *model.CodeContext

	// Warnings accumulates every IndexOutOfRange/DecodeFailure the load
	// absorbed into a placeholder instead of aborting.
	Warnings []error
}

// Load reads path and parses it as a TJS2 bytecode file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses an in-memory TJS2 bytecode buffer. Format errors
// (bad magic/version/tag, size mismatch, truncated reads) abort the
// load and return an error; everything else is absorbed into
// placeholder values as the object walk proceeds.
func LoadBytes(data []byte) (*File, error) {
	r := reader.New(data)

	header, err := ParseHeader(r)
	if err != nil {
		return nil, err
	}

	var warnings []error

	pool, err := loadDataArea(r, &warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to load data area: %w", err)
	}

	top, objects, err := loadObjectsArea(r, pool, &warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to load objects area: %w", err)
	}

	return &File{
		Header:   header,
		Pool:     pool,
		Objects:  objects,
		Top:      top,
		Warnings: warnings,
	}, nil
}
