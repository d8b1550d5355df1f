package container

import (
	"encoding/hex"
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/internal/tjs2/reader"
	"golang.org/x/text/encoding/unicode"
)

/*
 * loadDataArea parses the DATA section: seven count-prefixed typed
 * blocks in a fixed order (byte, short, int, long, double, string,
 * octet). Each block pads the cursor to a 4-byte boundary on exit.
 */
func loadDataArea(r *reader.Reader, warnings *[]error) (*model.ConstantPool, error) {
	if err := readSectionHeader(r, dataTag, "DATA"); err != nil {
		return nil, err
	}

	pool := &model.ConstantPool{}

	n, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read byte count: %w", err)
	}
	pool.Bytes = make([]uint8, n)
	for i := range pool.Bytes {
		b, err := r.ReadBytes(1)
		if err != nil {
			return nil, fmt.Errorf("failed to read byte[%d]: %w", i, err)
		}
		pool.Bytes[i] = b[0]
	}
	if err := padTo4(r, int(n)); err != nil {
		return nil, err
	}

	n, err = r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read short count: %w", err)
	}
	pool.Shorts = make([]uint16, n)
	for i := range pool.Shorts {
		v, err := r.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("failed to read short[%d]: %w", i, err)
		}
		pool.Shorts[i] = v
	}
	if n&1 != 0 {
		if err := r.Skip(2); err != nil {
			return nil, fmt.Errorf("failed to pad short block: %w", err)
		}
	}

	n, err = r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read int count: %w", err)
	}
	pool.Ints = make([]int32, n)
	for i := range pool.Ints {
		v, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("failed to read int[%d]: %w", i, err)
		}
		pool.Ints[i] = v
	}

	n, err = r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read long count: %w", err)
	}
	pool.Longs = make([]uint64, n)
	for i := range pool.Longs {
		v, err := r.ReadU64()
		if err != nil {
			return nil, fmt.Errorf("failed to read long[%d]: %w", i, err)
		}
		pool.Longs[i] = v
	}

	n, err = r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read double count: %w", err)
	}
	pool.Doubles = make([]float64, n)
	for i := range pool.Doubles {
		v, err := r.ReadF64()
		if err != nil {
			return nil, fmt.Errorf("failed to read double[%d]: %w", i, err)
		}
		pool.Doubles[i] = v
	}

	n, err = r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read string count: %w", err)
	}
	pool.Strings = make([]string, n)
	for i := range pool.Strings {
		units, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("failed to read string[%d] length: %w", i, err)
		}
		raw, err := r.ReadBytes(int(units) * 2)
		if err != nil {
			return nil, fmt.Errorf("failed to read string[%d] units: %w", i, err)
		}
		pool.Strings[i] = decodeUTF16LE(raw, i, warnings)
		if units&1 != 0 {
			if err := r.Skip(2); err != nil {
				return nil, fmt.Errorf("failed to pad string[%d]: %w", i, err)
			}
		}
	}

	n, err = r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read octet count: %w", err)
	}
	pool.Octets = make([][]byte, n)
	for i := range pool.Octets {
		length, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("failed to read octet[%d] length: %w", i, err)
		}
		raw, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, fmt.Errorf("failed to read octet[%d] body: %w", i, err)
		}
		buf := make([]byte, len(raw))
		copy(buf, raw)
		pool.Octets[i] = buf
		if err := padTo4(r, int(length)); err != nil {
			return nil, fmt.Errorf("failed to pad octet[%d]: %w", i, err)
		}
	}

	return pool, nil
}

// padTo4 skips the padding bytes a block of n elements of 1-byte width
// needs to bring the cursor back to a multiple of 4.
func padTo4(r *reader.Reader, n int) error {
	pad := (4 - n%4) % 4
	if pad == 0 {
		return nil
	}
	return r.Skip(pad)
}

// decodeUTF16LE decodes raw UTF-16LE code units to a native string. On
// any decode failure — including unpaired surrogates in a truncated or
// corrupted file — it falls back to the hex: sentinel rather than
// losing data or panicking.
func decodeUTF16LE(raw []byte, index int, warnings *[]error) string {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err == nil {
		// The decoder substitutes U+FFFD for unpaired surrogates without
		// reporting an error, so pairing is checked here.
		for k := 0; k+1 < len(raw); k += 2 {
			u := uint16(raw[k]) | uint16(raw[k+1])<<8
			if u < 0xD800 || u >= 0xE000 {
				continue
			}
			if u < 0xDC00 && k+3 < len(raw) {
				if lo := uint16(raw[k+2]) | uint16(raw[k+3])<<8; lo >= 0xDC00 && lo < 0xE000 {
					k += 2
					continue
				}
			}
			err = fmt.Errorf("unpaired surrogate 0x%04X at code unit %d", u, k/2)
			break
		}
	}
	if err != nil {
		*warnings = append(*warnings, fmt.Errorf("string[%d]: %w: %v", index, ErrDecodeFailure, err))
		return "hex:" + hex.EncodeToString(raw)
	}
	return string(decoded)
}
