package container

import (
	"errors"
	"testing"

	"github.com/mabhi256/tjs2dis/internal/tjs2/reader"
)

func TestLoadDataAreaEmpty(t *testing.T) {
	r := reader.New(emptyDataSection())
	pool, err := loadDataArea(r, &[]error{})
	if err != nil {
		t.Fatalf("loadDataArea: %v", err)
	}
	if len(pool.Bytes) != 0 || len(pool.Strings) != 0 || len(pool.Octets) != 0 {
		t.Fatalf("loadDataArea on empty section produced non-empty pool: %+v", pool)
	}
}

func TestLoadDataAreaTypedValues(t *testing.T) {
	var b byteBuilder
	b.u32(dataTag).i32(0)

	b.i32(1).byte(7).pad4(1) // one byte: 7
	b.i32(1).u16(42).u16(0)  // one short: 42 (count odd -> pad 2 bytes)
	b.i32(1).i32(-5)         // one int: -5
	b.i32(1).u64(123456789)  // one long
	b.i32(1).f64(3.5)        // one double
	b.i32(1).i32(5).utf16le("hello").u16(0) // one string "hello" (5 units, odd -> pad)
	b.i32(1).i32(3).bytes([]byte{0xAA, 0xBB, 0xCC}).pad4(3) // one octet

	r := reader.New(b.bytesLen())
	pool, err := loadDataArea(r, &[]error{})
	if err != nil {
		t.Fatalf("loadDataArea: %v", err)
	}

	if v, ok := pool.Byte(0); !ok || v != 7 {
		t.Errorf("Byte(0) = %d, %v; want 7, true", v, ok)
	}
	if v, ok := pool.Short(0); !ok || v != 42 {
		t.Errorf("Short(0) = %d, %v; want 42, true", v, ok)
	}
	if v, ok := pool.Int(0); !ok || v != -5 {
		t.Errorf("Int(0) = %d, %v; want -5, true", v, ok)
	}
	if v, ok := pool.Long(0); !ok || v != 123456789 {
		t.Errorf("Long(0) = %d, %v; want 123456789, true", v, ok)
	}
	if v, ok := pool.Double(0); !ok || v != 3.5 {
		t.Errorf("Double(0) = %v, %v; want 3.5, true", v, ok)
	}
	if v, ok := pool.String(0); !ok || v != "hello" {
		t.Errorf("String(0) = %q, %v; want \"hello\", true", v, ok)
	}
	if v, ok := pool.Octet(0); !ok || len(v) != 3 || v[0] != 0xAA {
		t.Errorf("Octet(0) = %v, %v; want [AA BB CC], true", v, ok)
	}
}

func TestLoadDataAreaBadTag(t *testing.T) {
	var b byteBuilder
	b.u32(0x12345678).i32(0)
	r := reader.New(b.bytesLen())
	if _, err := loadDataArea(r, &[]error{}); err == nil {
		t.Fatal("loadDataArea with bad tag: want error, got nil")
	}
}

func TestDecodeUTF16LEHexFallback(t *testing.T) {
	// An unpaired high surrogate (0xD800) with no following low surrogate
	// cannot decode as valid UTF-16 and must fall back to the hex sentinel.
	raw := []byte{0x00, 0xD8}
	var warnings []error
	s := decodeUTF16LE(raw, 0, &warnings)
	if s != "hex:00d8" {
		t.Fatalf("decodeUTF16LE(unpaired surrogate) = %q; want \"hex:00d8\"", s)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrDecodeFailure) {
		t.Fatalf("warnings = %v; want one ErrDecodeFailure", warnings)
	}
}
