package reader

import "testing"

func TestReadPrimitives(t *testing.T) {
	data := []byte{
		0x01, 0x00, // u16 = 1
		0xFF, 0xFF, // i16 = -1
		0x02, 0x00, 0x00, 0x00, // u32 = 2
		0xFE, 0xFF, 0xFF, 0xFF, // i32 = -2
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // u64 = 3
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F, // f64 = 1.0
	}
	r := New(data)

	if v, err := r.ReadU16(); err != nil || v != 1 {
		t.Fatalf("ReadU16 = %d, %v; want 1, nil", v, err)
	}
	if v, err := r.ReadI16(); err != nil || v != -1 {
		t.Fatalf("ReadI16 = %d, %v; want -1, nil", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 2 {
		t.Fatalf("ReadU32 = %d, %v; want 2, nil", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -2 {
		t.Fatalf("ReadI32 = %d, %v; want -2, nil", v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != 3 {
		t.Fatalf("ReadU64 = %d, %v; want 3, nil", v, err)
	}
	if v, err := r.ReadF64(); err != nil || v != 1.0 {
		t.Fatalf("ReadF64 = %v, %v; want 1.0, nil", v, err)
	}
	if r.Tell() != len(data) {
		t.Fatalf("Tell() = %d; want %d", r.Tell(), len(data))
	}
}

func TestReadTruncated(t *testing.T) {
	r := New([]byte{0x01})
	if _, err := r.ReadU32(); err == nil {
		t.Fatal("ReadU32 on 1 byte: want error, got nil")
	}
}

func TestSeekSkip(t *testing.T) {
	r := New(make([]byte, 8))
	if err := r.Seek(4); err != nil {
		t.Fatalf("Seek(4): %v", err)
	}
	if r.Tell() != 4 {
		t.Fatalf("Tell() = %d; want 4", r.Tell())
	}
	if err := r.Skip(2); err != nil {
		t.Fatalf("Skip(2): %v", err)
	}
	if r.Tell() != 6 {
		t.Fatalf("Tell() = %d; want 6", r.Tell())
	}
	if err := r.Seek(9); err == nil {
		t.Fatal("Seek past end: want error, got nil")
	}
	if err := r.Skip(-1); err == nil {
		t.Fatal("Skip negative: want error, got nil")
	}
}

func TestReadBytesExactLength(t *testing.T) {
	r := New([]byte{1, 2, 3, 4})
	b, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes(3): %v", err)
	}
	if len(b) != 3 || b[0] != 1 || b[2] != 3 {
		t.Fatalf("ReadBytes(3) = %v; want [1 2 3]", b)
	}
	if r.Tell() != 3 {
		t.Fatalf("Tell() = %d; want 3", r.Tell())
	}
}
