package blob

import (
	"encoding/binary"
	"testing"
)

func TestParseRefInline(t *testing.T) {
	// tail (3 bytes) + descriptor(4) + length(4) + modifier(2); length<=tailLen
	cell := make([]byte, 3+10)
	copy(cell, []byte("abc"))
	binary.BigEndian.PutUint32(cell[3:], 0)
	binary.BigEndian.PutUint32(cell[7:], 3)
	binary.BigEndian.PutUint16(cell[11:], 0)

	ref, err := ParseRef(cell)
	if err != nil {
		t.Fatalf("ParseRef: %v", err)
	}
	if !ref.Inline {
		t.Fatalf("expected inline ref")
	}
	if string(ref.InlineTail) != "abc" {
		t.Fatalf("InlineTail = %q, want abc", ref.InlineTail)
	}
}

func TestParseRefExternal(t *testing.T) {
	cell := make([]byte, 0+10)
	// block_index_in_mb = 2, block_number = 5 -> offsetDesc = (5*16)<<8 | 2
	offsetDesc := uint32(5*16)<<8 | 2
	binary.BigEndian.PutUint32(cell[0:], offsetDesc)
	binary.BigEndian.PutUint32(cell[4:], 100)
	binary.BigEndian.PutUint16(cell[8:], 7)

	ref, err := ParseRef(cell)
	if err != nil {
		t.Fatalf("ParseRef: %v", err)
	}
	if ref.Inline {
		t.Fatalf("expected external ref")
	}
	if ref.BlockIndex != 2 {
		t.Fatalf("BlockIndex = %d, want 2", ref.BlockIndex)
	}
	if ref.BlockNumber != 5 {
		t.Fatalf("BlockNumber = %d, want 5", ref.BlockNumber)
	}
	if ref.Length != 100 || ref.Modifier != 7 {
		t.Fatalf("Length/Modifier = %d/%d, want 100/7", ref.Length, ref.Modifier)
	}
}

func TestParseRefTruncated(t *testing.T) {
	if _, err := ParseRef(make([]byte, 5)); err == nil {
		t.Fatalf("expected truncation error")
	}
}
