package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pxtable/pxdb/internal/blob"
	"github.com/pxtable/pxdb/internal/format"
	"github.com/pxtable/pxdb/pkg/types"
)

func decoderFor(t format.FieldType, length uint8) *Decoder {
	return NewDecoder(format.FieldDesc{Type: t, Length: length}, "", blob.NewResolver(nil))
}

func TestDecodeAlpha(t *testing.T) {
	d := decoderFor(format.TypeAlpha, 10)
	cell := make([]byte, 10)
	copy(cell, []byte("hello"))
	v, warn, err := d.Decode(cell)
	if err != nil || warn != nil {
		t.Fatalf("Decode: warn=%v err=%v", warn, err)
	}
	if v.Text() != "hello" {
		t.Fatalf("Text() = %q, want hello", v.Text())
	}
}

func TestDecodeAlphaNull(t *testing.T) {
	d := decoderFor(format.TypeAlpha, 10)
	v, _, _ := d.Decode(make([]byte, 10))
	if !v.IsNull() {
		t.Fatalf("expected Null for all-zero Alpha cell")
	}
}

func TestDecodeShort(t *testing.T) {
	d := decoderFor(format.TypeShort, 2)
	cell := make([]byte, 2)
	binary.BigEndian.PutUint16(cell, 5|0x8000)
	v, _, _ := d.Decode(cell)
	if v.Int64() != 5 {
		t.Fatalf("Int64() = %d, want 5", v.Int64())
	}
}

func TestDecodeShortNull(t *testing.T) {
	d := decoderFor(format.TypeShort, 2)
	v, _, _ := d.Decode(make([]byte, 2))
	if !v.IsNull() {
		t.Fatalf("expected Null for MSB-clear Short cell")
	}
}

func TestDecodeLong(t *testing.T) {
	d := decoderFor(format.TypeLong, 4)
	cell := make([]byte, 4)
	binary.BigEndian.PutUint32(cell, 12345|0x80000000)
	v, _, _ := d.Decode(cell)
	if v.Int64() != 12345 {
		t.Fatalf("Int64() = %d, want 12345", v.Int64())
	}
}

func TestDecodeDate(t *testing.T) {
	d := decoderFor(format.TypeDate, 4)
	cell := make([]byte, 4)
	// raw = 719163 + 1 -> unix day 1
	binary.BigEndian.PutUint32(cell, uint32(719164)|0x80000000)
	v, _, _ := d.Decode(cell)
	if v.Days() != 1 {
		t.Fatalf("Days() = %d, want 1", v.Days())
	}
}

func TestDecodeDouble(t *testing.T) {
	d := decoderFor(format.TypeNumber, 8)
	cell := make([]byte, 8)
	bits := math.Float64bits(42.5)
	bits |= 1 << 63 // set sign bit: positive marker
	binary.BigEndian.PutUint64(cell, bits)
	v, _, _ := d.Decode(cell)
	if v.Float64() != 42.5 {
		t.Fatalf("Float64() = %v, want 42.5", v.Float64())
	}
}

func TestDecodeDoubleNull(t *testing.T) {
	d := decoderFor(format.TypeNumber, 8)
	v, _, _ := d.Decode(make([]byte, 8))
	if !v.IsNull() {
		t.Fatalf("expected Null for all-zero double cell")
	}
}

func TestDecodeLogical(t *testing.T) {
	d := decoderFor(format.TypeLogical, 1)
	v, _, _ := d.Decode([]byte{0x80})
	if !v.Bool() {
		t.Fatalf("expected true")
	}
	v2, _, _ := d.Decode([]byte{0x00})
	if !v2.IsNull() {
		t.Fatalf("expected Null for zero Logical cell")
	}
}

func TestDecodeBCD(t *testing.T) {
	// 123.45 with 2 fractional digits: sign byte 0x00 (positive), then 16
	// packed-digit bytes holding 32 digit nibbles "000...0012345" (27
	// leading zero digits, then 1 2 3 4 5).
	d := decoderFor(format.TypeBCD, 2)
	cell := make([]byte, format.BCDCellSize)
	cell[len(cell)-3] = 0x01
	cell[len(cell)-2] = 0x23
	cell[len(cell)-1] = 0x45
	v, warn, err := d.Decode(cell)
	if err != nil || warn != nil {
		t.Fatalf("Decode: warn=%v err=%v", warn, err)
	}
	if v.Text() != "123.45" {
		t.Fatalf("Text() = %q, want 123.45", v.Text())
	}
}

func TestDecodeBCDNegative(t *testing.T) {
	d := decoderFor(format.TypeBCD, 0)
	cell := make([]byte, format.BCDCellSize)
	cell[0] = 0xFF // sign byte: negative
	cell[len(cell)-1] = 0x07
	v, _, _ := d.Decode(cell)
	if v.Text() != "-7" {
		t.Fatalf("Text() = %q, want -7", v.Text())
	}
}

func TestDecodeBCDSentinel(t *testing.T) {
	// All-0xFF raw bytes: sign byte nonzero (negative) and every digit
	// nibble out of range (0xF), which is pxlib's encoding for a Null BCD
	// cell. With 6 fractional digits this decodes to the literal sentinel.
	d := decoderFor(format.TypeBCD, 6)
	cell := make([]byte, format.BCDCellSize)
	for i := range cell {
		cell[i] = 0xFF
	}
	v, _, _ := d.Decode(cell)
	if !v.IsNull() {
		t.Fatalf("expected Null for all-0xFF BCD cell")
	}
}

func TestDecodeBytes(t *testing.T) {
	d := decoderFor(format.TypeBytes, 3)
	v, _, _ := d.Decode([]byte{1, 2, 3})
	if string(v.Bytes()) != "\x01\x02\x03" {
		t.Fatalf("Bytes() mismatch")
	}
}

func TestDecodeUnknownType(t *testing.T) {
	d := decoderFor(format.FieldType(0xFE), 1)
	v, warn, err := d.Decode([]byte{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsNull() || warn == nil || warn.Kind != types.WarnUnknownFieldType {
		t.Fatalf("expected Null + unknown-type warning, got v=%v warn=%v", v, warn)
	}
}
