package format

import "fmt"

// FieldDesc is one column definition: a type code, a declared length, and
// the field's raw, not-yet-recoded name bytes. Codepage recoding of the
// name happens above this package, in internal/codepage.
//
// Length means the cell's byte width for every type except BCD, where the
// descriptor byte instead carries the number of digits after the decimal
// point; a BCD cell always occupies BCDCellSize bytes on disk. Use
// ByteWidth for record-layout arithmetic and Length directly only when
// decoding BCD digits.
type FieldDesc struct {
	Type    FieldType
	Length  uint8
	NameRaw []byte
}

// ByteWidth is the number of bytes this field occupies in a record, for use
// in width-sum validation and cell slicing.
func (f FieldDesc) ByteWidth() int {
	if f.Type == TypeBCD {
		return BCDCellSize
	}
	return int(f.Length)
}

// Schema is the ordered sequence of field descriptors whose lengths sum to
// the record width.
type Schema struct {
	Fields []FieldDesc
}

// ParseSchema decodes the field-descriptor table and the field-name region
// that follows it. hdr must already have been produced by ParseHeader
// against the same buffer.
func ParseSchema(b []byte, hdr Header) (Schema, error) {
	off := FieldDescTableOffset
	fields := make([]FieldDesc, hdr.FieldCount)
	widthSum := 0

	for i := range fields {
		if off+FieldDescEntrySize > len(b) {
			return Schema{}, fmt.Errorf("schema: %w", ErrTruncated)
		}
		fields[i].Type = FieldType(b[off])
		fields[i].Length = b[off+1]
		widthSum += fields[i].ByteWidth()
		off += FieldDescEntrySize
	}

	if widthSum != int(hdr.RecordWidth) {
		return Schema{}, fmt.Errorf("schema: %w", ErrWidthMismatch)
	}

	for i := range fields {
		start := off
		for off < len(b) && b[off] != 0 {
			off++
		}
		if off >= len(b) {
			return Schema{}, fmt.Errorf("schema: %w", ErrTruncated)
		}
		fields[i].NameRaw = append([]byte(nil), b[start:off]...)
		off++ // skip the NUL terminator
	}

	if len(fields) != int(hdr.FieldCount) {
		return Schema{}, fmt.Errorf("schema: %w", ErrFieldCountMismatch)
	}
	if off > int(hdr.HeaderSize) {
		return Schema{}, fmt.Errorf("schema: %w", ErrHeaderSizeMismatch)
	}

	return Schema{Fields: fields}, nil
}
