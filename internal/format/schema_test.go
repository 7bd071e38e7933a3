package format

import "testing"

// buildSchemaBuf appends a field-descriptor table and name region for the
// given fields onto a header-sized buffer, returning the buffer and the
// header size the built region actually consumes.
func buildSchemaBuf(fields []FieldDesc) ([]byte, uint16) {
	b := make([]byte, FieldDescTableOffset)
	for _, f := range fields {
		b = append(b, byte(f.Type), f.Length)
	}
	for _, f := range fields {
		b = append(b, f.NameRaw...)
		b = append(b, 0)
	}
	return b, uint16(len(b))
}

func TestParseSchemaSuccess(t *testing.T) {
	want := []FieldDesc{
		{Type: TypeAlpha, Length: 24, NameRaw: []byte("Name")},
		{Type: TypeAlpha, Length: 24, NameRaw: []byte("Capital")},
		{Type: TypeAlpha, Length: 24, NameRaw: []byte("Continent")},
		{Type: TypeNumber, Length: 8, NameRaw: []byte("Area")},
		{Type: TypeNumber, Length: 8, NameRaw: []byte("Population")},
	}
	buf, headerSize := buildSchemaBuf(want)

	hdr := Header{FieldCount: uint8(len(want)), RecordWidth: 24 + 24 + 24 + 8 + 8, HeaderSize: headerSize}
	schema, err := ParseSchema(buf, hdr)
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(schema.Fields) != len(want) {
		t.Fatalf("field count mismatch: got %d want %d", len(schema.Fields), len(want))
	}
	for i, f := range schema.Fields {
		if f.Type != want[i].Type || f.Length != want[i].Length || string(f.NameRaw) != string(want[i].NameRaw) {
			t.Fatalf("field %d mismatch: got %+v want %+v", i, f, want[i])
		}
	}
}

func TestParseSchemaWidthMismatch(t *testing.T) {
	fields := []FieldDesc{{Type: TypeAlpha, Length: 24, NameRaw: []byte("Name")}}
	buf, headerSize := buildSchemaBuf(fields)

	hdr := Header{FieldCount: 1, RecordWidth: 99, HeaderSize: headerSize}
	if _, err := ParseSchema(buf, hdr); err == nil {
		t.Fatalf("expected width mismatch error")
	}
}

func TestParseSchemaHeaderSizeMismatch(t *testing.T) {
	fields := []FieldDesc{{Type: TypeAlpha, Length: 24, NameRaw: []byte("Name")}}
	buf, headerSize := buildSchemaBuf(fields)

	hdr := Header{FieldCount: 1, RecordWidth: 24, HeaderSize: headerSize - 1}
	if _, err := ParseSchema(buf, hdr); err == nil {
		t.Fatalf("expected header size mismatch error")
	}
}

func TestParseSchemaTruncated(t *testing.T) {
	fields := []FieldDesc{{Type: TypeAlpha, Length: 24, NameRaw: []byte("Name")}}
	buf, headerSize := buildSchemaBuf(fields)
	buf = buf[:FieldDescTableOffset+FieldDescEntrySize] // only one descriptor entry, no name region

	hdr := Header{FieldCount: 2, RecordWidth: 24, HeaderSize: headerSize}
	if _, err := ParseSchema(buf, hdr); err == nil {
		t.Fatalf("expected truncation error")
	}
}
