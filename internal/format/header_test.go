package format

import (
	"encoding/binary"
	"testing"
)

func buildHeader(fieldCount uint8, recordWidth, headerSize uint16, fileType byte, maxTableSize byte) []byte {
	b := make([]byte, FieldDescTableOffset)
	binary.LittleEndian.PutUint16(b[RecordWidthOffset:], recordWidth)
	binary.LittleEndian.PutUint16(b[HeaderSizeOffset:], headerSize)
	b[FileTypeOffset] = fileType
	b[MaxTableSizeOffset] = maxTableSize
	binary.LittleEndian.PutUint32(b[NumRecordsOffset:], 18)
	binary.LittleEndian.PutUint16(b[FirstBlockOffset:], 1)
	binary.LittleEndian.PutUint16(b[LastBlockOffset:], 3)
	b[FieldCountOffset] = fieldCount
	binary.LittleEndian.PutUint16(b[HeaderVerOffset:], HeaderVersionCodePage)
	binary.LittleEndian.PutUint16(b[CodePageOffset:], 1252)
	return b
}

func TestParseHeaderSuccess(t *testing.T) {
	b := buildHeader(5, 88, 0x78, byte(FileTypeNonIdxDB), 1)

	hdr, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.RecordWidth != 88 {
		t.Fatalf("record width mismatch: %+v", hdr)
	}
	if hdr.BlockSize != BlockSizeUnit {
		t.Fatalf("block size mismatch: got %d", hdr.BlockSize)
	}
	if hdr.NumRecords != 18 {
		t.Fatalf("num records mismatch: %+v", hdr)
	}
	if hdr.CodePage != 1252 {
		t.Fatalf("codepage mismatch: %+v", hdr)
	}
	if hdr.Encrypted() {
		t.Fatalf("expected non-encrypted header")
	}
}

func TestParseHeaderErrors(t *testing.T) {
	b := buildHeader(5, 88, 0x78, byte(FileTypeNonIdxDB), 1)

	if _, err := ParseHeader(b[:10]); err == nil {
		t.Fatalf("expected truncation error")
	}

	bad := append([]byte(nil), b...)
	bad[MaxTableSizeOffset] = 0
	if _, err := ParseHeader(bad); err == nil {
		t.Fatalf("expected block size error")
	}

	bad = append([]byte(nil), b...)
	bad[FileTypeOffset] = 0xFF
	if _, err := ParseHeader(bad); err == nil {
		t.Fatalf("expected file type error")
	}
}
