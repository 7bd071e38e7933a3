package format

import (
	"fmt"

	"github.com/pxtable/pxdb/internal/buf"
)

// Header captures the fixed-size portion of a Paradox table header. All
// multi-byte fields here are little-endian; see consts.go for offsets.
type Header struct {
	RecordWidth      uint16
	HeaderSize       uint16
	FileType         FileType
	MaxTableSize     uint8
	BlockSize        int
	NumRecords       uint32
	NextBlock        uint16
	FileBlocks       uint16
	FirstBlock       uint16
	LastBlock        uint16
	ModifyCount      uint16
	FileVersion      uint8
	Encryption       uint32
	AutoIncRef       uint8
	IndexFields      uint8
	HeaderVersion    uint16
	FieldCount       uint8
	PrimaryKeyCount  uint8
	CodePage         uint16
}

// Encrypted reports whether the header carries a non-zero password checksum.
func (h Header) Encrypted() bool {
	return h.Encryption != 0
}

// ParseHeader decodes the fixed header at the start of a .DB/.MB file. It
// does not read the field-descriptor table or name region; see ParseSchema.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < FieldDescTableOffset {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}

	maxTableSize := b[MaxTableSizeOffset]
	if maxTableSize < MinMaxTableSize || maxTableSize > MaxMaxTableSize {
		return Header{}, fmt.Errorf("header: %w", ErrBadBlockSize)
	}

	fileType := FileType(b[FileTypeOffset])
	if !IsRecognizedFileType(fileType) {
		return Header{}, fmt.Errorf("header: %w", ErrBadFileType)
	}

	h := Header{
		RecordWidth:     buf.U16LE(b[RecordWidthOffset:]),
		HeaderSize:      buf.U16LE(b[HeaderSizeOffset:]),
		FileType:        fileType,
		MaxTableSize:    maxTableSize,
		BlockSize:       int(maxTableSize) * BlockSizeUnit,
		NumRecords:      buf.U32LE(b[NumRecordsOffset:]),
		NextBlock:       buf.U16LE(b[NextBlockOffset:]),
		FileBlocks:      buf.U16LE(b[FileBlocksOffset:]),
		FirstBlock:      buf.U16LE(b[FirstBlockOffset:]),
		LastBlock:       buf.U16LE(b[LastBlockOffset:]),
		ModifyCount:     buf.U16LE(b[ModifyCountOffset:]),
		FileVersion:     b[FileVersionOffset],
		Encryption:      buf.U32LE(b[EncryptionOffset:]),
		AutoIncRef:      b[AutoIncRefOffset],
		IndexFields:     b[IndexFieldsOffset],
		HeaderVersion:   buf.U16LE(b[HeaderVerOffset:]),
		FieldCount:      b[FieldCountOffset],
		PrimaryKeyCount: b[PrimaryKeysOffset],
	}
	if h.HeaderVersion >= HeaderVersionCodePage {
		h.CodePage = buf.U16LE(b[CodePageOffset:])
	}
	return h, nil
}
