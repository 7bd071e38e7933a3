// Package format houses low-level, allocation-free decoders for the Paradox
// table file format: the fixed header, the field-descriptor table, and the
// block header that precedes every run of records. Nothing in this package
// performs I/O; it only interprets byte slices handed to it by callers that
// already own the bytes.
package format

// Header field offsets, in bytes from the start of the file. All multi-byte
// integers in the Paradox header are little-endian; record cell payloads
// decoded by internal/codec are big-endian, which is an unrelated convention.
const (
	RecordWidthOffset  = 0x00 // 2, bytes per record
	HeaderSizeOffset   = 0x02 // 2, header byte size
	FileTypeOffset     = 0x04 // 1, file type code
	MaxTableSizeOffset = 0x05 // 1, block-size selector, 1..32
	NumRecordsOffset   = 0x06 // 4, number of records
	NextBlockOffset    = 0x0A // 2, next block to allocate
	FileBlocksOffset   = 0x0C // 2, total blocks allocated
	FirstBlockOffset   = 0x0E // 2, first data block
	LastBlockOffset    = 0x10 // 2, last data block
	ModifyCountOffset  = 0x14 // 2, modify count
	FileVersionOffset  = 0x21 // 1, file version id
	EncryptionOffset   = 0x22 // 4, password checksum; 0 = not encrypted
	AutoIncRefOffset   = 0x2B // 1, auto-increment refinement flag
	IndexFieldsOffset  = 0x2E // 1, indexed-field count
	HeaderVerOffset    = 0x30 // 2, header version
	FieldCountOffset   = 0x38 // 1, field count
	PrimaryKeysOffset  = 0x39 // 1, primary key field count
	CodePageOffset     = 0x3C // 2, DOS codepage id; header version >= 5 only

	// FieldDescTableOffset is where the (type, length) field-descriptor table
	// begins for every header version this package supports.
	FieldDescTableOffset = 0x78
)

// Header versions gate which fields are meaningful.
const (
	HeaderVersionExtended = 4 // header fields beyond the name region are valid
	HeaderVersionCodePage = 5 // CodePageOffset is valid
)

// FieldDescEntrySize is the width of one field-descriptor table entry: a
// 1-byte type code followed by a 1-byte declared length.
const FieldDescEntrySize = 2

// BlockSizeUnit is the multiplier applied to the header's max-table-size
// selector to derive the block size in bytes.
const BlockSizeUnit = 1024

// MinMaxTableSize and MaxMaxTableSize bound the max-table-size selector.
const (
	MinMaxTableSize = 1
	MaxMaxTableSize = 32
)

// BlockHeaderSize is the size, in bytes, of the header preceding every
// block's record payload.
const BlockHeaderSize = 6

// Block header field offsets, relative to the start of the block.
const (
	BlockNextOffset        = 0x00 // 2, next block index
	BlockPrevOffset        = 0x02 // 2, previous block index
	BlockRecordsUsedOffset = 0x04 // 2, (records_used-1) * record_width, or empty sentinel
)

// EmptyBlockMarker is the records-used field value denoting an empty block;
// it is 0xFFFF when read unsigned, or -1 when read as a signed int16.
const EmptyBlockMarker = 0xFFFF

// BlobDescriptorSize is the width of the trailing descriptor a blob-typed
// cell carries in the main file: a 4-byte offset descriptor, a 4-byte blob
// length, and a 2-byte modifier.
const BlobDescriptorSize = 10

// MBBlockSize is the fixed block size of a .MB blob file.
const MBBlockSize = 4096

// MBBlockType identifies the layout of one 4096-byte .MB block.
type MBBlockType uint8

const (
	MBBlockSingleBlob MBBlockType = 2
	MBBlockMultiBlob  MBBlockType = 3
	MBBlockFree       MBBlockType = 4
)

// BCDCellSize is the fixed on-disk byte width of a BCD cell: one sign byte
// followed by 16 packed-digit bytes (32 digit nibbles). The field
// descriptor's declared length instead carries the fractional-digit count
// for this type.
const BCDCellSize = 17

// FieldType is the closed set of Paradox column types.
type FieldType uint8

// Type codes as stored in the field-descriptor table.
const (
	TypeAlpha     FieldType = 0x01
	TypeDate      FieldType = 0x02
	TypeShort     FieldType = 0x03
	TypeLong      FieldType = 0x04
	TypeCurrency  FieldType = 0x05
	TypeNumber    FieldType = 0x06
	TypeLogical   FieldType = 0x09
	TypeMemoBlob  FieldType = 0x0C
	TypeBLOB      FieldType = 0x0D
	TypeFmtMemo   FieldType = 0x0E
	TypeOLE       FieldType = 0x0F
	TypeGraphic   FieldType = 0x10
	TypeTime      FieldType = 0x14
	TypeTimestamp FieldType = 0x15
	TypeAutoInc   FieldType = 0x16
	TypeBCD       FieldType = 0x17
	TypeBytes     FieldType = 0x18
)

// String renders the type code using human-readable field type names, for
// diagnostics and metadata.
func (t FieldType) String() string {
	switch t {
	case TypeAlpha:
		return "Alpha"
	case TypeDate:
		return "Date"
	case TypeShort:
		return "Short"
	case TypeLong:
		return "Long"
	case TypeCurrency:
		return "Currency"
	case TypeNumber:
		return "Number"
	case TypeLogical:
		return "Logical"
	case TypeMemoBlob:
		return "Memo"
	case TypeBLOB:
		return "Binary"
	case TypeFmtMemo:
		return "FmtMemo"
	case TypeOLE:
		return "Ole"
	case TypeGraphic:
		return "Graphic"
	case TypeTime:
		return "Time"
	case TypeTimestamp:
		return "Timestamp"
	case TypeAutoInc:
		return "Autoincrement"
	case TypeBCD:
		return "BCD"
	case TypeBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// IsBlob reports whether cells of this type carry a BlobRef rather than an
// inline value.
func (t FieldType) IsBlob() bool {
	switch t {
	case TypeMemoBlob, TypeFmtMemo, TypeBLOB, TypeOLE, TypeGraphic:
		return true
	default:
		return false
	}
}

// FileType is the file-type byte at FileTypeOffset.
type FileType uint8

// Recognized file-type codes. Index files and secondary-index files are
// recognized (so ParseHeader does not reject them outright) but this
// package's record slicer is only exercised against data and data-with-memo
// variants; .PX/.XNN traversal is out of scope.
const (
	FileTypeIndexDB       FileType = 0x00
	FileTypePrimIdx       FileType = 0x01
	FileTypeNonIdxDB      FileType = 0x02
	FileTypeNonIncSecIdx  FileType = 0x03
	FileTypeSecIdx        FileType = 0x04
	FileTypeIncSecIdx     FileType = 0x05
	FileTypeNonIncSecIdxG FileType = 0x06
	FileTypeSecIdxG       FileType = 0x07
)

// HasBlobFileType reports whether this file type indicates the table was
// created with an associated .MB blob file.
func HasBlobFileType(ft FileType) bool {
	switch ft {
	case FileTypeNonIdxDB, FileTypeNonIncSecIdx, FileTypeNonIncSecIdxG:
		return true
	default:
		return false
	}
}

// IsRecognizedFileType reports whether ft is one of the eight codes pxlib
// and this package recognize.
func IsRecognizedFileType(ft FileType) bool {
	return ft <= FileTypeSecIdxG
}
