package format

import (
	"fmt"

	"github.com/pxtable/pxdb/internal/buf"
)

// BlockHeader is the 6-byte header preceding every block's record payload.
type BlockHeader struct {
	Next        uint16
	Prev        uint16
	Empty       bool
	RecordsUsed int
}

// ParseBlockHeader decodes the block header at the start of b. recordWidth
// is required to turn the stored records-used offset indicator into an
// actual count.
func ParseBlockHeader(b []byte, recordWidth int) (BlockHeader, error) {
	if len(b) < BlockHeaderSize {
		return BlockHeader{}, fmt.Errorf("block header: %w", ErrTruncated)
	}

	raw := buf.U16LE(b[BlockRecordsUsedOffset:])
	h := BlockHeader{
		Next: buf.U16LE(b[BlockNextOffset:]),
		Prev: buf.U16LE(b[BlockPrevOffset:]),
	}

	// 0xFFFF, read as int16, is -1; either reading signals an empty block.
	if raw == EmptyBlockMarker || int16(raw) < 0 {
		h.Empty = true
		return h, nil
	}
	if recordWidth <= 0 {
		return BlockHeader{}, fmt.Errorf("block header: %w", ErrWidthMismatch)
	}
	h.RecordsUsed = int(raw)/recordWidth + 1
	return h, nil
}
