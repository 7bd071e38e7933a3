// Package blob resolves blob-bearing cells (Memo/FmtMemo/Binary/Graphic/Ole)
// either inline, from the tail carried in the main-file cell, or externally,
// from the companion .MB file.
package blob

import (
	"fmt"

	"github.com/pxtable/pxdb/internal/buf"
	"github.com/pxtable/pxdb/internal/format"
)

// Ref is a parsed blob descriptor from a main-file cell.
type Ref struct {
	Inline      bool
	InlineTail  []byte // valid when Inline
	BlockIndex  uint8  // selector within the .MB block's index table
	BlockNumber uint32 // .MB block number; byte offset = BlockNumber * format.MBBlockSize
	Length      uint32
	Modifier    uint16
}

// ParseRef decodes the trailing blob descriptor of a cell: declaredLen−10
// bytes of inline tail, then a 4-byte offset descriptor, 4-byte length, and
// 2-byte modifier.
func ParseRef(cell []byte) (Ref, error) {
	if len(cell) < format.BlobDescriptorSize {
		return Ref{}, fmt.Errorf("blob: %w", format.ErrTruncated)
	}
	tailLen := len(cell) - format.BlobDescriptorSize
	tail := cell[:tailLen]

	offsetDesc := buf.U32BE(cell[tailLen:])
	length := buf.U32BE(cell[tailLen+4:])
	modifier := buf.U16BE(cell[tailLen+8:])

	if length <= uint32(tailLen) {
		return Ref{Inline: true, InlineTail: tail[:length], Length: length}, nil
	}

	blockIndex := uint8(offsetDesc & 0xFF)
	blockNumTimes16 := offsetDesc >> 8
	blockNumber := blockNumTimes16 / 16

	return Ref{
		BlockIndex:  blockIndex,
		BlockNumber: blockNumber,
		Length:      length,
		Modifier:    modifier,
	}, nil
}
