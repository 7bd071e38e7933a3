package blob

import (
	"fmt"

	"github.com/pxtable/pxdb/internal/buf"
	"github.com/pxtable/pxdb/internal/format"
	"github.com/pxtable/pxdb/internal/pxio"
	"github.com/pxtable/pxdb/pkg/types"
)

// blockHeaderSize is the fixed 3-byte header preceding every .MB block:
// a 1-byte block type and a 2-byte subsequent-blocks count.
const blockHeaderSize = 3

// indexEntrySize is the width of one (offset, length, modifier) triple in a
// multi-blob block's index table.
const indexEntrySize = 8

// Resolver reads blob payloads from a .MB source. A nil Source means no
// companion blob file was found; external references then resolve to a
// WarnMissingBlob warning instead of an I/O error.
type Resolver struct {
	src *pxio.Source
}

// NewResolver wraps src, which may be nil when no .MB file was located.
func NewResolver(src *pxio.Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve returns the payload bytes for ref. ok is false when the blob is
// absent for a non-fatal reason (no .MB attached, modifier mismatch); in
// that case the caller should record warn and treat the cell as Null.
func (r *Resolver) Resolve(ref Ref) (payload []byte, ok bool, warn *types.Warning, err error) {
	if ref.Inline {
		return ref.InlineTail, true, nil, nil
	}
	if r.src == nil {
		return nil, false, &types.Warning{Kind: types.WarnMissingBlob}, nil
	}

	blockOffset := int64(ref.BlockNumber) * format.MBBlockSize
	header, err := r.src.ReadAt(blockOffset, blockHeaderSize)
	if err != nil {
		return nil, false, nil, fmt.Errorf("blob: reading block header: %w", err)
	}
	blockType := format.MBBlockType(header[0])

	switch blockType {
	case format.MBBlockSingleBlob:
		body, err := r.src.ReadAt(blockOffset+blockHeaderSize, int(ref.Length))
		if err != nil {
			return nil, false, nil, fmt.Errorf("blob: reading single-blob payload: %w", err)
		}
		return body, true, nil, nil

	case format.MBBlockMultiBlob:
		entryOff := blockOffset + blockHeaderSize + int64(ref.BlockIndex)*indexEntrySize
		entry, err := r.src.ReadAt(entryOff, indexEntrySize)
		if err != nil {
			return nil, false, nil, fmt.Errorf("blob: reading index entry: %w", err)
		}
		entryOffset := buf.U16BE(entry[0:])
		entryLength := buf.U16BE(entry[2:])
		entryModifier := buf.U16BE(entry[4:])
		if entryModifier != ref.Modifier {
			return nil, false, &types.Warning{Kind: types.WarnBlobMismatch}, nil
		}
		n := int(entryLength)
		if n > int(ref.Length) {
			n = int(ref.Length)
		}
		body, err := r.src.ReadAt(blockOffset+int64(entryOffset), n)
		if err != nil {
			return nil, false, nil, fmt.Errorf("blob: reading multi-blob payload: %w", err)
		}
		return body, true, nil, nil

	case format.MBBlockFree:
		return nil, false, nil, fmt.Errorf("blob: block %d is a free block", ref.BlockNumber)

	default:
		return nil, false, &types.Warning{Kind: types.WarnUnknownFieldType}, nil
	}
}
