package pxfile

import (
	"fmt"
	"io"

	"github.com/pxtable/pxdb/internal/crypt"
	"github.com/pxtable/pxdb/internal/format"
	"github.com/pxtable/pxdb/pkg/types"
)

// RecordIterator walks the block-linked-list in file order, yielding one
// decoded row per live record. It holds at most one block in memory.
type RecordIterator struct {
	doc *Document

	visited map[uint16]bool
	seq     uint32 // 1-based logical block index, for the deobfuscation keystream

	blockBuf    []byte
	cursor      int // index of the next record within the current block
	recordsUsed int

	nextBlock uint16
	done      bool
	yielded   uint32
}

func newRecordIterator(d *Document) *RecordIterator {
	return &RecordIterator{
		doc:       d,
		visited:   make(map[uint16]bool),
		nextBlock: d.hdr.FirstBlock,
	}
}

// Next decodes and returns the next record, or io.EOF once the block list
// is exhausted. A record-count mismatch against the header is recorded as
// a warning, not an error, once iteration completes.
func (it *RecordIterator) Next() ([]types.Value, error) {
	for {
		if it.done {
			return nil, io.EOF
		}
		if it.cursor < it.recordsUsed {
			rec, err := it.decodeCurrent()
			it.cursor++
			if err != nil {
				return nil, err
			}
			it.yielded++
			return rec, nil
		}
		if err := it.advanceBlock(); err != nil {
			return nil, err
		}
		if it.done {
			if it.yielded != it.doc.hdr.NumRecords {
				it.doc.addWarning(types.Warning{Kind: types.WarnRecordCountMismatch, FieldIndex: -1})
			}
			return nil, io.EOF
		}
	}
}

func (it *RecordIterator) advanceBlock() error {
	if it.nextBlock == 0 {
		it.done = true
		return nil
	}
	blockIdx := it.nextBlock
	if it.visited[blockIdx] {
		return &types.Error{Kind: types.ErrKindCorrupt, Msg: fmt.Sprintf("block cycle detected at block %d", blockIdx)}
	}
	it.visited[blockIdx] = true

	offset := int64(it.doc.hdr.HeaderSize) + int64(blockIdx-1)*int64(it.doc.hdr.BlockSize)
	buf, err := it.doc.src.ReadAt(offset, it.doc.hdr.BlockSize)
	if err != nil {
		return err
	}

	it.seq++
	if it.doc.hdr.Encrypted() {
		crypt.DecryptBlock(buf, it.seq, it.doc.key, format.BlockHeaderSize)
	}

	bh, err := format.ParseBlockHeader(buf, int(it.doc.hdr.RecordWidth))
	if err != nil {
		return &types.Error{Kind: types.ErrKindCorrupt, Msg: "malformed block header", Err: err}
	}
	if !bh.Empty && format.BlockHeaderSize+bh.RecordsUsed*int(it.doc.hdr.RecordWidth) > len(buf) {
		return &types.Error{Kind: types.ErrKindCorrupt, Msg: fmt.Sprintf("block %d records-used exceeds block size", blockIdx)}
	}

	it.blockBuf = buf
	it.nextBlock = bh.Next
	it.cursor = 0
	if bh.Empty {
		it.recordsUsed = 0
	} else {
		it.recordsUsed = bh.RecordsUsed
	}
	return nil
}

func (it *RecordIterator) decodeCurrent() ([]types.Value, error) {
	width := int(it.doc.hdr.RecordWidth)
	start := format.BlockHeaderSize + it.cursor*width
	cell := it.blockBuf[start : start+width]

	values := make([]types.Value, len(it.doc.decs))
	off := 0
	for i, dec := range it.doc.decs {
		length := it.doc.sch.Fields[i].ByteWidth()
		v, warn, err := dec.Decode(cell[off : off+length])
		if err != nil {
			return nil, err
		}
		if warn != nil {
			warn.FieldIndex = i
			it.doc.addWarning(*warn)
		}
		values[i] = v
		off += length
	}
	return values, nil
}
