package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadFileType indicates the header's file type byte is not a recognized
	// data/index/memo variant.
	ErrBadFileType = errors.New("format: unrecognized file type")
	// ErrBadBlockSize indicates the max-table-size selector is out of range.
	ErrBadBlockSize = errors.New("format: block size selector out of range")
	// ErrWidthMismatch indicates the sum of field lengths disagrees with the
	// header's declared record width.
	ErrWidthMismatch = errors.New("format: record width mismatch")
	// ErrFieldCountMismatch indicates the decoded schema's field count disagrees
	// with the header's declared field count.
	ErrFieldCountMismatch = errors.New("format: field count mismatch")
	// ErrHeaderSizeMismatch indicates the header's declared header size disagrees
	// with the accumulated field descriptor and name region.
	ErrHeaderSizeMismatch = errors.New("format: header size mismatch")
)
