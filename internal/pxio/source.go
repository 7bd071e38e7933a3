// Package pxio provides the seekable, read-only byte source the rest of the
// engine is built on: fixed-size reads at an absolute offset, backed by the
// OS file. No caching contract is implied; callers (internal/pxfile) hold at
// most one block buffer at a time.
package pxio

import (
	"fmt"
	"os"

	"github.com/pxtable/pxdb/pkg/types"
)

// Source is a positioned, read-only view over one file.
type Source struct {
	path string
	f    *os.File
	size int64
}

// Open opens path for random-access reads. It does not read any bytes.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &types.Error{Kind: types.ErrKindIO, Msg: "File not found", Err: err}
		}
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "failed to open " + path, Err: err}
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "failed to stat " + path, Err: err}
	}
	return &Source{path: path, f: f, size: st.Size()}, nil
}

// Path returns the path this source was opened from.
func (s *Source) Path() string { return s.path }

// Size returns the file size in bytes.
func (s *Source) Size() int64 { return s.size }

// ReadAt reads exactly n bytes at absolute offset off. A short read is an
// Io error; this package never returns a partial buffer.
func (s *Source) ReadAt(off int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := s.f.ReadAt(buf, off)
	if err != nil || read != n {
		return nil, &types.Error{
			Kind: types.ErrKindIO,
			Msg:  fmt.Sprintf("short read at offset %d in %s", off, s.path),
			Err:  err,
		}
	}
	return buf, nil
}

// Close releases the underlying file handle.
func (s *Source) Close() error {
	return s.f.Close()
}
