// Package pxdb reads legacy Paradox .DB (and companion .MB blob) table
// files. It is read-only: there is no write, merge, or repair path.
package pxdb

import (
	"io"

	"github.com/pxtable/pxdb/internal/pxfile"
	"github.com/pxtable/pxdb/pkg/types"
)

// Document is an open Paradox table. Its zero value is not usable; obtain
// one from Open. A Document is not safe for concurrent mutation — only one
// iterator may be live at a time — but independent Documents over the same
// path may coexist since files are opened read-only.
type Document struct {
	doc *pxfile.Document
}

// Open reads the header and schema of the .DB file at path and locates its
// companion .MB file, if any. opts.Password is required when the table is
// encrypted; opts.Encoding overrides the codepage label the header names.
func Open(path string, opts types.OpenOptions) (*Document, error) {
	doc, err := pxfile.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Metadata returns the table's record count, field list, and codepage.
func (d *Document) Metadata() types.Metadata {
	return d.doc.Metadata()
}

// FieldIndex returns the zero-based position of the named field.
func (d *Document) FieldIndex(name string) (int, bool) {
	return d.doc.FieldIndex(name)
}

// Warnings returns the non-fatal issues observed so far: missing blob
// files, modifier mismatches, record-count disagreement, unknown field
// types.
func (d *Document) Warnings() []types.Warning {
	return d.doc.Warnings()
}

// Close releases the underlying file handles.
func (d *Document) Close() error {
	return d.doc.Close()
}

// Records returns an iterator over this table's rows, in block-list order.
// At most one iterator should be driven per Document.
func (d *Document) Records() (*RecordIterator, error) {
	it, err := d.doc.Records()
	if err != nil {
		return nil, err
	}
	return &RecordIterator{doc: d, it: it}, nil
}

// RecordIterator yields one Record at a time.
type RecordIterator struct {
	doc *Document
	it  *pxfile.RecordIterator
}

// Next returns the next record, or io.EOF when exhausted.
func (it *RecordIterator) Next() (*Record, error) {
	values, err := it.it.Next()
	if err != nil {
		return nil, err
	}
	return &Record{doc: it.doc, values: values}, nil
}

// Record is one decoded row. Values are addressed by position or by field
// name.
type Record struct {
	doc    *Document
	values []types.Value
}

// Values returns every field's decoded value, in schema order.
func (r *Record) Values() []types.Value {
	return r.values
}

// Value returns the value at field index i.
func (r *Record) Value(i int) types.Value {
	if i < 0 || i >= len(r.values) {
		return types.Null()
	}
	return r.values[i]
}

// ValueByName returns the value of the named field, or ErrInvalidArgument
// if the table has no such field.
func (r *Record) ValueByName(name string) (types.Value, error) {
	i, ok := r.doc.FieldIndex(name)
	if !ok {
		return types.Value{}, types.ErrInvalidArgument
	}
	return r.values[i], nil
}

// Table is the result of ReadAll: every record materialized in memory.
type Table struct {
	Metadata types.Metadata
	Records  [][]types.Value
	Warnings []types.Warning
}

// ReadAll opens path, decodes every record into memory, and closes the
// table. It is a convenience for small tables; large tables should use
// Open and Records instead.
func ReadAll(path string, opts types.OpenOptions) (Table, error) {
	doc, err := Open(path, opts)
	if err != nil {
		return Table{}, err
	}
	defer doc.Close()

	it, err := doc.Records()
	if err != nil {
		return Table{}, err
	}

	var rows [][]types.Value
	for {
		rec, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, rec.Values())
	}

	return Table{
		Metadata: doc.Metadata(),
		Records:  rows,
		Warnings: doc.Warnings(),
	}, nil
}
