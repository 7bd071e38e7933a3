// Package pxfile owns the open→iterate→close lifecycle of one Paradox
// table: it holds the .DB and (optional) .MB file handles, derives the
// password key when the table is obfuscated, and drives the block walker
// and field decoders that turn raw bytes into types.Value rows.
package pxfile

import (
	"github.com/pxtable/pxdb/internal/blob"
	"github.com/pxtable/pxdb/internal/codec"
	"github.com/pxtable/pxdb/internal/codepage"
	"github.com/pxtable/pxdb/internal/crypt"
	"github.com/pxtable/pxdb/internal/format"
	"github.com/pxtable/pxdb/internal/pxio"
	"github.com/pxtable/pxdb/pkg/types"
)

// Document is the open handle over one .DB file and its companion .MB,
// if present. It is not safe for concurrent use; only one RecordIterator
// may be live at a time.
type Document struct {
	src   *pxio.Source
	mb    *pxio.Source
	hdr   format.Header
	sch   format.Schema
	cp    string
	key   uint32
	decs  []*codec.Decoder
	names []string
	index map[string]int

	closed   bool
	warnings []types.Warning
}

// headerReadSize is the number of leading bytes read to parse the fixed
// header before the full header (including the field-descriptor table and
// name region) is known to be HeaderSize bytes long.
const headerReadSize = 2048

// Open reads and validates a .DB file's header and schema, deriving the
// obfuscation key from opts.Password when the table is encrypted, and
// locates the companion .MB file when one exists alongside path.
func Open(path string, opts types.OpenOptions) (*Document, error) {
	src, err := pxio.Open(path)
	if err != nil {
		return nil, err
	}

	probe := headerReadSize
	if int64(probe) > src.Size() {
		probe = int(src.Size())
	}
	head, err := src.ReadAt(0, probe)
	if err != nil {
		src.Close()
		return nil, err
	}
	hdr, err := format.ParseHeader(head)
	if err != nil {
		src.Close()
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "malformed header", Err: err}
	}

	headerBuf := head
	if int(hdr.HeaderSize) > len(headerBuf) {
		headerBuf, err = src.ReadAt(0, int(hdr.HeaderSize))
		if err != nil {
			src.Close()
			return nil, err
		}
	}
	sch, err := format.ParseSchema(headerBuf, hdr)
	if err != nil {
		src.Close()
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "malformed schema", Err: err}
	}

	var key uint32
	if hdr.Encrypted() {
		if opts.Password == "" {
			src.Close()
			return nil, types.ErrEncrypted
		}
		if !crypt.Validate(opts.Password, hdr.Encryption) {
			src.Close()
			return nil, types.ErrBadPassword
		}
		key = hdr.Encryption
	}

	cp := opts.Encoding
	if cp == "" {
		cp = codepage.Label(hdr.CodePage)
	}

	var mb *pxio.Source
	if format.HasBlobFileType(hdr.FileType) {
		if mbPath, ok, err := pxio.FindBlobPath(path); err == nil && ok {
			mb, _ = pxio.Open(mbPath)
		}
	}

	doc := &Document{src: src, mb: mb, hdr: hdr, sch: sch, cp: cp, key: key}
	doc.buildDecoders()
	if mb == nil && hasBlobField(sch) {
		doc.addWarning(types.Warning{Kind: types.WarnMissingBlob, FieldIndex: -1})
	}
	return doc, nil
}

func hasBlobField(sch format.Schema) bool {
	for _, f := range sch.Fields {
		if f.Type.IsBlob() {
			return true
		}
	}
	return false
}

func (d *Document) buildDecoders() {
	resolver := blob.NewResolver(d.mb)
	d.decs = make([]*codec.Decoder, len(d.sch.Fields))
	d.names = make([]string, len(d.sch.Fields))
	d.index = make(map[string]int, len(d.sch.Fields))
	for i, f := range d.sch.Fields {
		d.decs[i] = codec.NewDecoder(f, d.cp, resolver)
		name := codepage.Recode(f.NameRaw, d.cp)
		d.names[i] = name
		d.index[name] = i
	}
}

func (d *Document) addWarning(w types.Warning) {
	d.warnings = append(d.warnings, w)
}

// Metadata returns the table's record count, field list, and codepage.
func (d *Document) Metadata() types.Metadata {
	fields := make([]types.FieldInfo, len(d.sch.Fields))
	for i, f := range d.sch.Fields {
		fields[i] = types.FieldInfo{
			Name: d.names[i],
			Type: publicFieldType(f.Type),
			Size: uint16(f.ByteWidth()),
		}
	}
	return types.Metadata{
		RecordCount: d.hdr.NumRecords,
		FieldCount:  uint16(len(fields)),
		Codepage:    d.cp,
		Fields:      fields,
	}
}

// FieldIndex returns the zero-based position of the named field.
func (d *Document) FieldIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Warnings returns the non-fatal issues accumulated so far.
func (d *Document) Warnings() []types.Warning {
	return append([]types.Warning(nil), d.warnings...)
}

// Close releases the .DB and .MB file handles. After Close, Records fails
// with ErrClosed; Metadata, FieldIndex and Warnings do not check the closed
// state and keep returning what was read at open.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	err := d.src.Close()
	if d.mb != nil {
		if mbErr := d.mb.Close(); mbErr != nil && err == nil {
			err = mbErr
		}
	}
	return err
}

// Records returns a fresh iterator over this document's rows. Only one
// iterator should be driven at a time; it borrows the document's decoders
// and .DB source, and adds its warnings to the document.
func (d *Document) Records() (*RecordIterator, error) {
	if d.closed {
		return nil, types.ErrClosed
	}
	return newRecordIterator(d), nil
}

func publicFieldType(t format.FieldType) types.FieldType {
	switch t {
	case format.TypeAlpha:
		return types.FieldAlpha
	case format.TypeDate:
		return types.FieldDate
	case format.TypeShort:
		return types.FieldShort
	case format.TypeLong:
		return types.FieldLong
	case format.TypeCurrency:
		return types.FieldCurrency
	case format.TypeNumber:
		return types.FieldNumber
	case format.TypeLogical:
		return types.FieldLogical
	case format.TypeMemoBlob:
		return types.FieldMemo
	case format.TypeBLOB:
		return types.FieldBinary
	case format.TypeFmtMemo:
		return types.FieldFmtMemo
	case format.TypeOLE:
		return types.FieldOle
	case format.TypeGraphic:
		return types.FieldGraphic
	case format.TypeTime:
		return types.FieldTime
	case format.TypeTimestamp:
		return types.FieldTimestamp
	case format.TypeAutoInc:
		return types.FieldAutoincrement
	case format.TypeBCD:
		return types.FieldBCD
	case format.TypeBytes:
		return types.FieldBytes
	default:
		return types.FieldType(-1)
	}
}

