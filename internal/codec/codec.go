// Package codec converts raw record-cell bytes into neutral types.Value
// instances, one function per Paradox field type. It never touches a block
// buffer directly; callers hand it the already-sliced cell.
package codec

import (
	"math"
	"strings"

	"github.com/pxtable/pxdb/internal/blob"
	"github.com/pxtable/pxdb/internal/buf"
	"github.com/pxtable/pxdb/internal/codepage"
	"github.com/pxtable/pxdb/internal/format"
	"github.com/pxtable/pxdb/pkg/types"
)

// bcdNullSentinel is the decoded text pxlib emits for a Null BCD cell.
const bcdNullSentinel = "-??????????????????????????.??????"

// Decoder converts cells for one field.
type Decoder struct {
	field    format.FieldDesc
	codepage string
	blobs    *blob.Resolver
}

// NewDecoder builds a Decoder for field, recoding text with the given
// codepage label and resolving blob cells through blobs (which may wrap a
// nil .MB source).
func NewDecoder(field format.FieldDesc, codepageLabel string, blobs *blob.Resolver) *Decoder {
	return &Decoder{field: field, codepage: codepageLabel, blobs: blobs}
}

// Decode converts cell, a byte slice of exactly the field's byte width
// (FieldDesc.ByteWidth), into a Value and optionally a non-fatal warning.
func (d *Decoder) Decode(cell []byte) (types.Value, *types.Warning, error) {
	switch d.field.Type {
	case format.TypeAlpha:
		return d.decodeAlpha(cell), nil, nil
	case format.TypeShort:
		return decodeShort(cell), nil, nil
	case format.TypeLong, format.TypeAutoInc:
		return decodeLong(cell), nil, nil
	case format.TypeDate:
		return decodeDate(cell), nil, nil
	case format.TypeTime:
		return decodeTime(cell), nil, nil
	case format.TypeNumber, format.TypeCurrency:
		return decodeDouble(cell), nil, nil
	case format.TypeTimestamp:
		return decodeTimestamp(cell), nil, nil
	case format.TypeLogical:
		return decodeLogical(cell), nil, nil
	case format.TypeBCD:
		return d.decodeBCD(cell), nil, nil
	case format.TypeBytes:
		return decodeBytes(cell), nil, nil
	case format.TypeMemoBlob, format.TypeFmtMemo:
		return d.decodeTextBlob(cell)
	case format.TypeBLOB, format.TypeOLE, format.TypeGraphic:
		return d.decodeBinaryBlob(cell)
	default:
		return types.Null(), &types.Warning{Kind: types.WarnUnknownFieldType}, nil
	}
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func (d *Decoder) decodeAlpha(cell []byte) types.Value {
	if allZero(cell) {
		return types.Null()
	}
	end := len(cell)
	for end > 0 && cell[end-1] == 0 {
		end--
	}
	return types.TextValue(codepage.Recode(cell[:end], d.codepage))
}

// clearShortMarker and clearLongMarker strip the non-null marker bit: the
// top bit signals presence, not sign, so it is masked off rather than
// XORed — the magnitude lives entirely in the remaining bits.
func clearShortMarker(raw uint16) (uint16, bool) {
	if raw&0x8000 == 0 {
		return 0, false
	}
	return raw &^ 0x8000, true
}

func clearLongMarker(raw uint32) (uint32, bool) {
	if raw&0x80000000 == 0 {
		return 0, false
	}
	return raw &^ 0x80000000, true
}

func decodeShort(cell []byte) types.Value {
	v, ok := clearShortMarker(buf.U16BE(cell))
	if !ok {
		return types.Null()
	}
	return types.Int64Value(int64(v))
}

func decodeLong(cell []byte) types.Value {
	v, ok := clearLongMarker(buf.U32BE(cell))
	if !ok {
		return types.Null()
	}
	return types.Int64Value(int64(v))
}

func decodeDate(cell []byte) types.Value {
	v, ok := clearLongMarker(buf.U32BE(cell))
	if !ok || !format.ValidDateRaw(int32(v)) {
		return types.Null()
	}
	return types.DateValue(format.DateRawToUnixDays(int32(v)))
}

func decodeTime(cell []byte) types.Value {
	v, ok := clearLongMarker(buf.U32BE(cell))
	if !ok {
		return types.Null()
	}
	return types.TimeOfDayValue(format.TimeRawToSeconds(int32(v)))
}

// decodeSignedDouble applies the sign-bit protocol shared by Number,
// Currency, and Timestamp cells: a set sign bit means positive (clear it
// before interpreting); a clear sign bit means negative (invert every bit).
func decodeSignedDouble(cell []byte) (float64, bool) {
	raw := buf.U64BE(cell)
	if raw == 0 {
		return 0, false
	}
	if raw&(1<<63) != 0 {
		raw &^= 1 << 63
	} else {
		raw = ^raw
	}
	return math.Float64frombits(raw), true
}

func decodeDouble(cell []byte) types.Value {
	v, ok := decodeSignedDouble(cell)
	if !ok {
		return types.Null()
	}
	return types.Float64Value(v)
}

func decodeTimestamp(cell []byte) types.Value {
	rawMillis, ok := decodeSignedDouble(cell)
	if !ok {
		return types.Null()
	}
	seconds := format.TimestampRawToUnixSeconds(rawMillis)
	if rawMillis <= 0 {
		return types.Null()
	}
	return types.TimestampValue(seconds)
}

func decodeLogical(cell []byte) types.Value {
	if len(cell) == 0 || cell[0] == 0 {
		return types.Null()
	}
	return types.BoolValue(cell[0]&0x80 != 0)
}

func decodeBytes(cell []byte) types.Value {
	out := make([]byte, len(cell))
	copy(out, cell)
	return types.BytesValue(out)
}

// bcdDigitChar renders one packed nibble as a decimal digit, or '?' for a
// nibble outside 0-9 (the encoding pxlib uses for an undefined/Null cell).
func bcdDigitChar(nibble byte) byte {
	if nibble <= 9 {
		return '0' + nibble
	}
	return '?'
}

// decodeBCD unpacks a fixed-width packed-BCD cell: a leading sign byte
// (zero means positive, nonzero negative) followed by 16 bytes of packed
// decimal digits (two nibbles per byte, high nibble first). field.Length
// gives the number of trailing digits that belong after the decimal point;
// the rest form the integer part, with leading zero digits trimmed.
func (d *Decoder) decodeBCD(cell []byte) types.Value {
	if len(cell) < 1 {
		return types.Null()
	}
	negative := cell[0] != 0

	digits := make([]byte, 0, 2*(len(cell)-1))
	for _, b := range cell[1:] {
		digits = append(digits, bcdDigitChar(b>>4), bcdDigitChar(b&0x0F))
	}

	frac := int(d.field.Length)
	if frac > len(digits) {
		frac = len(digits)
	}
	intPart := digits[:len(digits)-frac]
	fracPart := digits[len(digits)-frac:]

	for len(intPart) > 1 && intPart[0] == '0' {
		intPart = intPart[1:]
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.Write(intPart)
	if frac > 0 {
		sb.WriteByte('.')
		sb.Write(fracPart)
	}

	text := codepage.Recode([]byte(sb.String()), d.codepage)
	if text == bcdNullSentinel {
		return types.Null()
	}
	return types.TextValue(text)
}

func (d *Decoder) resolveBlob(cell []byte) ([]byte, bool, *types.Warning, error) {
	ref, err := blob.ParseRef(cell)
	if err != nil {
		return nil, false, nil, err
	}
	return d.blobs.Resolve(ref)
}

func (d *Decoder) decodeTextBlob(cell []byte) (types.Value, *types.Warning, error) {
	payload, ok, warn, err := d.resolveBlob(cell)
	if err != nil {
		return types.Value{}, nil, err
	}
	if !ok {
		return types.Null(), warn, nil
	}
	return types.TextValue(codepage.Recode(payload, d.codepage)), warn, nil
}

func (d *Decoder) decodeBinaryBlob(cell []byte) (types.Value, *types.Warning, error) {
	payload, ok, warn, err := d.resolveBlob(cell)
	if err != nil {
		return types.Value{}, nil, err
	}
	if !ok || len(payload) == 0 {
		return types.Null(), warn, nil
	}
	return types.BlobValue(payload), warn, nil
}
