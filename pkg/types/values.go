package types

// Kind is the tag of a Value's active variant.
type Kind int

const (
	KindNull      Kind = iota
	KindInt64          // Short, Long, AutoInc
	KindFloat64        // Number, Currency
	KindBool           // Logical
	KindDate           // days since 1970-01-01
	KindTimestamp      // seconds since 1970-01-01 UTC
	KindTimeOfDay      // seconds since midnight
	KindText           // Alpha, Memo, FmtMemo, BCD, recoded to UTF-8
	KindBytes          // Bytes
	KindBlob           // Binary, Graphic, Ole
)

// Value is a tagged variant over every supported cell type. There is
// no shared base class; callers switch on Kind.
type Value struct {
	kind  Kind
	i64   int64
	f64   float64
	b     bool
	s     string
	bytes []byte
}

// Kind reports which field of Value is meaningful.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 returns the integer payload for KindInt64 values.
func (v Value) Int64() int64 { return v.i64 }

// Float64 returns the real payload for KindFloat64 values.
func (v Value) Float64() float64 { return v.f64 }

// Bool returns the boolean payload for KindBool values.
func (v Value) Bool() bool { return v.b }

// Days returns the days-since-epoch payload for KindDate values.
func (v Value) Days() int64 { return v.i64 }

// Seconds returns the seconds payload for KindTimestamp/KindTimeOfDay values.
func (v Value) Seconds() float64 { return v.f64 }

// Text returns the UTF-8 payload for KindText values.
func (v Value) Text() string { return v.s }

// Bytes returns the octet payload for KindBytes/KindBlob values.
func (v Value) Bytes() []byte { return v.bytes }

// Null returns the Null variant.
func Null() Value { return Value{kind: KindNull} }

// Int64Value returns an Int64-kinded Value.
func Int64Value(n int64) Value { return Value{kind: KindInt64, i64: n} }

// Float64Value returns a Float64-kinded Value.
func Float64Value(f float64) Value { return Value{kind: KindFloat64, f64: f} }

// BoolValue returns a Bool-kinded Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// DateValue returns a Date-kinded Value holding days since 1970-01-01.
func DateValue(days int64) Value { return Value{kind: KindDate, i64: days} }

// TimestampValue returns a Timestamp-kinded Value holding seconds since
// 1970-01-01 UTC.
func TimestampValue(seconds float64) Value { return Value{kind: KindTimestamp, f64: seconds} }

// TimeOfDayValue returns a TimeOfDay-kinded Value holding seconds since
// midnight.
func TimeOfDayValue(seconds float64) Value { return Value{kind: KindTimeOfDay, f64: seconds} }

// TextValue returns a Text-kinded Value.
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// BytesValue returns a Bytes-kinded Value.
func BytesValue(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// BlobValue returns a Blob-kinded Value holding resolved payload bytes.
func BlobValue(b []byte) Value { return Value{kind: KindBlob, bytes: b} }
