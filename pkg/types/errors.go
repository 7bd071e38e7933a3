package types

// ErrKind classifies errors so callers can branch on intent rather than on
// message text.
type ErrKind int

const (
	ErrKindFormat     ErrKind = iota // malformed header or schema
	ErrKindCorrupt                   // structural corruption discovered after open (e.g. block cycle)
	ErrKindIO                       // OS read/open failure
	ErrKindState                    // operation invalid for current document state
	ErrKindEncrypted                // encrypted file opened without a password
	ErrKindBadPassword               // password checksum did not match the header
	ErrKindArgument                  // malformed option, rejected before any I/O
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinel errors. ErrEncrypted, ErrBadPassword, ErrClosed and
// ErrInvalidArgument are returned as-is, so callers can compare with
// errors.Is. ErrNotFound, ErrNotTable and ErrCorrupt are not returned by the
// engine: a missing file, a malformed header and corruption found during
// iteration surface as new *Error values of Kind ErrKindIO, ErrKindFormat and
// ErrKindCorrupt, which errors.Is does not match against these sentinels.
var (
	// ErrNotFound carries the message used when the .DB file does not exist.
	ErrNotFound = &Error{Kind: ErrKindIO, Msg: "File not found"}
	// ErrNotTable names a file that lacks a recognizable Paradox header.
	ErrNotTable = &Error{Kind: ErrKindFormat, Msg: "not a Paradox table"}
	// ErrCorrupt names a non-recoverable structural inconsistency found
	// during iteration (e.g. a cycle in the block linked list).
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt table structure"}
	// ErrEncrypted indicates an encrypted table was opened without a password.
	ErrEncrypted = &Error{Kind: ErrKindEncrypted, Msg: "password protected"}
	// ErrBadPassword indicates the supplied password's checksum did not match
	// the header's encryption word.
	ErrBadPassword = &Error{Kind: ErrKindBadPassword, Msg: "Incorrect password"}
	// ErrClosed indicates an operation on a Document after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "class 'pxdoc_t': invalid handle"}
	// ErrInvalidArgument indicates a malformed argument, such as a field name
	// that Record.ValueByName does not know.
	ErrInvalidArgument = &Error{Kind: ErrKindArgument, Msg: "invalid argument"}
)

// WarningKind classifies non-fatal conditions collected on a Document rather
// than surfaced as errors.
type WarningKind int

const (
	WarnMissingBlob WarningKind = iota
	WarnBlobMismatch
	WarnRecordCountMismatch
	WarnUnknownFieldType
)

func (k WarningKind) String() string {
	switch k {
	case WarnMissingBlob:
		return "MissingBlob"
	case WarnBlobMismatch:
		return "BlobMismatch"
	case WarnRecordCountMismatch:
		return "RecordCountMismatch"
	case WarnUnknownFieldType:
		return "UnknownFieldType"
	default:
		return "Unknown"
	}
}

// Warning is one non-fatal condition encountered while opening or iterating
// a Document. pxlib's original error-handler callback can fire many times
// per open/iterate, so Document.Warnings returns a slice rather than a
// single last warning.
type Warning struct {
	Kind       WarningKind
	Message    string
	FieldIndex int // -1 when not attributable to a specific field
}
