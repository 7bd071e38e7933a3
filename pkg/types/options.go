package types

// OpenOptions controls construction-time behavior: encoding and password
// are genuinely construction-time options, not settable mid-lifecycle,
// mirroring pxlib's PX_new2/PX_set_targetencoding contract.
type OpenOptions struct {
	// Encoding overrides the codepage detected from the header for all text
	// decoding (e.g. "cp866"). Empty means use the header's declared codepage.
	Encoding string

	// Password is required to deobfuscate an encrypted table. Ignored
	// (never an error) for non-encrypted tables.
	Password string
}
