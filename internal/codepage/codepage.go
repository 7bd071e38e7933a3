// Package codepage recodes the legacy single-byte text pxlib tables store
// into UTF-8. It is a pure function of (bytes, label); it never fails —
// invalid sequences are replaced with the Unicode replacement character.
package codepage

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// table maps the label this package accepts — "CP" followed by the header's
// DOS codepage id, or a bare id, case-insensitively — to the x/text charmap
// decoder for it. This is the CP437/850/852/866/1250/1251/1252 set pxlib
// tables in the wild.
var table = map[string]*charmap.Charmap{
	"437":  charmap.CodePage437,
	"850":  charmap.CodePage850,
	"852":  charmap.CodePage852,
	"866":  charmap.CodePage866,
	"1250": charmap.Windows1250,
	"1251": charmap.Windows1251,
	"1252": charmap.Windows1252,
}

// Label derives the codepage label from a header's DOS codepage id:
// "CP" + id. A zero id means unknown.
func Label(id uint16) string {
	if id == 0 {
		return ""
	}
	return "CP" + strconv.Itoa(int(id))
}

func lookup(label string) (*charmap.Charmap, bool) {
	norm := strings.ToUpper(strings.TrimSpace(label))
	norm = strings.TrimPrefix(norm, "CP")
	cm, ok := table[norm]
	return cm, ok
}

// Recode converts b from the named codepage to UTF-8. If label is empty,
// unknown to this package, or b is already valid UTF-8, b is returned
// unchanged (as a string). The recoder never fails; invalid input bytes
// become the Unicode replacement character.
func Recode(b []byte, label string) string {
	if label == "" || utf8.Valid(b) {
		return string(b)
	}
	cm, ok := lookup(label)
	if !ok {
		return string(b)
	}
	out, _ := cm.NewDecoder().Bytes(b)
	return string(out)
}

// Decoder returns the x/text decoder for label, or nil if the label is
// empty or unrecognized — callers should treat a nil decoder as passthrough.
func Decoder(label string) *encoding.Decoder {
	cm, ok := lookup(label)
	if !ok {
		return nil
	}
	return cm.NewDecoder()
}
