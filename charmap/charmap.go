// Package charmap implements the bijection between the device's 8-bit
// text encoding and Unicode scalar values.
//
// Two device byte codes are reserved as control codes rather than
// glyphs: 0x0A decodes to the unit separator (U+001F), used to delimit
// intra-record string fields, and 0x0D decodes to a newline.
package charmap

import (
	"fmt"
	"strings"

	"github.com/fornellas/digitaldiary/digerr"
)

// UnitSeparator is the rune device byte 0x0A decodes to. It delimits
// logical string fields inside a record's Text block.
const UnitSeparator = rune(0x1F)

// NewLine is the rune device byte 0x0D decodes to.
const NewLine = rune('\n')

const (
	byteUnitSeparator byte = 0x0A
	byteNewLine       byte = 0x0D
)

// deviceToUnicode and unicodeToDevice are built once from the printable
// ASCII range (0x20-0x7E), which the device renders identically to
// ASCII, plus the two control codes above. The upper byte range
// (0x80-0xFF) carries the device's extended glyph set (accented Latin
// and half-width Kana on the physical units this protocol targets); no
// authoritative table for that range is available, so this module maps
// it deterministically into the Unicode Private Use Area
// (U+E080-U+E0FF) instead of guessing glyphs. That keeps encode/decode
// a true bijection (every byte 0x80-0xFF round-trips through
// Decode/Encode exactly) without asserting a glyph identity this module
// cannot verify.
var (
	deviceToUnicode [256]rune
	unicodeToDevice = make(map[rune]byte, 256)
)

func init() {
	for b := 0x20; b <= 0x7E; b++ {
		deviceToUnicode[b] = rune(b)
	}
	deviceToUnicode[byteUnitSeparator] = UnitSeparator
	deviceToUnicode[byteNewLine] = NewLine
	for b := 0x80; b <= 0xFF; b++ {
		deviceToUnicode[b] = rune(0xE000 + b)
	}
	for b, r := range deviceToUnicode {
		if r == 0 {
			continue
		}
		unicodeToDevice[r] = byte(b)
	}
}

// Decode maps a single device byte to its Unicode scalar value, including
// the two control codes (UnitSeparator, NewLine). A byte outside the
// table (0x00-0x09, 0x0B, 0x0C, 0x0E-0x1F, 0x7F) decodes to the zero
// rune.
func Decode(b byte) rune {
	return deviceToUnicode[b]
}

// Encode maps a Unicode scalar value to its device byte code. It returns
// digerr.ErrUnencodableChar for any rune outside the device's character
// table.
func Encode(r rune) (byte, error) {
	b, ok := unicodeToDevice[r]
	if !ok {
		return 0, digerr.ErrUnencodableChar
	}
	return b, nil
}

// DecodeString decodes a slice of device bytes into a string. A byte
// with no mapping renders as a "[0xNN]" placeholder; such text is for
// display only and will not re-encode.
func DecodeString(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		r := Decode(b)
		if r == 0 {
			fmt.Fprintf(&sb, "[0x%02X]", b)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// EncodeString encodes a string into device bytes, failing on the first
// unencodable rune.
func EncodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := Encode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
