package frame

import (
	"fmt"
	"strings"

	"github.com/fornellas/digitaldiary/charmap"
	"github.com/fornellas/digitaldiary/digerr"
)

const (
	textTypeLow   uint8 = 0x80 // used when address < textAddressSplit
	textTypeHigh  uint8 = 0x81 // used when address >= textAddressSplit
	textChunkSize int   = 0x80 // max data bytes per Text frame
	// MaxTextLength is the total text material (in device bytes) a
	// single record may carry across all its Text frames.
	MaxTextLength    int = 376
	textAddressSplit int = 0x100 // type flips to 0x81 once address reaches this
)

func matchText(length, typ uint8, address uint16, data []byte) bool {
	return typ == textTypeLow || typ == textTypeHigh
}

// textFrameFor builds one Text frame carrying data at the given absolute
// byte offset within the record's text region: type is 0x80 below
// offset 0x100, and 0x81 from 0x100 up, with the frame's address
// carrying offset mod 0x100 in the latter case.
func textFrameFor(address int, data []byte) Frame {
	typ := textTypeLow
	frameAddress := address
	if address >= textAddressSplit {
		typ = textTypeHigh
		frameAddress = address % textAddressSplit
	}
	return NewFrame(uint8(len(data)), typ, uint16(frameAddress), data)
}

// TextOf decodes the raw device bytes carried by a single Text frame
// into a string, for logging/annotation. Reconstructing a record's full
// multi-frame text (and splitting it on the unit separator into fields)
// is the record package's job, since it must accumulate across frames.
func TextOf(f Frame) string {
	return charmap.DecodeString(f.Data)
}

// FromTextList encodes an ordered list of logical string fields into a
// sequence of Text frames. Fields are separated by the unit separator
// byte in the encoded stream; there is no trailing separator after the
// last field. The split points
// between frames fall on chunk boundaries only: every device character
// occupies exactly one byte, so a byte-count split can never land
// inside a multi-byte grapheme, and no whitespace is trimmed.
func FromTextList(fields []string) ([]Frame, error) {
	encodedFields := make([][]byte, len(fields))
	total := 0
	for i, field := range fields {
		enc, err := charmap.EncodeString(field)
		if err != nil {
			return nil, err
		}
		encodedFields[i] = enc
		total += len(enc)
	}
	// separators between fields (not after the last one)
	if len(fields) > 1 {
		total += len(fields) - 1
	}
	if total > MaxTextLength {
		return nil, fmt.Errorf("%w: %d bytes", digerr.ErrRecordTooLong, total)
	}

	sepByte, err := charmap.Encode(charmap.UnitSeparator)
	if err != nil {
		return nil, err
	}

	stream := make([]byte, 0, total)
	for i, enc := range encodedFields {
		stream = append(stream, enc...)
		if i != len(encodedFields)-1 {
			stream = append(stream, sepByte)
		}
	}

	var frames []Frame
	for offset := 0; offset < len(stream) || (offset == 0 && len(stream) == 0); {
		end := offset + textChunkSize
		if end > len(stream) {
			end = len(stream)
		}
		frames = append(frames, textFrameFor(offset, stream[offset:end]))
		if end == offset {
			break
		}
		offset = end
	}
	return frames, nil
}

// FromText encodes a single logical string field into a sequence of Text
// frames.
func FromText(s string) ([]Frame, error) {
	return FromTextList([]string{s})
}

// JoinText concatenates the raw device bytes of consecutive Text frames
// (already ordered by address), decodes them, and splits the result on
// the unit separator into an ordered field list. Trailing empty fields
// are discarded; empty fields between non-empty ones are preserved as
// empty strings, which record.Record builders treat as unset (nil).
func JoinText(frames []Frame) []string {
	var sb strings.Builder
	for _, f := range frames {
		sb.WriteString(TextOf(f))
	}
	fields := strings.Split(sb.String(), string(charmap.UnitSeparator))
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
