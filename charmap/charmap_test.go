package charmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintableASCIIRoundTrip(t *testing.T) {
	for b := 0x20; b <= 0x7E; b++ {
		r := Decode(byte(b))
		got, err := Encode(r)
		require.NoError(t, err)
		assert.Equal(t, byte(b), got)
	}
}

func TestExtendedRangeRoundTrip(t *testing.T) {
	for b := 0x80; b <= 0xFF; b++ {
		r := Decode(byte(b))
		got, err := Encode(r)
		require.NoError(t, err)
		assert.Equal(t, byte(b), got)
	}
}

func TestUnitSeparatorRoundTrip(t *testing.T) {
	assert.Equal(t, UnitSeparator, Decode(0x0A))
	got, err := Encode(UnitSeparator)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0A), got)
}

func TestNewLineRoundTrip(t *testing.T) {
	assert.Equal(t, NewLine, Decode(0x0D))
	got, err := Encode(NewLine)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0D), got)
}

func TestEncodeRejectsUnmappedRune(t *testing.T) {
	_, err := Encode(rune(0x20AC)) // euro sign, not in the device table
	assert.Error(t, err)
}

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	s := "Hello, World! 123"
	enc, err := EncodeString(s)
	require.NoError(t, err)
	assert.Equal(t, s, DecodeString(enc))
}

func TestEncodeStringRejectsFirstUnencodableChar(t *testing.T) {
	_, err := EncodeString("ok\tbad")
	assert.Error(t, err)
}

func TestDecodeStringRendersUnmappedBytesAsPlaceholder(t *testing.T) {
	assert.Equal(t, "A[0x01]B", DecodeString([]byte{'A', 0x01, 'B'}))
}
