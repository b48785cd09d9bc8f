package decoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Feeding the literal byte stream
// "CR LF : 03 F4 86 00 00 01 02 80" produces a sync/sync/frame-start
// preamble, one annotation per builder stage, and a final annotation
// spanning the whole frame. No frame kind has length 3 and type 0xF4,
// so that final annotation is the unknown-frame warning.
func TestDecoderFrameStream(t *testing.T) {
	stream := []byte("\r\n:03F4860000010280")

	sink := &SliceSink{}
	f := &feeder{d: New(sink)}
	for _, b := range stream {
		f.sender(b)
	}

	require.GreaterOrEqual(t, len(sink.Annotations), 3)
	assert.Equal(t, "sync", sink.Annotations[0].Kind)
	assert.Equal(t, "Sync 1/2", sink.Annotations[0].Text)
	assert.Equal(t, "sync", sink.Annotations[1].Kind)
	assert.Equal(t, "Sync 2/2", sink.Annotations[1].Text)
	assert.Equal(t, "frame-start", sink.Annotations[2].Kind)

	// Length, Type, AddressLow, AddressHigh, 3 Data bytes, Checksum: 8
	// header-stage annotations follow the preamble, each spanning the two
	// UART bytes its hex pair occupied.
	headerAnns := sink.Annotations[3:11]
	for _, a := range headerAnns {
		assert.Equal(t, "frame-header", a.Kind)
		assert.Equal(t, 2, a.End-a.Start)
	}

	last := sink.Annotations[len(sink.Annotations)-1]
	assert.Contains(t, []string{"frame", "warning"}, last.Kind)
	// The frame annotation spans from the ':' to the last checksum digit.
	assert.Equal(t, 2, last.Start)
	assert.Equal(t, len(stream), last.End)
}

func TestDecoderRejectsBadChecksumWithWarning(t *testing.T) {
	// Same frame as above but with the checksum byte corrupted (80 -> 81).
	stream := []byte("\r\n:03F4860000010281")

	sink := &SliceSink{}
	f := &feeder{d: New(sink)}
	for _, b := range stream {
		f.sender(b)
	}

	var badChecksum *Annotation
	for i, a := range sink.Annotations {
		if a.Kind == "warning" && a.Text == "Bad Checksum" {
			badChecksum = &sink.Annotations[i]
		}
	}
	require.NotNil(t, badChecksum)
	// The warning covers the checksum's two hex digits, not the whole
	// frame.
	assert.Equal(t, 2, badChecksum.End-badChecksum.Start)
	assert.Equal(t, len(stream), badChecksum.End)
}

// An unexpected byte while awaiting sync or
// frame start produces exactly one warning annotation and the decoder
// returns to that same state, recognizing the next valid sync normally.
func TestDecoderSyncRecovery(t *testing.T) {
	sink := &SliceSink{}
	f := &feeder{d: New(sink)}

	f.sender('X') // garbage while awaiting sync1/frame-start
	require.Len(t, sink.Annotations, 1)
	assert.Equal(t, "warning", sink.Annotations[0].Kind)

	f.sender('\r')
	f.sender('\n')
	require.Len(t, sink.Annotations, 3)
	assert.Equal(t, "sync", sink.Annotations[1].Kind)
	assert.Equal(t, "sync", sink.Annotations[2].Kind)
}

func TestDecoderSync2MismatchReturnsToAwaitSync1(t *testing.T) {
	sink := &SliceSink{}
	f := &feeder{d: New(sink)}

	f.sender('\r')
	f.sender('X') // not LF
	require.Len(t, sink.Annotations, 2)
	assert.Equal(t, "warning", sink.Annotations[1].Kind)

	// decoder is back to awaiting sync1/frame-start: a fresh handshake
	// starts cleanly.
	f.sender('\r')
	f.sender('\n')
	require.Len(t, sink.Annotations, 4)
	assert.Equal(t, "sync", sink.Annotations[2].Kind)
	assert.Equal(t, "sync", sink.Annotations[3].Kind)
}

func TestDecoderRecordAggregationEmitsRecord(t *testing.T) {
	sink := &SliceSink{}
	f := &feeder{d: New(sink)}

	feedFrame(t, f, frameWireTelephoneDirectory())
	feedFrame(t, f, frameWireText("Jane Doe"))
	feedFrame(t, f, frameWireEndOfRecord())

	var sawRecord bool
	for _, a := range sink.Annotations {
		if a.Kind == "record" {
			sawRecord = true
		}
	}
	assert.True(t, sawRecord)
}

func TestDecoderUnknownRecordWhenNoLeadingDirectory(t *testing.T) {
	sink := &SliceSink{}
	f := &feeder{d: New(sink)}

	feedFrame(t, f, frameWireText("orphan"))
	feedFrame(t, f, frameWireEndOfRecord())

	var sawUnknown bool
	for _, a := range sink.Annotations {
		if a.Kind == "warning" && strings.HasPrefix(a.Text, "Unknown Record") {
			sawUnknown = true
		}
	}
	assert.True(t, sawUnknown)
}

// Reset drops a partially assembled frame so the next sync is decoded
// from a clean slate, and calling it twice is the same as calling it
// once.
func TestDecoderResetDropsPartialFrame(t *testing.T) {
	sink := &SliceSink{}
	f := &feeder{d: New(sink)}

	f.sender(':')
	f.sender('0') // half a hex pair
	f.d.Reset()
	f.d.Reset()

	before := len(sink.Annotations)
	f.sender('\r')
	f.sender('\n')
	require.Len(t, sink.Annotations, before+2)
	assert.Equal(t, "sync", sink.Annotations[before].Kind)
	assert.Equal(t, "sync", sink.Annotations[before+1].Kind)
}

func TestFeedReceiverEmitsFlowControlAnnotations(t *testing.T) {
	sink := &SliceSink{}
	f := &feeder{d: New(sink)}

	f.receiver(0x11)
	f.receiver(0x13)
	f.receiver(0x23)
	f.receiver(0x3F)
	f.receiver(0x00)

	require.Len(t, sink.Annotations, 5)
	assert.Equal(t, "XON", sink.Annotations[0].Text)
	assert.Equal(t, "XOFF", sink.Annotations[1].Text)
	assert.Equal(t, "Ack", sink.Annotations[2].Text)
	assert.Equal(t, "NACK", sink.Annotations[3].Text)
	assert.Equal(t, "receiver-warning", sink.Annotations[4].Kind)
}
