// Package decoder implements the layered decoder state machine: sync
// detection, frame reassembly, frame taxonomy dispatch, and record
// aggregation over an already-split UART byte stream. It never mutates
// the input; every observation is reported as an Annotation pushed to
// the Sink supplied at construction.
package decoder

import (
	"fmt"
	"strings"

	"github.com/fornellas/digitaldiary/clog"
	"github.com/fornellas/digitaldiary/frame"
	"github.com/fornellas/digitaldiary/record"
)

type syncState int

const (
	stateAwaitSync1OrFrameStart syncState = iota
	stateAwaitSync2
	stateInFrame
)

type recordState int

const (
	stateAwaitDirectoryOrFrame recordState = iota
	stateAwaitStart
	stateInFrames
)

var directoryKinds = map[frame.Kind]bool{
	frame.KindDirectory:             true,
	frame.KindTelephoneDirectory:    true,
	frame.KindBusinessCardDirectory: true,
	frame.KindMemoDirectory:         true,
	frame.KindCalendarDirectory:     true,
	frame.KindScheduleDirectory:     true,
	frame.KindReminderDirectory:     true,
	frame.KindToDoDirectory:         true,
	frame.KindExpenseDirectory:      true,
}

// Decoder is a one-shot, single-threaded decode pass over one captured
// byte stream. Each input byte arrives tagged with the sample range it
// covers in the capture; all emitted Annotation spans are in those
// sample units. It is not safe for concurrent use.
type Decoder struct {
	clog.Clog

	sink Sink

	sync       syncState
	frameStart int
	chunkStart int
	hexHigh    *byte
	builder    frame.FrameBuilder

	rstate        recordState
	directoryKind frame.Kind
	recordStart   int
	recordFrames  []frame.Frame
}

// New creates a Decoder that reports to sink. Logging is off by default;
// call LogMode(true) to enable it.
func New(sink Sink) *Decoder {
	return &Decoder{
		sink:   sink,
		Clog:   clog.New("decoder: "),
		rstate: stateAwaitDirectoryOrFrame,
	}
}

// Reset returns the decoder to its initial state, dropping any partially
// assembled frame or record. It is idempotent and safe to call at any
// point between Feed calls.
func (d *Decoder) Reset() {
	d.sync = stateAwaitSync1OrFrameStart
	d.hexHigh = nil
	d.builder = frame.FrameBuilder{}
	d.rstate = stateAwaitDirectoryOrFrame
	d.directoryKind = frame.KindUnknown
	d.recordFrames = nil
}

func (d *Decoder) emit(kind, text string, start, end int) {
	d.sink.Emit(Annotation{Kind: kind, Text: text, Start: start, End: end})
}

// FeedSender consumes one byte of the sender-direction stream (the
// direction carrying sync bytes and frames), covering samples
// [start, end) of the capture, and advances the decoder's state machine
// by exactly one byte.
func (d *Decoder) FeedSender(start, end int, b byte) {
	switch d.sync {
	case stateAwaitSync1OrFrameStart:
		switch b {
		case '\r':
			d.emit("sync", "Sync 1/2", start, end)
			d.sync = stateAwaitSync2
		case ':':
			d.frameStart = start
			d.emit("frame-start", "Frame Start", start, end)
			d.sync = stateInFrame
		default:
			d.Warn("unexpected byte %#x while awaiting sync or frame start", b)
			d.emit("warning", "?", start, end)
		}
	case stateAwaitSync2:
		if b == '\n' {
			d.emit("sync", "Sync 2/2", start, end)
		} else {
			d.Warn("unexpected byte %#x while awaiting sync 2/2", b)
			d.emit("warning", "?", start, end)
		}
		d.sync = stateAwaitSync1OrFrameStart
	case stateInFrame:
		d.feedFrameByte(b, start, end)
	}
}

func (d *Decoder) feedFrameByte(b byte, start, end int) {
	if d.hexHigh == nil {
		hh := b
		d.hexHigh = &hh
		d.chunkStart = start
		return
	}
	value, err := hexPairToByte(*d.hexHigh, b)
	d.hexHigh = nil
	if err != nil {
		d.Warn("invalid hex digits in frame stream: %v", err)
		d.emit("warning", "?", d.chunkStart, end)
		d.builder = frame.FrameBuilder{}
		d.sync = stateAwaitSync1OrFrameStart
		return
	}

	stage, f := d.builder.AddByte(value)
	d.emit("frame-header", fmt.Sprintf("%s: %#02x", stage, value), d.chunkStart, end)
	if f == nil {
		return
	}

	if !f.VerifyChecksum() {
		d.emit("warning", "Bad Checksum", d.chunkStart, end)
	}
	if f.Kind() == frame.KindUnknown {
		d.emit("warning", fmt.Sprintf("Unknown %s", f.String()), d.frameStart, end)
	} else {
		d.emit("frame", f.String(), d.frameStart, end)
	}
	d.feedRecordAggregator(*f, d.frameStart, end)

	d.builder = frame.FrameBuilder{}
	d.sync = stateAwaitSync1OrFrameStart
}

// feedRecordAggregator groups frames under their Directory into
// completed records. The three states are tried in sequence (not
// mutually exclusive) because a single frame can both close one state
// and open the next: a non-Directory frame arriving while awaiting a
// directory ends that state, starts a fresh record's frame buffer and
// is appended to it in the same call. A Directory frame only records
// its kind; the frame after it starts the buffer.
func (d *Decoder) feedRecordAggregator(f frame.Frame, start, end int) {
	if d.rstate == stateAwaitDirectoryOrFrame {
		if directoryKinds[f.Kind()] {
			d.directoryKind = f.Kind()
			d.rstate = stateAwaitStart
			return
		}
		d.rstate = stateAwaitStart
	}
	if d.rstate == stateAwaitStart {
		d.recordStart = start
		d.recordFrames = nil
		d.rstate = stateInFrames
	}
	if d.rstate == stateInFrames {
		if f.Kind() != frame.KindEndOfRecord {
			d.recordFrames = append(d.recordFrames, f)
			return
		}
		d.closeRecord(end)
		d.rstate = stateAwaitDirectoryOrFrame
	}
}

func (d *Decoder) closeRecord(end int) {
	build, ok := record.DirectoryToRecord[d.directoryKind]
	if !ok {
		parts := make([]string, len(d.recordFrames))
		for i, f := range d.recordFrames {
			parts[i] = f.String()
		}
		d.Warn("unknown record: %s", strings.Join(parts, ", "))
		d.emit("warning", "Unknown Record: "+strings.Join(parts, ", "), d.recordStart, end)
		return
	}
	rec, err := build(d.recordFrames)
	if err != nil {
		d.Warn("malformed record: %v", err)
		d.emit("warning", fmt.Sprintf("Malformed record: %v", err), d.recordStart, end)
		return
	}
	d.emit("record", fmt.Sprintf("%v", rec), d.recordStart, end)
}

func hexPairToByte(hi, lo byte) (byte, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
