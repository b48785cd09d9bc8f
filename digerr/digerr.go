// Package digerr defines the error taxonomy shared by the frame, record,
// decoder and sender packages. Sentinel values let callers branch with
// errors.Is instead of matching on formatted strings.
package digerr

import "errors"

// Decoder-side errors. These are recoverable: the decoder annotates and
// keeps consuming the byte stream.
var (
	// ErrBadChecksum means a frame's stored checksum did not match the
	// recomputed one.
	ErrBadChecksum = errors.New("bad checksum")
	// ErrUnknownFrame means recognize fell through to the generic Frame.
	ErrUnknownFrame = errors.New("unknown frame")
	// ErrUnknownRecord means a record group had no recognized Directory
	// frame, or an unrecognized Directory payload, preceding it.
	ErrUnknownRecord = errors.New("unknown record")
)

// Record-layer errors, returned by the FromFrames/ToFrames pairs.
var (
	// ErrMalformedRecord means a required frame was missing from a
	// record group, or a decoded record violated one of its invariants.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnencodableChar means a Text encoder was given a character
	// outside the device character table.
	ErrUnencodableChar = errors.New("character not encodable by device character map")
	// ErrRecordTooLong means more than 376 bytes of text material were
	// requested in one record.
	ErrRecordTooLong = errors.New("record text exceeds 376 bytes")
)

// Sender errors. Any of these is fatal for the current transmission
// session.
var (
	// ErrProtocolViolation means the sender observed a wire-level
	// surprise: a NACK, an unexpected byte where ACK was required, or a
	// short write.
	ErrProtocolViolation = errors.New("protocol violation")
)

// ChannelError wraps an I/O error surfaced by the underlying duplex
// channel so it propagates unchanged while still being identifiable as a
// channel-layer failure via errors.As.
type ChannelError struct {
	Op  string
	Err error
}

func (e *ChannelError) Error() string {
	return "channel " + e.Op + ": " + e.Err.Error()
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// WrapChannel returns nil if err is nil, otherwise a *ChannelError
// tagging err with the operation (e.g. "write", "read") that produced it.
func WrapChannel(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ChannelError{Op: op, Err: err}
}
