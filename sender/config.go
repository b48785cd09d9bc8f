package sender

import (
	"errors"
	"time"
)

// defines the sender's flow-control/handshake configuration range.
const (
	// HandshakeAttemptsMin/Max bound the number of CR/LF handshake
	// attempts before giving up.
	HandshakeAttemptsMin = 1
	HandshakeAttemptsMax = 255

	// HandshakeXonTimeoutMin/Max bound how long to wait for XON after
	// one CR/LF attempt.
	HandshakeXonTimeoutMin = 10 * time.Millisecond
	HandshakeXonTimeoutMax = 5 * time.Second

	// AckTimeoutMin/Max bound how long to wait for a per-frame ACK/NACK.
	AckTimeoutMin = 10 * time.Millisecond
	AckTimeoutMax = 10 * time.Second
)

// Config defines the Sender's timing. The default is applied for each
// unspecified value: roughly one byte-time between writes, 40ms between
// frames, 30ms after an ACK.
type Config struct {
	// HandshakeAttempts is the number of CR/LF attempts before the
	// handshake fails.
	HandshakeAttempts int

	// HandshakeXonTimeout is how long to wait for XON after one
	// handshake attempt.
	HandshakeXonTimeout time.Duration

	// InterByteDelay is the delay after writing each byte of a frame,
	// approximating the transmit time at the configured baud rate.
	InterByteDelay time.Duration

	// InterFrameDelay is the delay after a complete frame is written,
	// before the next write.
	InterFrameDelay time.Duration

	// AckTimeout bounds how long to wait for a frame's ACK/NACK.
	AckTimeout time.Duration

	// PostAckDelay is the delay observed after receiving an ACK, before
	// proceeding.
	PostAckDelay time.Duration
}

// Valid applies the default to each unspecified value and rejects values
// outside the supported range.
func (sf *Config) Valid() error {
	if sf == nil {
		return errors.New("invalid pointer")
	}

	if sf.HandshakeAttempts == 0 {
		sf.HandshakeAttempts = 50
	} else if sf.HandshakeAttempts < HandshakeAttemptsMin || sf.HandshakeAttempts > HandshakeAttemptsMax {
		return errors.New("HandshakeAttempts not in [1, 255]")
	}

	if sf.HandshakeXonTimeout == 0 {
		sf.HandshakeXonTimeout = 200 * time.Millisecond
	} else if sf.HandshakeXonTimeout < HandshakeXonTimeoutMin || sf.HandshakeXonTimeout > HandshakeXonTimeoutMax {
		return errors.New("HandshakeXonTimeout not in [10ms, 5s]")
	}

	if sf.InterByteDelay == 0 {
		sf.InterByteDelay = time.Millisecond
	}

	if sf.InterFrameDelay == 0 {
		sf.InterFrameDelay = 40 * time.Millisecond
	}

	if sf.AckTimeout == 0 {
		sf.AckTimeout = time.Second
	} else if sf.AckTimeout < AckTimeoutMin || sf.AckTimeout > AckTimeoutMax {
		return errors.New("AckTimeout not in [10ms, 10s]")
	}

	if sf.PostAckDelay == 0 {
		sf.PostAckDelay = 30 * time.Millisecond
	}

	return nil
}

// DefaultConfig returns the timing a real device is known to accept.
func DefaultConfig() Config {
	return Config{
		HandshakeAttempts:   50,
		HandshakeXonTimeout: 200 * time.Millisecond,
		InterByteDelay:      time.Millisecond,
		InterFrameDelay:     40 * time.Millisecond,
		AckTimeout:          time.Second,
		PostAckDelay:        30 * time.Millisecond,
	}
}
