package sender

import "time"

// Channel is the abstract duplex transport the Sender drives. The
// physical serial port stays out of the protocol core, so every
// operation the state machine needs is expressed here. Real traffic
// flows through serialchannel.Channel; tests substitute a scripted
// fake.
type Channel interface {
	// Write writes p in full or returns an error; the Sender treats a
	// short write as a protocol violation.
	Write(p []byte) (int, error)

	// InWaiting reports how many bytes are available to Read without
	// blocking.
	InWaiting() (int, error)

	// Read blocks until exactly one byte is available.
	Read() (byte, error)

	// ReadTimeout waits up to d for one byte. ok is false, with a nil
	// error, if the deadline elapsed with nothing received.
	ReadTimeout(d time.Duration) (b byte, ok bool, err error)
}
