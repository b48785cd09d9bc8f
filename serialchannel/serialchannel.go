// Package serialchannel implements sender.Channel over a real POSIX tty
// using github.com/daedaluz/goserial, so SendAll can drive an actual
// device rather than the scripted fakes the sender package's tests use.
package serialchannel

import (
	"time"

	serial "github.com/daedaluz/goserial"

	"github.com/fornellas/digitaldiary/digerr"
)

// Parity selects the tty's parity mode.
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// Channel is a sender.Channel backed by a goserial.Port. goserial's Read
// is a blocking raw read of the underlying fd, with no way to ask "is a
// byte available" without consuming it, so Channel keeps a one-byte
// lookahead: InWaiting pulls a byte into that slot with a zero timeout
// when the slot is empty, and every Read/ReadTimeout drains the slot
// first.
type Channel struct {
	port   *serial.Port
	peeked *byte
	closed bool
}

// charSize maps the requested data bit width to its CFlag, defaulting
// to 8 bits.
func charSize(bits int) serial.CFlag {
	switch bits {
	case 5:
		return serial.CS5
	case 6:
		return serial.CS6
	case 7:
		return serial.CS7
	default:
		return serial.CS8
	}
}

// Open opens path at the given baud rate and data bit width, one stop
// bit, and the requested parity (the devices typically run 9600 baud,
// 7 data bits, no parity). The port's default Read blocks indefinitely;
// InWaiting and ReadTimeout use their own explicit, non-negative
// timeouts.
func Open(path string, baud int, bits int, parity Parity) (*Channel, error) {
	port, err := serial.Open(path, serial.NewOptions().SetReadTimeout(-1))
	if err != nil {
		return nil, digerr.WrapChannel("open", err)
	}

	attrs, err := port.GetAttr2()
	if err != nil {
		port.Close()
		return nil, digerr.WrapChannel("get_attr", err)
	}
	attrs.MakeRaw()
	attrs.Cflag &^= serial.CSIZE | serial.PARENB | serial.PARODD | serial.CSTOPB
	attrs.Cflag |= charSize(bits) | serial.CREAD | serial.CLOCAL
	switch parity {
	case ParityEven:
		attrs.Cflag |= serial.PARENB
	case ParityOdd:
		attrs.Cflag |= serial.PARENB | serial.PARODD
	}
	attrs.SetCustomSpeed(uint32(baud))

	if err := port.SetAttr2(serial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, digerr.WrapChannel("set_attr", err)
	}

	return &Channel{port: port}, nil
}

// Close closes the underlying port. It is idempotent, so a deferred
// Close after Open is always safe.
func (sf *Channel) Close() error {
	if sf.closed {
		return nil
	}
	sf.closed = true
	return sf.port.Close()
}

// Write implements sender.Channel.
func (sf *Channel) Write(p []byte) (int, error) {
	return sf.port.Write(p)
}

// fillTimeout reads into the peek slot with an explicit, non-negative
// timeout (0 polls without blocking).
func (sf *Channel) fillTimeout(d time.Duration) error {
	if sf.peeked != nil {
		return nil
	}
	buf := make([]byte, 1)
	n, err := sf.port.ReadTimeout(buf, d)
	if err != nil {
		return err
	}
	if n == 1 {
		sf.peeked = &buf[0]
	}
	return nil
}

// InWaiting implements sender.Channel by attempting a non-blocking
// single-byte read into the lookahead slot.
func (sf *Channel) InWaiting() (int, error) {
	if sf.peeked != nil {
		return 1, nil
	}
	if err := sf.fillTimeout(0); err != nil {
		return 0, err
	}
	if sf.peeked != nil {
		return 1, nil
	}
	return 0, nil
}

// Read implements sender.Channel, blocking until one byte is available.
func (sf *Channel) Read() (byte, error) {
	if sf.peeked == nil {
		buf := make([]byte, 1)
		if _, err := sf.port.Read(buf); err != nil {
			return 0, err
		}
		sf.peeked = &buf[0]
	}
	b := *sf.peeked
	sf.peeked = nil
	return b, nil
}

// ReadTimeout implements sender.Channel.
func (sf *Channel) ReadTimeout(d time.Duration) (byte, bool, error) {
	if d < 0 {
		d = 0
	}
	if err := sf.fillTimeout(d); err != nil {
		return 0, false, err
	}
	if sf.peeked == nil {
		return 0, false, nil
	}
	b := *sf.peeked
	sf.peeked = nil
	return b, true, nil
}
