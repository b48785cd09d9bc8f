// Package sender implements the active side of the protocol: the
// CR/LF/XON handshake, flow-controlled frame transmission, and
// per-frame acknowledgement state machine, driven over an abstract
// Channel rather than a concrete tty.
package sender

import (
	"fmt"
	"time"

	"github.com/fornellas/digitaldiary/clog"
	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
	"github.com/fornellas/digitaldiary/record"
)

const (
	byteXoff byte = 0x13
	byteXon  byte = 0x11
	byteAck  byte = 0x23
	byteNack byte = 0x3F
)

// DirectoryGroup pairs a Directory frame with the ordered records that
// belong under it, the unit a session transmits as one block.
type DirectoryGroup struct {
	Directory frame.Frame
	Records   []record.Record
}

// Sender drives one transmission session. It is not safe for concurrent
// use; create one per session.
type Sender struct {
	clog.Clog

	cfg     Config
	readBuf []byte
}

// New creates a Sender with the given Config, applying defaults to any
// unspecified field.
func New(cfg Config) (*Sender, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	return &Sender{cfg: cfg, Clog: clog.New("sender: ")}, nil
}

// writeByte writes one byte, first draining any XOFF/XON/stray bytes
// already waiting on the channel. A stray byte that is neither XOFF nor
// XON belongs to the frame boundary (an ACK/NACK that raced the drain)
// and is queued for the next read.
func (sf *Sender) writeByte(ch Channel, b byte) error {
	xoff := false
	for {
		n, err := ch.InWaiting()
		if err != nil {
			return digerr.WrapChannel("in_waiting", err)
		}
		if n == 0 && !xoff {
			break
		}
		read, err := ch.Read()
		if err != nil {
			return digerr.WrapChannel("read", err)
		}
		if read == byteXoff {
			sf.Debug("< XOFF")
			xoff = true
			continue
		}
		if read == byteXon {
			sf.Debug("< XON")
			break
		}
		sf.readBuf = append(sf.readBuf, read)
	}

	n, err := ch.Write([]byte{b})
	if err != nil {
		return digerr.WrapChannel("write", err)
	}
	if n != 1 {
		return fmt.Errorf("%w: short write", digerr.ErrProtocolViolation)
	}
	time.Sleep(sf.cfg.InterByteDelay)
	return nil
}

// waitForXon waits up to d for an XON byte, failing with
// ErrProtocolViolation on anything else.
func (sf *Sender) waitForXon(ch Channel, d time.Duration) (bool, error) {
	var b byte
	var ok bool
	var err error
	if len(sf.readBuf) > 0 {
		b, ok = sf.readBuf[0], true
		sf.readBuf = sf.readBuf[1:]
	} else {
		b, ok, err = ch.ReadTimeout(d)
		if err != nil {
			return false, digerr.WrapChannel("read_timeout", err)
		}
	}
	if !ok {
		return false, nil
	}
	if b != byteXon {
		return false, fmt.Errorf("%w: unexpected byte %#x while awaiting XON", digerr.ErrProtocolViolation, b)
	}
	sf.Debug("< XON")
	return true, nil
}

// handshake opens the session: CR, a short pause, LF, then a bounded
// wait for the receiver's XON, making up to Config.HandshakeAttempts
// attempts in total.
func (sf *Sender) handshake(ch Channel) error {
	for attempt := 1; attempt <= sf.cfg.HandshakeAttempts; attempt++ {
		sf.Debug("> CR")
		if err := sf.writeByte(ch, '\r'); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
		sf.Debug("> LF")
		if err := sf.writeByte(ch, '\n'); err != nil {
			return err
		}
		ok, err := sf.waitForXon(ch, sf.cfg.HandshakeXonTimeout)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("%w: no XON after %d handshake attempts", digerr.ErrProtocolViolation, sf.cfg.HandshakeAttempts)
}

func (sf *Sender) sendFrame(ch Channel, f frame.Frame) error {
	sf.Debug("> %s", f)
	for _, b := range f.Bytes() {
		if err := sf.writeByte(ch, b); err != nil {
			return err
		}
	}
	time.Sleep(sf.cfg.InterFrameDelay)
	return nil
}

func (sf *Sender) waitForAck(ch Channel) error {
	var b byte
	var ok bool
	var err error
	if len(sf.readBuf) > 0 {
		b, ok = sf.readBuf[0], true
		sf.readBuf = sf.readBuf[1:]
	} else {
		b, ok, err = ch.ReadTimeout(sf.cfg.AckTimeout)
		if err != nil {
			return digerr.WrapChannel("read_timeout", err)
		}
	}
	if !ok {
		return fmt.Errorf("%w: no ACK/NACK within %s", digerr.ErrProtocolViolation, sf.cfg.AckTimeout)
	}
	switch b {
	case byteAck:
		sf.Debug("< ACK")
		time.Sleep(sf.cfg.PostAckDelay)
		return nil
	case byteNack:
		sf.Debug("< NACK")
		return fmt.Errorf("%w: NACK received", digerr.ErrProtocolViolation)
	default:
		return fmt.Errorf("%w: unexpected byte %#x while awaiting ACK", digerr.ErrProtocolViolation, b)
	}
}

func (sf *Sender) sendDirectory(ch Channel, directory frame.Frame) error {
	if err := sf.sendFrame(ch, directory); err != nil {
		return err
	}
	return sf.waitForAck(ch)
}

func (sf *Sender) sendRecord(ch Channel, r record.Record) error {
	frames, err := r.ToFrames()
	if err != nil {
		return err
	}
	for _, f := range frames {
		if err := sf.sendFrame(ch, f); err != nil {
			return err
		}
	}
	if err := sf.sendFrame(ch, frame.NewEndOfRecord()); err != nil {
		return err
	}
	return sf.waitForAck(ch)
}

// SendAll runs one complete transmission session over ch: handshake,
// then for each DirectoryGroup its Directory frame (awaiting ACK) and
// each record's frames plus EndOfRecord (awaiting ACK), then a final
// EndOfTransmission with no ACK expected.
func (sf *Sender) SendAll(ch Channel, groups []DirectoryGroup) error {
	if err := sf.handshake(ch); err != nil {
		return err
	}
	for _, g := range groups {
		if err := sf.sendDirectory(ch, g.Directory); err != nil {
			return err
		}
		for _, r := range g.Records {
			if err := sf.sendRecord(ch, r); err != nil {
				return err
			}
		}
	}
	return sf.sendFrame(ch, frame.NewEndOfTransmission())
}
