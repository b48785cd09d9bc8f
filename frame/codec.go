// Package frame implements the digital diary wire frame: the byte-level
// codec (checksum, hex-on-the-wire serialization), the incremental
// FrameBuilder that reassembles a Frame from a decoded byte stream, and
// the Kind taxonomy that recognizes a concrete frame variant from
// (length, type, address, data).
package frame

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
)

// frameStart is the leading byte of every frame on the wire, not itself
// hex-encoded.
const frameStart = byte(':')

// Frame is the atomic protocol unit. Frames are immutable value types
// once constructed; nothing in this package mutates a Frame's fields
// after NewFrame/FromParts returns it.
type Frame struct {
	Length   uint8
	Type     uint8
	Address  uint16
	Data     []byte
	Checksum uint8
}

// CalculateChecksum computes the frame checksum:
//
//	checksum = negate8(length + type + addr_hi + addr_lo + sum(data))
//	negate8(x) = ((0xFF - (x & 0xFF)) + 1) & 0xFF
func CalculateChecksum(length, typ uint8, address uint16, data []byte) uint8 {
	sum := uint32(length) + uint32(typ) + uint32(address>>8) + uint32(address&0xFF)
	for _, b := range data {
		sum += uint32(b)
	}
	return negate8(uint8(sum & 0xFF))
}

func negate8(x uint8) uint8 {
	return uint8((0xFF-(uint32(x)&0xFF))+1) & 0xFF
}

// NewFrame builds a Frame from its fields, computing the checksum.
// len(data) must equal length.
func NewFrame(length, typ uint8, address uint16, data []byte) Frame {
	return Frame{
		Length:   length,
		Type:     typ,
		Address:  address,
		Data:     data,
		Checksum: CalculateChecksum(length, typ, address, data),
	}
}

// VerifyChecksum reports whether the Frame's stored checksum matches a
// fresh recomputation.
func (f Frame) VerifyChecksum() bool {
	return f.Checksum == CalculateChecksum(f.Length, f.Type, f.Address, f.Data)
}

func hexPair(v uint8) [2]byte {
	const digits = "0123456789ABCDEF"
	return [2]byte{digits[v>>4], digits[v&0xF]}
}

// Bytes serializes the frame onto the wire: ':' followed by two
// upper-case ASCII hex digits for each of length, type, addr_lo, addr_hi,
// each data byte in order, then checksum.
func (f Frame) Bytes() []byte {
	out := make([]byte, 0, 1+2*(5+len(f.Data)))
	out = append(out, frameStart)
	appendHex := func(v uint8) {
		p := hexPair(v)
		out = append(out, p[0], p[1])
	}
	appendHex(f.Length)
	appendHex(f.Type)
	appendHex(uint8(f.Address & 0xFF))
	appendHex(uint8(f.Address >> 8))
	for _, b := range f.Data {
		appendHex(b)
	}
	appendHex(f.Checksum)
	return out
}

// String renders the frame the way its recognized FrameKind would, for
// logging and annotation messages.
func (f Frame) String() string {
	kind := Recognize(f.Length, f.Type, f.Address, f.Data)
	return kind.Describe(f)
}

// BuilderStage names the field an incremental FrameBuilder.AddByte call
// just consumed.
type BuilderStage int

const (
	StageLength BuilderStage = iota
	StageType
	StageAddressLow
	StageAddressHigh
	StageData
	StageChecksum
)

func (s BuilderStage) String() string {
	switch s {
	case StageLength:
		return "Length"
	case StageType:
		return "Type"
	case StageAddressLow:
		return "Address Low"
	case StageAddressHigh:
		return "Address High"
	case StageData:
		return "Data"
	case StageChecksum:
		return "Checksum"
	default:
		return fmt.Sprintf("BuilderStage(%d)", int(s))
	}
}

// FrameBuilder incrementally assembles a Frame from one already-decoded
// byte at a time (the caller is responsible for turning ASCII hex digit
// pairs into bytes before calling AddByte). State advances
// Length, Type, AddressLow, AddressHigh, Data (length bytes, possibly
// zero), Checksum, then emits the Frame and resets.
type FrameBuilder struct {
	length      uint8
	haveLength  bool
	typ         uint8
	haveType    bool
	addrLow     uint8
	haveAddrLow bool
	address     uint16
	haveAddress bool
	remaining   uint8
	data        []byte
	done        bool
}

// AddByte feeds one decoded byte into the builder. It returns the stage
// that byte just completed and, once the checksum byte is consumed, the
// assembled Frame built by FromParts (its Kind is recognized on demand
// by Frame.Kind); frame is nil at every other stage.
func (b *FrameBuilder) AddByte(value uint8) (BuilderStage, *Frame) {
	switch {
	case !b.haveLength:
		b.length = value
		b.haveLength = true
		b.remaining = value
		return StageLength, nil
	case !b.haveType:
		b.typ = value
		b.haveType = true
		return StageType, nil
	case !b.haveAddrLow:
		b.addrLow = value
		b.haveAddrLow = true
		return StageAddressLow, nil
	case !b.haveAddress:
		b.address = uint16(value)<<8 | uint16(b.addrLow)
		b.haveAddress = true
		return StageAddressHigh, nil
	case b.remaining > 0:
		b.data = append(b.data, value)
		b.remaining--
		return StageData, nil
	default:
		f := FromParts(b.length, b.typ, b.address, b.data, value)
		*b = FrameBuilder{}
		return StageChecksum, &f
	}
}

// FromParts builds a Frame from fully decoded fields, preserving the
// checksum exactly as received; it is not recomputed, so callers can use
// VerifyChecksum to detect a mismatch.
func FromParts(length, typ uint8, address uint16, data []byte, checksum uint8) Frame {
	return Frame{
		Length:   length,
		Type:     typ,
		Address:  address,
		Data:     data,
		Checksum: checksum,
	}
}

// ParseWire decodes a complete wire-encoded frame (leading ':' plus ASCII
// hex pairs, as produced by Frame.Bytes) back into a Frame. It is the
// inverse of Bytes, used by tests and by any caller that already has a
// de-framed byte buffer rather than a live UART stream.
func ParseWire(wire []byte) (Frame, error) {
	if len(wire) < 1 || wire[0] != frameStart {
		return Frame{}, fmt.Errorf("%w: missing frame start", digerr.ErrUnknownFrame)
	}
	hexBody := wire[1:]
	if len(hexBody)%2 != 0 {
		return Frame{}, fmt.Errorf("%w: odd number of hex digits", digerr.ErrUnknownFrame)
	}
	var builder FrameBuilder
	var result *Frame
	for i := 0; i < len(hexBody); i += 2 {
		var v uint8
		if _, err := fmt.Sscanf(string(hexBody[i:i+2]), "%02X", &v); err != nil {
			return Frame{}, fmt.Errorf("%w: %v", digerr.ErrUnknownFrame, err)
		}
		_, f := builder.AddByte(v)
		if f != nil {
			result = f
		}
	}
	if result == nil {
		return Frame{}, fmt.Errorf("%w: truncated frame", digerr.ErrUnknownFrame)
	}
	return *result, nil
}
