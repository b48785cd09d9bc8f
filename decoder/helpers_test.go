package decoder

import (
	"testing"

	"github.com/fornellas/digitaldiary/frame"
)

// feeder drives a Decoder one byte at a time, assigning each byte a
// one-sample span the way a capture with one sample per UART byte
// would.
type feeder struct {
	d   *Decoder
	pos int
}

func (f *feeder) sender(b byte) {
	f.d.FeedSender(f.pos, f.pos+1, b)
	f.pos++
}

func (f *feeder) receiver(b byte) {
	f.d.FeedReceiver(f.pos, f.pos+1, b)
	f.pos++
}

// feedFrame feeds one already-serialized frame (leading ':' included)
// through the decoder a byte at a time.
func feedFrame(t *testing.T, f *feeder, wire []byte) {
	t.Helper()
	for _, b := range wire {
		f.sender(b)
	}
}

func frameWireTelephoneDirectory() []byte {
	return frame.NewTelephoneDirectory().Bytes()
}

func frameWireText(s string) []byte {
	frames, err := frame.FromText(s)
	if err != nil {
		panic(err)
	}
	var out []byte
	for _, f := range frames {
		out = append(out, f.Bytes()...)
	}
	return out
}

func frameWireEndOfRecord() []byte {
	return frame.NewEndOfRecord().Bytes()
}
