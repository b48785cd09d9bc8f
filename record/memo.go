package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/frame"
)

// Memo is a free-text note.
type Memo struct {
	Color *frame.Color
	Text  string
}

// MemoFromFrames builds a Memo from the frames of one record group.
func MemoFromFrames(frames []frame.Frame) (Memo, error) {
	var color *frame.Color
	var text string
	for _, f := range frames {
		switch f.Kind() {
		case frame.KindColor:
			c, err := frame.ParseColor(f)
			if err != nil {
				return Memo{}, err
			}
			color = &c
		case frame.KindText:
			text += frame.TextOf(f)
		default:
			return Memo{}, unexpectedFrame(f)
		}
	}
	return Memo{Color: color, Text: text}, nil
}

// ToFrames implements Record.
func (m Memo) ToFrames() ([]frame.Frame, error) {
	var frames []frame.Frame
	if m.Color != nil {
		frames = append(frames, frame.NewColor(*m.Color))
	}
	textFrames, err := frame.FromText(m.Text)
	if err != nil {
		return nil, err
	}
	return append(frames, textFrames...), nil
}

func (m Memo) String() string {
	return fmt.Sprintf("Memo: %q", m.Text)
}
