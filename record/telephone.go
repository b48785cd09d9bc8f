package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// Telephone is a phonebook entry. CCS-8950 amalgamates Field1..Field6
// into a single on-device "memo" column; this module keeps them
// separate, matching the wire layout.
type Telephone struct {
	Color                                          *frame.Color
	Name                                           string
	Number, Address                                *string
	Field1, Field2, Field3, Field4, Field5, Field6 *string
}

// TelephoneFromFrames builds a Telephone from the frames of one record
// group.
func TelephoneFromFrames(frames []frame.Frame) (Telephone, error) {
	var color *frame.Color
	var textFrames []frame.Frame
	for _, f := range frames {
		switch f.Kind() {
		case frame.KindColor:
			c, err := frame.ParseColor(f)
			if err != nil {
				return Telephone{}, err
			}
			color = &c
		case frame.KindText:
			textFrames = append(textFrames, f)
		default:
			return Telephone{}, unexpectedFrame(f)
		}
	}
	fields := frame.JoinText(textFrames)
	if len(fields) == 0 || fields[0] == "" {
		return Telephone{}, fmt.Errorf("%w: missing name", digerr.ErrMalformedRecord)
	}
	return Telephone{
		Color:   color,
		Name:    fields[0],
		Number:  fieldAt(fields, 1),
		Address: fieldAt(fields, 2),
		Field1:  fieldAt(fields, 3),
		Field2:  fieldAt(fields, 4),
		Field3:  fieldAt(fields, 5),
		Field4:  fieldAt(fields, 6),
		Field5:  fieldAt(fields, 7),
		Field6:  fieldAt(fields, 8),
	}, nil
}

// ToFrames implements Record.
func (t Telephone) ToFrames() ([]frame.Frame, error) {
	var frames []frame.Frame
	if t.Color != nil {
		frames = append(frames, frame.NewColor(*t.Color))
	}
	fields := joinFields(
		[]string{t.Name},
		[]*string{t.Number, t.Address, t.Field1, t.Field2, t.Field3, t.Field4, t.Field5, t.Field6},
	)
	textFrames, err := frame.FromTextList(fields)
	if err != nil {
		return nil, err
	}
	return append(frames, textFrames...), nil
}

func (t Telephone) String() string {
	s := "Telephone: " + t.Name
	for _, p := range []*string{t.Number, t.Address, t.Field1, t.Field2, t.Field3, t.Field4, t.Field5, t.Field6} {
		if p != nil {
			s += ", " + *p
		}
	}
	if t.Color != nil {
		s += fmt.Sprintf(" (%s)", t.Color)
	}
	return s
}
