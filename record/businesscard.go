package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// BusinessCard is a CSF-8950-style business card entry.
type BusinessCard struct {
	Color                                                                               *frame.Color
	Employer, Name                                                                      string
	TelephoneNumber, TelexNumber, FaxNumber, Position, Department, PoBox, Address, Memo *string
}

// BusinessCardFromFrames builds a BusinessCard from the frames of one
// record group.
func BusinessCardFromFrames(frames []frame.Frame) (BusinessCard, error) {
	var color *frame.Color
	var textFrames []frame.Frame
	for _, f := range frames {
		switch f.Kind() {
		case frame.KindColor:
			c, err := frame.ParseColor(f)
			if err != nil {
				return BusinessCard{}, err
			}
			color = &c
		case frame.KindText:
			textFrames = append(textFrames, f)
		default:
			return BusinessCard{}, unexpectedFrame(f)
		}
	}
	fields := frame.JoinText(textFrames)
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return BusinessCard{}, fmt.Errorf("%w: missing employer and/or name", digerr.ErrMalformedRecord)
	}
	return BusinessCard{
		Color:           color,
		Employer:        fields[0],
		Name:            fields[1],
		TelephoneNumber: fieldAt(fields, 2),
		TelexNumber:     fieldAt(fields, 3),
		FaxNumber:       fieldAt(fields, 4),
		Position:        fieldAt(fields, 5),
		Department:      fieldAt(fields, 6),
		PoBox:           fieldAt(fields, 7),
		Address:         fieldAt(fields, 8),
		Memo:            fieldAt(fields, 9),
	}, nil
}

// ToFrames implements Record.
func (bc BusinessCard) ToFrames() ([]frame.Frame, error) {
	var frames []frame.Frame
	if bc.Color != nil {
		frames = append(frames, frame.NewColor(*bc.Color))
	}
	fields := joinFields(
		[]string{bc.Employer, bc.Name},
		[]*string{bc.TelephoneNumber, bc.TelexNumber, bc.FaxNumber, bc.Position, bc.Department, bc.PoBox, bc.Address, bc.Memo},
	)
	textFrames, err := frame.FromTextList(fields)
	if err != nil {
		return nil, err
	}
	return append(frames, textFrames...), nil
}

func (bc BusinessCard) String() string {
	s := fmt.Sprintf("Business Card: %s, %s", bc.Employer, bc.Name)
	for _, p := range []*string{bc.TelephoneNumber, bc.TelexNumber, bc.FaxNumber, bc.Position, bc.Department, bc.PoBox, bc.Address, bc.Memo} {
		if p != nil {
			s += ", " + *p
		}
	}
	if bc.Color != nil {
		s += fmt.Sprintf(" (%s)", bc.Color)
	}
	return s
}
