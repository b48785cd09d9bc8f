package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// Reminder is a recurring or one-off note pinned to a month/day; its
// Date frame never carries a year. Month is only meaningful alongside
// Day.
type Reminder struct {
	Month, Day  *int
	AlarmTime   *frame.Time
	Description string
	Color       *frame.Color
}

// ReminderFromFrames builds a Reminder from the frames of one record
// group.
func ReminderFromFrames(frames []frame.Frame) (Reminder, error) {
	var month, day *int
	var alarm *frame.Time
	var color *frame.Color
	var description string

	for _, f := range frames {
		switch f.Kind() {
		case frame.KindColor:
			c, err := frame.ParseColor(f)
			if err != nil {
				return Reminder{}, err
			}
			color = &c
		case frame.KindDate:
			d, err := frame.ParseDate(f)
			if err != nil {
				return Reminder{}, err
			}
			month, day = d.Month, d.Day
		case frame.KindAlarm:
			t, err := frame.ParseTime(f)
			if err != nil {
				return Reminder{}, err
			}
			alarm = &t
		case frame.KindText:
			description += frame.TextOf(f)
		default:
			return Reminder{}, unexpectedFrame(f)
		}
	}
	if description == "" {
		return Reminder{}, fmt.Errorf("%w: missing description", digerr.ErrMalformedRecord)
	}
	if month != nil && day == nil {
		return Reminder{}, fmt.Errorf("%w: month without day", digerr.ErrMalformedRecord)
	}
	return Reminder{Month: month, Day: day, AlarmTime: alarm, Description: description, Color: color}, nil
}

// ToFrames implements Record.
func (r Reminder) ToFrames() ([]frame.Frame, error) {
	if r.Month != nil && r.Day == nil {
		return nil, fmt.Errorf("%w: month without day", digerr.ErrMalformedRecord)
	}
	if r.Description == "" {
		return nil, fmt.Errorf("%w: missing description", digerr.ErrMalformedRecord)
	}

	frames := []frame.Frame{frame.NewDate(frame.Date{Month: r.Month, Day: r.Day})}
	if r.AlarmTime != nil {
		frames = append(frames, frame.NewAlarm(*r.AlarmTime))
	}
	textFrames, err := frame.FromText(r.Description)
	if err != nil {
		return nil, err
	}
	frames = append(frames, textFrames...)
	if r.Color != nil {
		frames = append(frames, frame.NewColor(*r.Color))
	}
	return frames, nil
}

func (r Reminder) String() string {
	month, day := "--", "--"
	if r.Month != nil {
		month = fmt.Sprintf("%02d", *r.Month)
	}
	if r.Day != nil {
		day = fmt.Sprintf("%02d", *r.Day)
	}
	str := fmt.Sprintf("Reminder: %s-%s", month, day)
	if r.AlarmTime != nil {
		str += fmt.Sprintf(" %s", r.AlarmTime)
	}
	str += " " + r.Description
	return str
}
