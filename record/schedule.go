package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// Schedule is a dated appointment. At least one of StartTime or
// Description must be present; EndTime and AlarmTime are only valid
// alongside StartTime.
type Schedule struct {
	Date                          YMD
	StartTime, EndTime, AlarmTime *frame.Time
	Illustration                  *byte
	Description                   *string
	Color                         *frame.Color
}

// ScheduleFromFrames builds a Schedule from the frames of one record
// group. When both a StartEndTime and a bare Time frame are present, the
// last one encountered wins.
func ScheduleFromFrames(frames []frame.Frame) (Schedule, error) {
	var date *YMD
	var start, end, alarm *frame.Time
	var illustration *byte
	var description *string
	var color *frame.Color
	var descText string
	haveDesc := false

	for _, f := range frames {
		switch f.Kind() {
		case frame.KindColor:
			c, err := frame.ParseColor(f)
			if err != nil {
				return Schedule{}, err
			}
			color = &c
		case frame.KindDate:
			d, err := frame.ParseDate(f)
			if err != nil {
				return Schedule{}, err
			}
			ymd, err := ymdFromFrameDate(d)
			if err != nil {
				return Schedule{}, err
			}
			date = &ymd
		case frame.KindStartEndTime:
			se, err := frame.ParseStartEndTime(f)
			if err != nil {
				return Schedule{}, err
			}
			start, end = &se.Start, &se.End
		case frame.KindTime:
			t, err := frame.ParseTime(f)
			if err != nil {
				return Schedule{}, err
			}
			start, end = &t, nil
		case frame.KindAlarm:
			t, err := frame.ParseTime(f)
			if err != nil {
				return Schedule{}, err
			}
			alarm = &t
		case frame.KindIllustration:
			id, err := frame.IllustrationID(f)
			if err != nil {
				return Schedule{}, err
			}
			illustration = &id
		case frame.KindText:
			haveDesc = true
			descText += frame.TextOf(f)
		default:
			return Schedule{}, unexpectedFrame(f)
		}
	}
	if haveDesc {
		description = &descText
	}
	if date == nil {
		return Schedule{}, fmt.Errorf("%w: missing date", digerr.ErrMalformedRecord)
	}
	if start == nil && description == nil {
		return Schedule{}, fmt.Errorf("%w: need start_time or description", digerr.ErrMalformedRecord)
	}
	return Schedule{
		Date:         *date,
		StartTime:    start,
		EndTime:      end,
		AlarmTime:    alarm,
		Illustration: illustration,
		Description:  description,
		Color:        color,
	}, nil
}

// ToFrames implements Record.
func (s Schedule) ToFrames() ([]frame.Frame, error) {
	if s.EndTime != nil && s.StartTime == nil {
		return nil, fmt.Errorf("%w: end_time without start_time", digerr.ErrMalformedRecord)
	}
	if s.AlarmTime != nil && s.StartTime == nil {
		return nil, fmt.Errorf("%w: alarm_time without start_time", digerr.ErrMalformedRecord)
	}
	if s.StartTime == nil && s.Description == nil {
		return nil, fmt.Errorf("%w: need start_time or description", digerr.ErrMalformedRecord)
	}

	frames := []frame.Frame{frame.NewDate(s.Date.toFrameDate())}
	switch {
	case s.StartTime != nil && s.EndTime != nil:
		frames = append(frames, frame.NewStartEndTime(frame.StartEndTime{Start: *s.StartTime, End: *s.EndTime}))
	case s.StartTime != nil:
		frames = append(frames, frame.NewTime(*s.StartTime))
	}
	if s.AlarmTime != nil {
		frames = append(frames, frame.NewAlarm(*s.AlarmTime))
	}
	if s.Illustration != nil {
		frames = append(frames, frame.NewIllustration(*s.Illustration))
	}
	if s.Color != nil {
		frames = append(frames, frame.NewColor(*s.Color))
	}
	if s.Description != nil {
		textFrames, err := frame.FromText(*s.Description)
		if err != nil {
			return nil, err
		}
		frames = append(frames, textFrames...)
	}
	return frames, nil
}

func (s Schedule) String() string {
	str := fmt.Sprintf("Schedule: %s", s.Date)
	if s.StartTime != nil {
		str += fmt.Sprintf(", %s", s.StartTime)
	}
	if s.EndTime != nil {
		str += fmt.Sprintf(", %s", s.EndTime)
	}
	if s.AlarmTime != nil {
		str += fmt.Sprintf(", alarm %s", s.AlarmTime)
	}
	if s.Description != nil {
		str += ", " + *s.Description
	}
	if s.Color != nil {
		str += fmt.Sprintf(" (%s)", s.Color)
	}
	return str
}
