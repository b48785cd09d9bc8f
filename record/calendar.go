package record

import (
	"fmt"
	"strings"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// Calendar is a month's highlighted-day view, optionally with a per-day
// color assignment.
type Calendar struct {
	Year, Month int
	Days        map[int]bool
	Colors      *[31]frame.Color
}

// CalendarFromFrames builds a Calendar from the frames of one record
// group.
func CalendarFromFrames(frames []frame.Frame) (Calendar, error) {
	var year, month int
	days := map[int]bool{}
	var colors *[31]frame.Color
	for _, f := range frames {
		switch f.Kind() {
		case frame.KindDate:
			d, err := frame.ParseDate(f)
			if err != nil {
				return Calendar{}, err
			}
			if d.Year == nil {
				return Calendar{}, fmt.Errorf("%w: missing year", digerr.ErrMalformedRecord)
			}
			if d.Month == nil {
				return Calendar{}, fmt.Errorf("%w: missing month", digerr.ErrMalformedRecord)
			}
			year, month = *d.Year, *d.Month
		case frame.KindDayHighlight:
			dh, err := frame.ParseDayHighlight(f)
			if err != nil {
				return Calendar{}, err
			}
			for d := range dh.Days {
				days[d] = true
			}
		case frame.KindDayColorHighlight:
			dc, err := frame.ParseDayColorHighlight(f)
			if err != nil {
				return Calendar{}, err
			}
			for d := range dc.HighlightedDays {
				days[d] = true
			}
			c := dc.DayColors
			colors = &c
		default:
			return Calendar{}, unexpectedFrame(f)
		}
	}
	if year == 0 || month == 0 {
		return Calendar{}, fmt.Errorf("%w: missing date frame", digerr.ErrMalformedRecord)
	}
	return Calendar{Year: year, Month: month, Days: days, Colors: colors}, nil
}

// ToFrames implements Record. The DayHighlight frame is always emitted;
// DayColorHighlight additionally carries per-day colors when present.
func (cal Calendar) ToFrames() ([]frame.Frame, error) {
	one := 1
	year, month := cal.Year, cal.Month
	frames := []frame.Frame{
		frame.NewDate(frame.Date{Year: &year, Month: &month, Day: &one}),
		frame.FromDays(cal.Days),
	}
	if cal.Colors != nil {
		frames = append(frames, frame.FromDaysAndColors(cal.Days, *cal.Colors))
	}
	return frames, nil
}

func (cal Calendar) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Calendar: %04d-%02d ", cal.Year, cal.Month)
	for day := 1; day <= 31; day++ {
		fmt.Fprintf(&sb, "%d", day)
		if cal.Colors != nil {
			c := cal.Colors[day-1]
			if name := c.String(); len(name) > 0 {
				sb.WriteString(strings.ToLower(name[:1]))
			}
		}
		if cal.Days[day] {
			sb.WriteString("*")
		}
		if day != 31 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
