package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// ToDo is a checklist item. DeadlineTime and Alarm are only valid
// alongside DeadlineDate; CheckedTime requires both CheckedDate and
// DeadlineDate.
type ToDo struct {
	DeadlineDate, CheckedDate        *YMD
	DeadlineTime, Alarm, CheckedTime *frame.Time
	Description                      string
	Priority                         *frame.Priority
}

// ToDoFromFrames builds a ToDo from the frames of one record group.
func ToDoFromFrames(frames []frame.Frame) (ToDo, error) {
	var deadlineDate, checkedDate *YMD
	var deadlineTime, alarm, checkedTime *frame.Time
	var priority *frame.Priority
	var description string

	for _, f := range frames {
		switch f.Kind() {
		case frame.KindDeadlineDate:
			d, err := frame.ParseDeadlineDate(f)
			if err != nil {
				return ToDo{}, err
			}
			ymd, err := ymdFromFrameDate(d)
			if err != nil {
				return ToDo{}, err
			}
			deadlineDate = &ymd
		case frame.KindDeadlineTime:
			t, err := frame.ParseTime(f)
			if err != nil {
				return ToDo{}, err
			}
			deadlineTime = &t
		case frame.KindToDoAlarm:
			t, err := frame.ParseTime(f)
			if err != nil {
				return ToDo{}, err
			}
			alarm = &t
		case frame.KindDate:
			d, err := frame.ParseDate(f)
			if err != nil {
				return ToDo{}, err
			}
			ymd, err := ymdFromFrameDate(d)
			if err != nil {
				return ToDo{}, err
			}
			checkedDate = &ymd
		case frame.KindTime:
			t, err := frame.ParseTime(f)
			if err != nil {
				return ToDo{}, err
			}
			checkedTime = &t
		case frame.KindPriority:
			p, err := frame.ParsePriority(f)
			if err != nil {
				return ToDo{}, err
			}
			priority = &p
		case frame.KindText:
			description += frame.TextOf(f)
		default:
			return ToDo{}, unexpectedFrame(f)
		}
	}
	if description == "" {
		return ToDo{}, fmt.Errorf("%w: missing description", digerr.ErrMalformedRecord)
	}
	if (deadlineTime != nil || alarm != nil) && deadlineDate == nil {
		return ToDo{}, fmt.Errorf("%w: deadline_time/alarm without deadline_date", digerr.ErrMalformedRecord)
	}
	if checkedTime != nil && (checkedDate == nil || deadlineDate == nil) {
		return ToDo{}, fmt.Errorf("%w: checked_time without checked_date and deadline_date", digerr.ErrMalformedRecord)
	}
	return ToDo{
		DeadlineDate: deadlineDate,
		DeadlineTime: deadlineTime,
		Alarm:        alarm,
		CheckedDate:  checkedDate,
		CheckedTime:  checkedTime,
		Description:  description,
		Priority:     priority,
	}, nil
}

// ToFrames implements Record.
func (td ToDo) ToFrames() ([]frame.Frame, error) {
	if (td.DeadlineTime != nil || td.Alarm != nil) && td.DeadlineDate == nil {
		return nil, fmt.Errorf("%w: deadline_time/alarm without deadline_date", digerr.ErrMalformedRecord)
	}
	if td.CheckedTime != nil && (td.CheckedDate == nil || td.DeadlineDate == nil) {
		return nil, fmt.Errorf("%w: checked_time without checked_date and deadline_date", digerr.ErrMalformedRecord)
	}
	if td.Description == "" {
		return nil, fmt.Errorf("%w: missing description", digerr.ErrMalformedRecord)
	}

	var frames []frame.Frame
	if td.DeadlineDate != nil {
		frames = append(frames, frame.NewDeadlineDate(td.DeadlineDate.toFrameDate()))
	}
	if td.DeadlineTime != nil {
		frames = append(frames, frame.NewDeadlineTime(*td.DeadlineTime))
	}
	if td.Alarm != nil {
		frames = append(frames, frame.NewToDoAlarm(*td.Alarm))
	}
	if td.CheckedDate != nil {
		frames = append(frames, frame.NewDate(td.CheckedDate.toFrameDate()))
	}
	if td.CheckedTime != nil {
		frames = append(frames, frame.NewTime(*td.CheckedTime))
	}
	if td.Priority != nil {
		frames = append(frames, frame.NewPriority(*td.Priority))
	}
	textFrames, err := frame.FromText(td.Description)
	if err != nil {
		return nil, err
	}
	return append(frames, textFrames...), nil
}

func (td ToDo) String() string {
	str := "To Do: "
	if td.DeadlineDate != nil {
		str += "Deadline: " + td.DeadlineDate.String() + " "
	}
	if td.DeadlineTime != nil {
		str += fmt.Sprintf("%s ", td.DeadlineTime)
	}
	if td.Alarm != nil {
		str += fmt.Sprintf("Alarm: %s ", td.Alarm)
	}
	if td.CheckedDate != nil {
		str += "Checked: " + td.CheckedDate.String() + " "
	}
	if td.CheckedTime != nil {
		str += fmt.Sprintf("%s ", td.CheckedTime)
	}
	if td.Priority != nil {
		str += fmt.Sprintf("Priority: %s ", td.Priority)
	}
	str += td.Description
	return str
}
