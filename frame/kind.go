package frame

import "fmt"

// Kind is a closed tagged variant over the concrete frame shapes the
// protocol defines. Recognize is the single dispatch point; record-layer
// and decoder code should switch on Kind rather than re-deriving it
// from raw fields.
type Kind int

const (
	KindUnknown Kind = iota
	KindDirectory
	KindTelephoneDirectory
	KindBusinessCardDirectory
	KindMemoDirectory
	KindCalendarDirectory
	KindScheduleDirectory
	KindReminderDirectory
	KindToDoDirectory
	KindExpenseDirectory
	KindColor
	KindPriority
	KindDate
	KindDeadlineDate
	KindTime
	KindStartEndTime
	KindDeadlineTime
	KindToDoAlarm
	KindAlarm
	KindDayHighlight
	KindDayColorHighlight
	KindIllustration
	KindText
	KindEndOfRecord
	KindEndOfTransmission
)

var kindNames = map[Kind]string{
	KindUnknown:               "Unknown",
	KindDirectory:             "Directory",
	KindTelephoneDirectory:    "Telephone Directory",
	KindBusinessCardDirectory: "Business Card Directory",
	KindMemoDirectory:         "Memo Directory",
	KindCalendarDirectory:     "Calendar Directory",
	KindScheduleDirectory:     "Schedule Directory",
	KindReminderDirectory:     "Reminder Directory",
	KindToDoDirectory:         "To Do Directory",
	KindExpenseDirectory:      "Expense Directory",
	KindColor:                 "Color",
	KindPriority:              "Priority",
	KindDate:                  "Date",
	KindDeadlineDate:          "Deadline Date",
	KindTime:                  "Time",
	KindStartEndTime:          "Start End Time",
	KindDeadlineTime:          "Deadline Time",
	KindToDoAlarm:             "To Do Alarm",
	KindAlarm:                 "Alarm",
	KindDayHighlight:          "Day Highlight",
	KindDayColorHighlight:     "Day Color Highlight",
	KindIllustration:          "Illustration",
	KindText:                  "Text",
	KindEndOfRecord:           "End Of Record",
	KindEndOfTransmission:     "End Of Transmission",
}

// String returns the human-readable description used in decoder
// annotations, matching the kebab-case-derived names of the original
// sigrok decoder's annotation rows.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// recognizer pairs a Kind with the predicate that recognizes it. Order
// matters: Recognize scans most-specific first, so the specialized
// Directory variants come before the generic Directory.
type recognizer struct {
	kind  Kind
	match func(length, typ uint8, address uint16, data []byte) bool
}

var recognizers = []recognizer{
	{KindTelephoneDirectory, matchDirectory(directoryTelephone)},
	{KindBusinessCardDirectory, matchDirectory(directoryBusinessCard)},
	{KindMemoDirectory, matchDirectory(directoryMemo)},
	{KindCalendarDirectory, matchDirectory(directoryCalendar)},
	{KindScheduleDirectory, matchDirectory(directorySchedule)},
	{KindReminderDirectory, matchDirectory(directoryReminder)},
	{KindToDoDirectory, matchDirectory(directoryToDo)},
	{KindExpenseDirectory, matchDirectory(directoryExpense)},
	{KindDirectory, matchDirectory(directoryGeneric)},
	{KindColor, matchColor},
	{KindPriority, matchPriority},
	{KindDate, matchDate},
	{KindDeadlineDate, matchDeadlineDate},
	{KindStartEndTime, matchStartEndTime},
	{KindTime, matchTime},
	{KindDeadlineTime, matchDeadlineTime},
	{KindToDoAlarm, matchToDoAlarm},
	{KindAlarm, matchAlarm},
	{KindDayHighlight, matchDayHighlight},
	{KindDayColorHighlight, matchDayColorHighlight},
	{KindIllustration, matchIllustration},
	{KindText, matchText},
	{KindEndOfRecord, matchEndOfRecord},
	{KindEndOfTransmission, matchEndOfTransmission},
}

// Recognize scans variants most-specific first and returns the first
// match, or KindUnknown if none matches.
func Recognize(length, typ uint8, address uint16, data []byte) Kind {
	for _, r := range recognizers {
		if r.match(length, typ, address, data) {
			return r.kind
		}
	}
	return KindUnknown
}

// Kind returns the recognized variant of f.
func (f Frame) Kind() Kind {
	return Recognize(f.Length, f.Type, f.Address, f.Data)
}

// Describe renders f the way the matching Kind's accessor would, for use
// in decoder annotations and logging.
func (k Kind) Describe(f Frame) string {
	switch k {
	case KindColor:
		c, err := ParseColor(f)
		if err != nil {
			return "Color: ?"
		}
		return "Color: " + c.String()
	case KindPriority:
		p, err := ParsePriority(f)
		if err != nil {
			return "Priority: ?"
		}
		return "Priority: " + p.String()
	case KindDate:
		d, err := ParseDate(f)
		if err != nil {
			return k.String() + ": ?"
		}
		return k.String() + ": " + d.String()
	case KindDeadlineDate:
		d, err := ParseDeadlineDate(f)
		if err != nil {
			return k.String() + ": ?"
		}
		return k.String() + ": " + d.String()
	case KindTime, KindDeadlineTime, KindToDoAlarm, KindAlarm:
		t, err := ParseTime(f)
		if err != nil {
			return k.String() + ": ?"
		}
		return k.String() + ": " + t.String()
	case KindStartEndTime:
		se, err := ParseStartEndTime(f)
		if err != nil {
			return "Start End Time: ?"
		}
		return "Start End Time: " + se.String()
	case KindDayHighlight:
		dh, err := ParseDayHighlight(f)
		if err != nil {
			return "Day Highlight: ?"
		}
		return "Day Highlight: " + dh.String()
	case KindDayColorHighlight:
		dc, err := ParseDayColorHighlight(f)
		if err != nil {
			return "Day Color Highlight: ?"
		}
		return "Day Color Highlight: " + dc.String()
	case KindIllustration:
		return fmt.Sprintf("Illustration: %d", illustrationNumber(f))
	case KindText:
		return "Text: " + TextOf(f)
	case KindDirectory, KindTelephoneDirectory, KindBusinessCardDirectory,
		KindMemoDirectory, KindCalendarDirectory, KindScheduleDirectory,
		KindReminderDirectory, KindToDoDirectory, KindExpenseDirectory:
		return k.String()
	case KindEndOfRecord:
		return "End"
	case KindEndOfTransmission:
		return "End Of Transmission"
	default:
		return "Frame: " + TextOf(f)
	}
}
