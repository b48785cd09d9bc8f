package frame

// directoryData identifies one of the closed set of Directory payloads.
// Every Directory frame shares length=2, type=0x00, address=0x0200;
// only the two data bytes distinguish the record kind that follows.
type directoryData [2]byte

var (
	directoryGeneric      = directoryData{0x00, 0x00}
	directoryTelephone    = directoryData{0x90, 0x00}
	directoryBusinessCard = directoryData{0xC0, 0x00}
	directoryMemo         = directoryData{0xA0, 0x00}
	directoryCalendar     = directoryData{0x80, 0x00}
	directorySchedule     = directoryData{0xB0, 0x00}
	directoryReminder     = directoryData{0x91, 0x00}
	directoryToDo         = directoryData{0xC1, 0x00}
	directoryExpense      = directoryData{0x92, 0x00}
)

const (
	directoryLength  uint8  = 2
	directoryType    uint8  = 0x00
	directoryAddress uint16 = 0x0200
)

func matchDirectory(want directoryData) func(length, typ uint8, address uint16, data []byte) bool {
	return func(length, typ uint8, address uint16, data []byte) bool {
		return length == directoryLength &&
			typ == directoryType &&
			address == directoryAddress &&
			len(data) == 2 && data[0] == want[0] && data[1] == want[1]
	}
}

func newDirectoryFrame(data directoryData) Frame {
	return NewFrame(directoryLength, directoryType, directoryAddress, []byte{data[0], data[1]})
}

// NewTelephoneDirectory builds the Directory frame that opens a
// Telephone record group.
func NewTelephoneDirectory() Frame { return newDirectoryFrame(directoryTelephone) }

// NewBusinessCardDirectory builds the Directory frame that opens a
// BusinessCard record group.
func NewBusinessCardDirectory() Frame { return newDirectoryFrame(directoryBusinessCard) }

// NewMemoDirectory builds the Directory frame that opens a Memo record
// group.
func NewMemoDirectory() Frame { return newDirectoryFrame(directoryMemo) }

// NewCalendarDirectory builds the Directory frame that opens a Calendar
// record group.
func NewCalendarDirectory() Frame { return newDirectoryFrame(directoryCalendar) }

// NewScheduleDirectory builds the Directory frame that opens a Schedule
// record group.
func NewScheduleDirectory() Frame { return newDirectoryFrame(directorySchedule) }

// NewReminderDirectory builds the Directory frame that opens a Reminder
// record group.
func NewReminderDirectory() Frame { return newDirectoryFrame(directoryReminder) }

// NewToDoDirectory builds the Directory frame that opens a ToDo record
// group.
func NewToDoDirectory() Frame { return newDirectoryFrame(directoryToDo) }

// NewExpenseDirectory builds the Directory frame that opens an Expense
// record group.
func NewExpenseDirectory() Frame { return newDirectoryFrame(directoryExpense) }
