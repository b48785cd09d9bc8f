package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeDirectoryVariants(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		data directoryData
	}{
		{KindTelephoneDirectory, directoryTelephone},
		{KindBusinessCardDirectory, directoryBusinessCard},
		{KindMemoDirectory, directoryMemo},
		{KindCalendarDirectory, directoryCalendar},
		{KindScheduleDirectory, directorySchedule},
		{KindReminderDirectory, directoryReminder},
		{KindToDoDirectory, directoryToDo},
		{KindExpenseDirectory, directoryExpense},
	} {
		got := Recognize(directoryLength, directoryType, directoryAddress, []byte{tc.data[0], tc.data[1]})
		assert.Equal(t, tc.kind, got, "data %v should recognize as %s", tc.data, tc.kind)
	}

	// The generic predicate also matches a specialized payload, but the
	// specific variant must win (most-specific-first).
	assert.Equal(t, KindTelephoneDirectory, Recognize(2, 0x00, 0x0200, []byte{0x90, 0x00}))
	assert.Equal(t, KindDirectory, Recognize(2, 0x00, 0x0200, []byte{0x00, 0x00}))
}

func TestRecognitionDisjointness(t *testing.T) {
	// Every other recognized frame shape is recognized by exactly one
	// variant (excluding the Directory base-vs-specific overlap, which
	// is handled explicitly above).
	samples := []Frame{
		NewColor(ColorBlue),
		NewPriority(PriorityA),
		NewDate(Date{yp(2021), yp(12), yp(1)}),
		NewDeadlineDate(Date{yp(2021), yp(2), yp(25)}),
		NewTime(Time{10, 30}),
		NewStartEndTime(StartEndTime{Time{9, 0}, Time{10, 0}}),
		NewDeadlineTime(Time{22, 11}),
		NewToDoAlarm(Time{21, 11}),
		NewAlarm(Time{8, 0}),
		FromDays(map[int]bool{1: true}),
		FromDaysAndColors(map[int]bool{1: true}, [31]Color{}),
		NewIllustration(3),
		NewEndOfRecord(),
		NewEndOfTransmission(),
	}
	for _, f := range samples {
		matches := 0
		var matchedKind Kind
		for _, r := range recognizers {
			if r.match(f.Length, f.Type, f.Address, f.Data) {
				matches++
				matchedKind = r.kind
			}
		}
		require.Equal(t, 1, matches, "frame %+v matched %d kinds", f, matches)
		assert.Equal(t, f.Kind(), matchedKind)
		assert.NotEqual(t, KindUnknown, matchedKind)
	}
}

func TestRecognizeFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, KindUnknown, Recognize(5, 0x99, 0x1234, []byte{1, 2, 3, 4, 5}))
}

func TestRecognizeTextAddressSplit(t *testing.T) {
	low := textFrameFor(0x50, []byte("hi"))
	assert.Equal(t, KindText, low.Kind())
	assert.Equal(t, uint8(0x80), low.Type)

	high := textFrameFor(0x150, []byte("hi"))
	assert.Equal(t, KindText, high.Kind())
	assert.Equal(t, uint8(0x81), high.Type)
	assert.Equal(t, uint16(0x50), high.Address)
}

func TestDescribeDeadlineDateUsesDeadlineAccessor(t *testing.T) {
	f := NewDeadlineDate(Date{yp(2021), yp(2), yp(25)})
	assert.Equal(t, "Deadline Date: 2021-02-25", f.Kind().Describe(f))
}

func TestDescribeDateUsesDateAccessor(t *testing.T) {
	f := NewDate(Date{yp(2021), yp(2), yp(25)})
	assert.Equal(t, "Date: 2021-02-25", f.Kind().Describe(f))
}

func yp(v int) *int { return &v }
