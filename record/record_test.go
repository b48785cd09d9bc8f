package record

import (
	"testing"

	"github.com/fornellas/digitaldiary/frame"
	"github.com/stretchr/testify/assert"
)

func TestDirectoryToRecordCoversAllDirectoryKinds(t *testing.T) {
	for _, kind := range []frame.Kind{
		frame.KindTelephoneDirectory,
		frame.KindBusinessCardDirectory,
		frame.KindMemoDirectory,
		frame.KindCalendarDirectory,
		frame.KindScheduleDirectory,
		frame.KindReminderDirectory,
		frame.KindToDoDirectory,
		frame.KindExpenseDirectory,
	} {
		_, ok := DirectoryToRecord[kind]
		assert.True(t, ok, "missing builder for %s", kind)
	}
}

func TestJoinFieldsDropsTrailingNones(t *testing.T) {
	a, c := "a", "c"
	fields := joinFields([]string{"req"}, []*string{&a, nil, &c, nil, nil})
	assert.Equal(t, []string{"req", "a", "", "c"}, fields)
}

func TestJoinFieldsAllNones(t *testing.T) {
	fields := joinFields([]string{"req"}, []*string{nil, nil})
	assert.Equal(t, []string{"req"}, fields)
}

func TestFieldAtOutOfRangeIsNil(t *testing.T) {
	assert.Nil(t, fieldAt([]string{"a"}, 5))
}

func TestFieldAtEmptyStringIsNil(t *testing.T) {
	assert.Nil(t, fieldAt([]string{"a", ""}, 1))
}

func TestFieldAtPresent(t *testing.T) {
	got := fieldAt([]string{"a", "b"}, 1)
	assert.Equal(t, "b", *got)
}
