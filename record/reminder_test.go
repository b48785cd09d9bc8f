package record

import (
	"testing"

	"github.com/fornellas/digitaldiary/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRoundTripMonthAndDay(t *testing.T) {
	month, day := 11, 25
	alarm := frame.Time{Hour: 7, Minute: 0}
	color := frame.ColorBlue
	r := Reminder{
		Month:       &month,
		Day:         &day,
		AlarmTime:   &alarm,
		Description: "Thanksgiving",
		Color:       &color,
	}

	frames, err := r.ToFrames()
	require.NoError(t, err)

	got, err := ReminderFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestReminderRoundTripNoMonthOrDay(t *testing.T) {
	r := Reminder{Description: "water the plants"}
	frames, err := r.ToFrames()
	require.NoError(t, err)

	got, err := ReminderFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestReminderToFramesRejectsMonthWithoutDay(t *testing.T) {
	month := 5
	r := Reminder{Month: &month, Description: "oops"}
	_, err := r.ToFrames()
	assert.Error(t, err)
}

func TestReminderToFramesRejectsMissingDescription(t *testing.T) {
	r := Reminder{}
	_, err := r.ToFrames()
	assert.Error(t, err)
}

func TestReminderFromFramesRejectsMonthWithoutDay(t *testing.T) {
	month := 5
	dateFrame := frame.NewDate(frame.Date{Month: &month})
	textFrames, err := frame.FromText("desc")
	require.NoError(t, err)
	frames := append([]frame.Frame{dateFrame}, textFrames...)

	_, err = ReminderFromFrames(frames)
	assert.Error(t, err)
}
