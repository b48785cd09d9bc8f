package record

import (
	"testing"

	"github.com/fornellas/digitaldiary/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A Calendar record with highlighted days and no per-day colors
// round-trips.
func TestCalendarRoundTrip(t *testing.T) {
	cal := Calendar{
		Year:  2021,
		Month: 6,
		Days:  map[int]bool{1: true, 15: true, 30: true},
	}

	frames, err := cal.ToFrames()
	require.NoError(t, err)

	got, err := CalendarFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, cal.Year, got.Year)
	assert.Equal(t, cal.Month, got.Month)
	assert.Equal(t, cal.Days, got.Days)
	assert.Nil(t, got.Colors)
}

func TestCalendarRoundTripWithColors(t *testing.T) {
	var colors [31]frame.Color
	colors[0] = frame.ColorBlue
	colors[29] = frame.ColorOrange
	cal := Calendar{
		Year:   2022,
		Month:  1,
		Days:   map[int]bool{1: true, 30: true},
		Colors: &colors,
	}

	frames, err := cal.ToFrames()
	require.NoError(t, err)

	got, err := CalendarFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, cal.Days, got.Days)
	require.NotNil(t, got.Colors)
	assert.Equal(t, colors, *got.Colors)
}

func TestCalendarFromFramesRejectsMissingDate(t *testing.T) {
	_, err := CalendarFromFrames([]frame.Frame{frame.FromDays(map[int]bool{1: true})})
	assert.Error(t, err)
}

func TestCalendarFromFramesRejectsUnexpectedFrame(t *testing.T) {
	_, err := CalendarFromFrames([]frame.Frame{frame.NewColor(frame.ColorBlue)})
	assert.Error(t, err)
}
