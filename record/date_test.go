package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYMDRoundTripThroughFrameDate(t *testing.T) {
	ymd := YMD{Year: 2021, Month: 9, Day: 14}
	d := ymd.toFrameDate()

	got, err := ymdFromFrameDate(d)
	require.NoError(t, err)
	assert.Equal(t, ymd, got)
}

func TestYMDFromFrameDateRejectsIncompleteDate(t *testing.T) {
	ymd := YMD{2021, 1, 1}
	d := ymd.toFrameDate()
	d.Day = nil

	_, err := ymdFromFrameDate(d)
	assert.Error(t, err)
}

func TestYYYYMMDDRoundTrip(t *testing.T) {
	ymd := YMD{Year: 2021, Month: 3, Day: 5}
	s := ymd.yyyymmdd()
	assert.Equal(t, "20210305", s)

	got, err := parseYYYYMMDD(s)
	require.NoError(t, err)
	assert.Equal(t, ymd, got)
}

func TestParseYYYYMMDDRejectsWrongLength(t *testing.T) {
	_, err := parseYYYYMMDD("2021101")
	assert.Error(t, err)
}

func TestYMDString(t *testing.T) {
	assert.Equal(t, "2021-03-05", YMD{2021, 3, 5}.String())
}
