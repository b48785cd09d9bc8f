package record

import (
	"testing"

	"github.com/fornellas/digitaldiary/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRoundTrip(t *testing.T) {
	color := frame.ColorOrange
	e := Expense{
		Color:       &color,
		Date:        YMD{2021, 4, 9},
		Amount:      12.5,
		PaymentType: strp("cash"),
		ExpenseType: strp("travel"),
		Description: strp("taxi"),
	}

	frames, err := e.ToFrames()
	require.NoError(t, err)

	got, err := ExpenseFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestExpenseRoundTripWholeAmountNoOptionalFields(t *testing.T) {
	e := Expense{Date: YMD{2021, 1, 1}, Amount: 100}

	frames, err := e.ToFrames()
	require.NoError(t, err)

	got, err := ExpenseFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestExpenseFromFramesRejectsMissingAmount(t *testing.T) {
	textFrames, err := frame.FromTextList([]string{"20210101"})
	require.NoError(t, err)
	_, err = ExpenseFromFrames(textFrames)
	assert.Error(t, err)
}

func TestExpenseFromFramesRejectsMalformedDate(t *testing.T) {
	textFrames, err := frame.FromTextList([]string{"not-a-date", "10"})
	require.NoError(t, err)
	_, err = ExpenseFromFrames(textFrames)
	assert.Error(t, err)
}
