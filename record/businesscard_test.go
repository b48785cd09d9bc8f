package record

import (
	"testing"

	"github.com/fornellas/digitaldiary/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessCardRoundTrip(t *testing.T) {
	color := frame.ColorGreen
	bc := BusinessCard{
		Color:           &color,
		Employer:        "Acme Corp",
		Name:            "Wile E. Coyote",
		TelephoneNumber: strp("555-9999"),
		Department:      strp("Anvils"),
	}

	frames, err := bc.ToFrames()
	require.NoError(t, err)

	got, err := BusinessCardFromFrames(frames)
	require.NoError(t, err)
	assert.Equal(t, bc, got)
}

func TestBusinessCardFromFramesRejectsMissingEmployerOrName(t *testing.T) {
	_, err := BusinessCardFromFrames(nil)
	assert.Error(t, err)
}
