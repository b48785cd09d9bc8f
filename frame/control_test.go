package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndOfRecordAndEndOfTransmissionKinds(t *testing.T) {
	eor := NewEndOfRecord()
	assert.Equal(t, KindEndOfRecord, eor.Kind())
	assert.True(t, eor.VerifyChecksum())

	eot := NewEndOfTransmission()
	assert.Equal(t, KindEndOfTransmission, eot.Kind())
	assert.True(t, eot.VerifyChecksum())

	assert.NotEqual(t, eor.Address, eot.Address)
}
