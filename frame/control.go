package frame

const (
	endOfRecordType    uint8  = 0x00
	endOfRecordAddress uint16 = 0x0100

	endOfTransmissionType    uint8  = 0x00
	endOfTransmissionAddress uint16 = 0xFF00
)

func matchEndOfRecord(length, typ uint8, address uint16, data []byte) bool {
	return length == 0 && typ == endOfRecordType && address == endOfRecordAddress && len(data) == 0
}

func matchEndOfTransmission(length, typ uint8, address uint16, data []byte) bool {
	return length == 0 && typ == endOfTransmissionType && address == endOfTransmissionAddress && len(data) == 0
}

// NewEndOfRecord builds the empty frame that terminates a record's frame
// group.
func NewEndOfRecord() Frame {
	return NewFrame(0, endOfRecordType, endOfRecordAddress, nil)
}

// NewEndOfTransmission builds the empty frame that terminates an entire
// sender session.
func NewEndOfTransmission() Frame {
	return NewFrame(0, endOfTransmissionType, endOfTransmissionAddress, nil)
}
