package frame

const (
	illustrationLength  uint8  = 1
	illustrationType    uint8  = 0x21
	illustrationAddress uint16 = 0x0000
)

func matchIllustration(length, typ uint8, address uint16, data []byte) bool {
	return length == illustrationLength && typ == illustrationType && address == illustrationAddress && len(data) == 1
}

// NewIllustration builds an Illustration frame carrying the given
// illustration id.
func NewIllustration(id byte) Frame {
	return NewFrame(illustrationLength, illustrationType, illustrationAddress, []byte{id})
}

// IllustrationID extracts the illustration id carried by f. The caller
// must have already established f.Kind() == KindIllustration.
func IllustrationID(f Frame) (byte, error) {
	if !matchIllustration(f.Length, f.Type, f.Address, f.Data) {
		return 0, errNotThisKind
	}
	return f.Data[0], nil
}

func illustrationNumber(f Frame) byte {
	id, _ := IllustrationID(f)
	return id
}
