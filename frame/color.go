package frame

import "fmt"

// Color is the device's three-way highlight color, carried by a
// length=1 type=0x71 address=0x0000 frame.
type Color uint8

const (
	ColorBlue   Color = 1
	ColorOrange Color = 2
	ColorGreen  Color = 4
)

const (
	colorLength  uint8  = 1
	colorType    uint8  = 0x71
	colorAddress uint16 = 0x0000
)

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "Blue"
	case ColorOrange:
		return "Orange"
	case ColorGreen:
		return "Green"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

func (c Color) valid() bool {
	return c == ColorBlue || c == ColorOrange || c == ColorGreen
}

func matchColor(length, typ uint8, address uint16, data []byte) bool {
	return length == colorLength && typ == colorType && address == colorAddress &&
		len(data) == 1 && Color(data[0]).valid()
}

// NewColor builds a Color frame.
func NewColor(c Color) Frame {
	return NewFrame(colorLength, colorType, colorAddress, []byte{byte(c)})
}

// ParseColor extracts the Color carried by f.
func ParseColor(f Frame) (Color, error) {
	if !matchColor(f.Length, f.Type, f.Address, f.Data) {
		return 0, errNotThisKind
	}
	return Color(f.Data[0]), nil
}

// Priority is the device's three-way To Do priority, carried by a
// length=1 type=0x72 address=0x0000 frame.
type Priority uint8

const (
	PriorityA Priority = 0x10
	PriorityB Priority = 0x20
	PriorityC Priority = 0x30
)

const (
	priorityLength  uint8  = 1
	priorityType    uint8  = 0x72
	priorityAddress uint16 = 0x0000
)

func (p Priority) String() string {
	switch p {
	case PriorityA:
		return "A"
	case PriorityB:
		return "B"
	case PriorityC:
		return "C"
	default:
		return fmt.Sprintf("Priority(%d)", uint8(p))
	}
}

func (p Priority) valid() bool {
	return p == PriorityA || p == PriorityB || p == PriorityC
}

func matchPriority(length, typ uint8, address uint16, data []byte) bool {
	return length == priorityLength && typ == priorityType && address == priorityAddress &&
		len(data) == 1 && Priority(data[0]).valid()
}

// NewPriority builds a Priority frame.
func NewPriority(p Priority) Frame {
	return NewFrame(priorityLength, priorityType, priorityAddress, []byte{byte(p)})
}

// ParsePriority extracts the Priority carried by f.
func ParsePriority(f Frame) (Priority, error) {
	if !matchPriority(f.Length, f.Type, f.Address, f.Data) {
		return 0, errNotThisKind
	}
	return Priority(f.Data[0]), nil
}
