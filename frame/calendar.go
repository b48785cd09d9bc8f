package frame

import (
	"fmt"
	"sort"
	"strings"
)

const (
	dayHighlightLength  uint8  = 4
	dayHighlightType    uint8  = 0xD0
	dayHighlightAddress uint16 = 0x0000
)

// DayHighlight is a 31-day bitmap of the days highlighted on a Calendar
// month, packed MSB-byte-first: day d (1-based) is bit ((d-1) mod 8) of
// data byte 3-((d-1) div 8).
type DayHighlight struct {
	Days map[int]bool
}

func matchDayHighlight(length, typ uint8, address uint16, data []byte) bool {
	return length == dayHighlightLength && typ == dayHighlightType && address == dayHighlightAddress && len(data) == 4
}

// FromDays builds a DayHighlight frame from a set of highlighted days
// (1-31).
func FromDays(days map[int]bool) Frame {
	var data [4]byte
	for d, on := range days {
		if !on || d < 1 || d > 31 {
			continue
		}
		byteIdx := 3 - ((d - 1) / 8)
		bit := uint((d - 1) % 8)
		data[byteIdx] |= 1 << bit
	}
	return NewFrame(dayHighlightLength, dayHighlightType, dayHighlightAddress, data[:])
}

// ParseDayHighlight extracts the highlighted-day set carried by f.
func ParseDayHighlight(f Frame) (DayHighlight, error) {
	if !matchDayHighlight(f.Length, f.Type, f.Address, f.Data) {
		return DayHighlight{}, errNotThisKind
	}
	days := map[int]bool{}
	for d := 1; d <= 31; d++ {
		byteIdx := 3 - ((d - 1) / 8)
		bit := uint((d - 1) % 8)
		if f.Data[byteIdx]&(1<<bit) != 0 {
			days[d] = true
		}
	}
	return DayHighlight{Days: days}, nil
}

func (dh DayHighlight) String() string {
	ds := make([]int, 0, len(dh.Days))
	for d := range dh.Days {
		ds = append(ds, d)
	}
	sort.Ints(ds)
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

const (
	dayColorHighlightLength  uint8  = 32
	dayColorHighlightType    uint8  = 0x78
	dayColorHighlightAddress uint16 = 0x0000

	dayColorMask       byte = 0x07
	dayHighlightedFlag byte = 0x80
)

// DayColorHighlight carries, for each of a month's 31 days, whether the
// day is highlighted and which Color it is assigned. The 32nd byte
// (index 31) exists only to round the frame to 32 bytes and is ignored
// on decode. On the wire the 32-byte array is stored reversed relative
// to day order.
type DayColorHighlight struct {
	HighlightedDays map[int]bool
	DayColors       [31]Color
}

func matchDayColorHighlight(length, typ uint8, address uint16, data []byte) bool {
	return length == dayColorHighlightLength && typ == dayColorHighlightType &&
		address == dayColorHighlightAddress && len(data) == 32
}

// FromDaysAndColors builds a DayColorHighlight frame from a highlighted
// day set and a per-day Color array (index 0 = day 1 .. index 30 = day
// 31).
func FromDaysAndColors(highlighted map[int]bool, colors [31]Color) Frame {
	var forward [32]byte
	for day := 1; day <= 31; day++ {
		b := byte(colors[day-1]) & dayColorMask
		if highlighted[day] {
			b |= dayHighlightedFlag
		}
		forward[day-1] = b
	}
	data := reverse32(forward)
	return NewFrame(dayColorHighlightLength, dayColorHighlightType, dayColorHighlightAddress, data[:])
}

// ParseDayColorHighlight extracts the highlighted-day set and per-day
// colors carried by f.
func ParseDayColorHighlight(f Frame) (DayColorHighlight, error) {
	if !matchDayColorHighlight(f.Length, f.Type, f.Address, f.Data) {
		return DayColorHighlight{}, errNotThisKind
	}
	var wire [32]byte
	copy(wire[:], f.Data)
	forward := reverse32(wire)

	result := DayColorHighlight{HighlightedDays: map[int]bool{}}
	for day := 1; day <= 31; day++ {
		b := forward[day-1]
		result.DayColors[day-1] = Color(b & dayColorMask)
		if b&dayHighlightedFlag != 0 {
			result.HighlightedDays[day] = true
		}
	}
	return result, nil
}

func reverse32(in [32]byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = in[31-i]
	}
	return out
}

func (dc DayColorHighlight) String() string {
	ds := make([]int, 0, len(dc.HighlightedDays))
	for d := range dc.HighlightedDays {
		ds = append(ds, d)
	}
	sort.Ints(ds)
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
