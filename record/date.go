package record

import (
	"fmt"
	"strconv"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// YMD is a fully-specified calendar date, used by record variants whose
// Date frame (or, for Expense, text-encoded date) always carries all
// three components.
type YMD struct {
	Year, Month, Day int
}

func (d YMD) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func ymdFromFrameDate(d frame.Date) (YMD, error) {
	if d.Year == nil || d.Month == nil || d.Day == nil {
		return YMD{}, fmt.Errorf("%w: incomplete date", digerr.ErrMalformedRecord)
	}
	return YMD{Year: *d.Year, Month: *d.Month, Day: *d.Day}, nil
}

func (d YMD) toFrameDate() frame.Date {
	year, month, day := d.Year, d.Month, d.Day
	return frame.Date{Year: &year, Month: &month, Day: &day}
}

// parseYYYYMMDD parses the 8-digit date text Expense records carry as
// the first field of their Text block.
func parseYYYYMMDD(s string) (YMD, error) {
	if len(s) != 8 {
		return YMD{}, fmt.Errorf("%w: expense date %q is not YYYYMMDD", digerr.ErrMalformedRecord, s)
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return YMD{}, fmt.Errorf("%w: %v", digerr.ErrMalformedRecord, err)
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil {
		return YMD{}, fmt.Errorf("%w: %v", digerr.ErrMalformedRecord, err)
	}
	day, err := strconv.Atoi(s[6:8])
	if err != nil {
		return YMD{}, fmt.Errorf("%w: %v", digerr.ErrMalformedRecord, err)
	}
	return YMD{Year: year, Month: month, Day: day}, nil
}

func (d YMD) yyyymmdd() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}
