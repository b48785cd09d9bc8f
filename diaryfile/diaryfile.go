// Package diaryfile loads directory data from a CSV file into the
// record.Record values a sender.Sender transmits. The protocol core
// consumes an in-memory collection of records; this package is the
// thin, CSV-only on-ramp for producing one, not a general import
// format.
package diaryfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
	"github.com/fornellas/digitaldiary/record"
	"github.com/fornellas/digitaldiary/sender"
)

// directoryFor maps a row's kind column to the Directory frame that
// opens its group.
var directoryFor = map[string]func() frame.Frame{
	"telephone":    frame.NewTelephoneDirectory,
	"businesscard": frame.NewBusinessCardDirectory,
	"memo":         frame.NewMemoDirectory,
	"calendar":     frame.NewCalendarDirectory,
	"schedule":     frame.NewScheduleDirectory,
	"reminder":     frame.NewReminderDirectory,
	"todo":         frame.NewToDoDirectory,
	"expense":      frame.NewExpenseDirectory,
}

// row is one CSV record indexed by header name, with missing/empty
// cells treated as absent fields throughout this package.
type row map[string]string

func (r row) str(col string) *string {
	v, ok := r[col]
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (r row) require(col string) (string, error) {
	v, ok := r[col]
	if !ok || v == "" {
		return "", fmt.Errorf("%w: missing required column %q", digerr.ErrMalformedRecord, col)
	}
	return v, nil
}

func (r row) color() (*frame.Color, error) {
	s := r.str("color")
	if s == nil {
		return nil, nil
	}
	var c frame.Color
	switch strings.ToLower(*s) {
	case "blue":
		c = frame.ColorBlue
	case "orange":
		c = frame.ColorOrange
	case "green":
		c = frame.ColorGreen
	default:
		return nil, fmt.Errorf("%w: unknown color %q", digerr.ErrMalformedRecord, *s)
	}
	return &c, nil
}

func (r row) ymd(col string) (*record.YMD, error) {
	s := r.str(col)
	if s == nil {
		return nil, nil
	}
	if len(*s) != 8 {
		return nil, fmt.Errorf("%w: %s must be YYYYMMDD", digerr.ErrMalformedRecord, col)
	}
	year, err1 := strconv.Atoi((*s)[0:4])
	month, err2 := strconv.Atoi((*s)[4:6])
	day, err3 := strconv.Atoi((*s)[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: %s is not numeric", digerr.ErrMalformedRecord, col)
	}
	ymd := record.YMD{Year: year, Month: month, Day: day}
	return &ymd, nil
}

func (r row) time(col string) (*frame.Time, error) {
	s := r.str(col)
	if s == nil {
		return nil, nil
	}
	parts := strings.SplitN(*s, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %s must be HH:MM", digerr.ErrMalformedRecord, col)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%w: %s is not numeric", digerr.ErrMalformedRecord, col)
	}
	t := frame.Time{Hour: h, Minute: m}
	return &t, nil
}

func (r row) int(col string) (*int, error) {
	s := r.str(col)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not numeric", digerr.ErrMalformedRecord, col)
	}
	return &n, nil
}

func buildRecord(kind string, r row) (record.Record, error) {
	switch kind {
	case "telephone":
		color, err := r.color()
		if err != nil {
			return nil, err
		}
		name, err := r.require("name")
		if err != nil {
			return nil, err
		}
		return record.Telephone{
			Color:   color,
			Name:    name,
			Number:  r.str("number"),
			Address: r.str("address"),
			Field1:  r.str("field1"),
			Field2:  r.str("field2"),
			Field3:  r.str("field3"),
			Field4:  r.str("field4"),
			Field5:  r.str("field5"),
			Field6:  r.str("field6"),
		}, nil

	case "businesscard":
		color, err := r.color()
		if err != nil {
			return nil, err
		}
		employer, err := r.require("employer")
		if err != nil {
			return nil, err
		}
		name, err := r.require("name")
		if err != nil {
			return nil, err
		}
		return record.BusinessCard{
			Color:           color,
			Employer:        employer,
			Name:            name,
			TelephoneNumber: r.str("telephone_number"),
			TelexNumber:     r.str("telex_number"),
			FaxNumber:       r.str("fax_number"),
			Position:        r.str("position"),
			Department:      r.str("department"),
			PoBox:           r.str("po_box"),
			Address:         r.str("address"),
			Memo:            r.str("memo"),
		}, nil

	case "memo":
		color, err := r.color()
		if err != nil {
			return nil, err
		}
		return record.Memo{Color: color, Text: r[textCol]}, nil

	case "calendar":
		year, err := r.require("year")
		if err != nil {
			return nil, err
		}
		month, err := r.require("month")
		if err != nil {
			return nil, err
		}
		y, errY := strconv.Atoi(year)
		m, errM := strconv.Atoi(month)
		if errY != nil || errM != nil {
			return nil, fmt.Errorf("%w: year/month must be numeric", digerr.ErrMalformedRecord)
		}
		days := map[int]bool{}
		if s := r.str("days"); s != nil {
			for _, part := range strings.Split(*s, ";") {
				d, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return nil, fmt.Errorf("%w: days must be a ; separated list of numbers", digerr.ErrMalformedRecord)
				}
				days[d] = true
			}
		}
		return record.Calendar{Year: y, Month: m, Days: days}, nil

	case "schedule":
		color, err := r.color()
		if err != nil {
			return nil, err
		}
		date, err := r.ymd("date")
		if err != nil {
			return nil, err
		}
		if date == nil {
			return nil, fmt.Errorf("%w: missing required column %q", digerr.ErrMalformedRecord, "date")
		}
		start, err := r.time("start_time")
		if err != nil {
			return nil, err
		}
		end, err := r.time("end_time")
		if err != nil {
			return nil, err
		}
		alarm, err := r.time("alarm_time")
		if err != nil {
			return nil, err
		}
		return record.Schedule{
			Date:        *date,
			StartTime:   start,
			EndTime:     end,
			AlarmTime:   alarm,
			Description: r.str(textCol),
			Color:       color,
		}, nil

	case "reminder":
		color, err := r.color()
		if err != nil {
			return nil, err
		}
		month, err := r.int("month")
		if err != nil {
			return nil, err
		}
		day, err := r.int("day")
		if err != nil {
			return nil, err
		}
		alarm, err := r.time("alarm_time")
		if err != nil {
			return nil, err
		}
		return record.Reminder{
			Month:       month,
			Day:         day,
			AlarmTime:   alarm,
			Description: r[textCol],
			Color:       color,
		}, nil

	case "todo":
		deadlineDate, err := r.ymd("deadline_date")
		if err != nil {
			return nil, err
		}
		checkedDate, err := r.ymd("checked_date")
		if err != nil {
			return nil, err
		}
		deadlineTime, err := r.time("deadline_time")
		if err != nil {
			return nil, err
		}
		alarm, err := r.time("alarm")
		if err != nil {
			return nil, err
		}
		checkedTime, err := r.time("checked_time")
		if err != nil {
			return nil, err
		}
		description, err := r.require(textCol)
		if err != nil {
			return nil, err
		}
		var priority *frame.Priority
		if s := r.str("priority"); s != nil {
			var p frame.Priority
			switch strings.ToUpper(*s) {
			case "A":
				p = frame.PriorityA
			case "B":
				p = frame.PriorityB
			case "C":
				p = frame.PriorityC
			default:
				return nil, fmt.Errorf("%w: unknown priority %q", digerr.ErrMalformedRecord, *s)
			}
			priority = &p
		}
		return record.ToDo{
			DeadlineDate: deadlineDate,
			CheckedDate:  checkedDate,
			DeadlineTime: deadlineTime,
			Alarm:        alarm,
			CheckedTime:  checkedTime,
			Description:  description,
			Priority:     priority,
		}, nil

	case "expense":
		color, err := r.color()
		if err != nil {
			return nil, err
		}
		date, err := r.ymd("date")
		if err != nil {
			return nil, err
		}
		if date == nil {
			return nil, fmt.Errorf("%w: missing required column %q", digerr.ErrMalformedRecord, "date")
		}
		amountStr, err := r.require("amount")
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: amount is not numeric", digerr.ErrMalformedRecord)
		}
		return record.Expense{
			Color:       color,
			Date:        *date,
			Amount:      amount,
			PaymentType: r.str("payment_type"),
			ExpenseType: r.str("expense_type"),
			Rcpt:        r.str("rcpt"),
			Bus:         r.str("bus"),
			Description: r.str(textCol),
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", digerr.ErrUnknownRecord, kind)
	}
}

const textCol = "text"

// Load reads CSV data from r. The first row is a header; a "kind"
// column selects the record.Record variant each subsequent row builds,
// and the remaining columns are looked up by name (unrecognized ones
// are ignored, missing ones are treated as absent fields). Rows are
// grouped into one sender.DirectoryGroup per contiguous run of the same
// kind, in file order.
func Load(r io.Reader) ([]sender.DirectoryGroup, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]

	var groups []sender.DirectoryGroup
	var curKind string
	for _, cols := range rows[1:] {
		rw := row{}
		for i, h := range header {
			if i < len(cols) {
				rw[h] = cols[i]
			}
		}
		kind, err := rw.require("kind")
		if err != nil {
			return nil, err
		}
		newDir, ok := directoryFor[kind]
		if !ok {
			return nil, fmt.Errorf("%w: unknown kind %q", digerr.ErrUnknownRecord, kind)
		}
		rec, err := buildRecord(kind, rw)
		if err != nil {
			return nil, err
		}
		if kind != curKind || len(groups) == 0 {
			groups = append(groups, sender.DirectoryGroup{Directory: newDir()})
			curKind = kind
		}
		last := &groups[len(groups)-1]
		last.Records = append(last.Records, rec)
	}
	return groups, nil
}
