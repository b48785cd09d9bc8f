package record

import (
	"fmt"
	"strconv"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// Expense is a ledger entry. Its date is carried as an 8-digit YYYYMMDD
// text field rather than a Date frame.
type Expense struct {
	Color                                            *frame.Color
	Date                                             YMD
	Amount                                           float64
	PaymentType, ExpenseType, Rcpt, Bus, Description *string
}

// ExpenseFromFrames builds an Expense from the frames of one record
// group.
func ExpenseFromFrames(frames []frame.Frame) (Expense, error) {
	var color *frame.Color
	var textFrames []frame.Frame
	for _, f := range frames {
		switch f.Kind() {
		case frame.KindColor:
			c, err := frame.ParseColor(f)
			if err != nil {
				return Expense{}, err
			}
			color = &c
		case frame.KindText:
			textFrames = append(textFrames, f)
		default:
			return Expense{}, unexpectedFrame(f)
		}
	}
	fields := frame.JoinText(textFrames)
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return Expense{}, fmt.Errorf("%w: missing date and/or amount", digerr.ErrMalformedRecord)
	}
	date, err := parseYYYYMMDD(fields[0])
	if err != nil {
		return Expense{}, err
	}
	amount, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %v", digerr.ErrMalformedRecord, err)
	}
	return Expense{
		Color:       color,
		Date:        date,
		Amount:      amount,
		PaymentType: fieldAt(fields, 2),
		ExpenseType: fieldAt(fields, 3),
		Rcpt:        fieldAt(fields, 4),
		Bus:         fieldAt(fields, 5),
		Description: fieldAt(fields, 6),
	}, nil
}

// ToFrames implements Record.
func (e Expense) ToFrames() ([]frame.Frame, error) {
	var frames []frame.Frame
	if e.Color != nil {
		frames = append(frames, frame.NewColor(*e.Color))
	}
	amount := strconv.FormatFloat(e.Amount, 'f', -1, 64)
	fields := joinFields(
		[]string{e.Date.yyyymmdd(), amount},
		[]*string{e.PaymentType, e.ExpenseType, e.Rcpt, e.Bus, e.Description},
	)
	textFrames, err := frame.FromTextList(fields)
	if err != nil {
		return nil, err
	}
	return append(frames, textFrames...), nil
}

func (e Expense) String() string {
	str := fmt.Sprintf("Expense: %s, Amount: %v", e.Date, e.Amount)
	if e.PaymentType != nil {
		str += ", Payment Type: " + *e.PaymentType
	}
	if e.ExpenseType != nil {
		str += ", Expense Type: " + *e.ExpenseType
	}
	if e.Rcpt != nil {
		str += ", rcpt: " + *e.Rcpt
	}
	if e.Bus != nil {
		str += ", bus: " + *e.Bus
	}
	if e.Description != nil {
		str += ", Description: " + *e.Description
	}
	if e.Color != nil {
		str += fmt.Sprintf(" (%s)", e.Color)
	}
	return str
}
