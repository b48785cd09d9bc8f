// Package record implements the record layer: conversion between
// ordered sequences of frame.Frame and the eight typed record variants.
// Each variant has its own FromFrames/ToFrames pair; DirectoryToRecord
// is the statically known table the decoder's record aggregator
// dispatches through.
package record

import (
	"fmt"

	"github.com/fornellas/digitaldiary/digerr"
	"github.com/fornellas/digitaldiary/frame"
)

// Record is a logical entity reconstructed from a contiguous run of
// frames bounded by a Directory frame and an EndOfRecord frame.
type Record interface {
	// ToFrames renders the record back into its deterministic frame
	// sequence for its type.
	ToFrames() ([]frame.Frame, error)
}

// FromFramesFunc builds a Record from the frames collected between a
// Directory frame and the following EndOfRecord.
type FromFramesFunc func(frames []frame.Frame) (Record, error)

// DirectoryToRecord maps each Directory variant to the builder for its
// record type. The decoder's record aggregator looks up the remembered
// directory kind here; an unrecognized or absent entry means an unknown
// record.
var DirectoryToRecord = map[frame.Kind]FromFramesFunc{
	frame.KindTelephoneDirectory: func(fs []frame.Frame) (Record, error) { return TelephoneFromFrames(fs) },
	frame.KindBusinessCardDirectory: func(fs []frame.Frame) (Record, error) {
		return BusinessCardFromFrames(fs)
	},
	frame.KindMemoDirectory:     func(fs []frame.Frame) (Record, error) { return MemoFromFrames(fs) },
	frame.KindCalendarDirectory: func(fs []frame.Frame) (Record, error) { return CalendarFromFrames(fs) },
	frame.KindScheduleDirectory: func(fs []frame.Frame) (Record, error) { return ScheduleFromFrames(fs) },
	frame.KindReminderDirectory: func(fs []frame.Frame) (Record, error) { return ReminderFromFrames(fs) },
	frame.KindToDoDirectory:     func(fs []frame.Frame) (Record, error) { return ToDoFromFrames(fs) },
	frame.KindExpenseDirectory:  func(fs []frame.Frame) (Record, error) { return ExpenseFromFrames(fs) },
}

// FromFrames dispatches to the builder registered for dir. It returns
// digerr.ErrUnknownRecord if dir has no registered builder.
func FromFrames(dir frame.Kind, frames []frame.Frame) (Record, error) {
	build, ok := DirectoryToRecord[dir]
	if !ok {
		return nil, fmt.Errorf("%w: directory kind %s", digerr.ErrUnknownRecord, dir)
	}
	return build(frames)
}

func unexpectedFrame(f frame.Frame) error {
	return fmt.Errorf("%w: unexpected frame kind %s", digerr.ErrMalformedRecord, f.Kind())
}

// joinFields builds a field list (as frame.FromTextList expects) from a
// fixed required prefix plus an ordered optional tail. Interior optional
// slots below the highest populated index are emitted as empty strings
// rather than omitted; trailing unset slots are dropped.
func joinFields(required []string, optional []*string) []string {
	lastSet := -1
	for i, p := range optional {
		if p != nil {
			lastSet = i
		}
	}
	fields := make([]string, 0, len(required)+lastSet+1)
	fields = append(fields, required...)
	for i := 0; i <= lastSet; i++ {
		if optional[i] != nil {
			fields = append(fields, *optional[i])
		} else {
			fields = append(fields, "")
		}
	}
	return fields
}

// fieldAt returns a pointer to fields[i], or nil if fields is too short
// or that slot is empty. An empty string in the middle of a field list
// and an absent trailing field are indistinguishable once decoded, so
// both read back as nil.
func fieldAt(fields []string, i int) *string {
	if i >= len(fields) || fields[i] == "" {
		return nil
	}
	s := fields[i]
	return &s
}
