package zone

import (
	"errors"
	"fmt"
)

// OutOfRangeError indicates a zone or grade outside its valid domain.
type OutOfRangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// UnknownSelectorError indicates a subject that is not recognised or that
// has no configured source.
type UnknownSelectorError struct {
	Selector string
	Reason   string
}

func (e *UnknownSelectorError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unknown selector %q: %s", e.Selector, e.Reason)
	}
	return fmt.Sprintf("unknown selector %q", e.Selector)
}

// MissingRecordError indicates no source row matched a zone (and grade)
// after a full scan. A zone found with zero counts is not missing.
type MissingRecordError struct {
	Subject Subject
	Zone    int
	Grade   int
}

func (e *MissingRecordError) Error() string {
	if e.Grade != 0 {
		return fmt.Sprintf("no %s record for zone %d, grade %d", e.Subject, e.Zone, e.Grade)
	}
	return fmt.Sprintf("no %s record for zone %d", e.Subject, e.Zone)
}

// ErrInvalidRecord is matched by every RecordError.
var ErrInvalidRecord = errors.New("invalid record")

// RecordError reports a source row that cannot be read as a zone record.
type RecordError struct {
	Zone int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%v for zone %d: %v", ErrInvalidRecord, e.Zone, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ErrInvalidRecord, e.Err}
}
