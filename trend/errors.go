package trend

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the sentinel all DataErrors match via errors.Is.
var ErrMalformedRecord = errors.New("malformed record")

// DataError reports an input record that violates a field invariant:
// non-positive year_total, negative num_questions, or num_questions
// exceeding year_total. A DataError aborts the derived computation that
// detected it — malformed data indicates an upstream problem the aggregator
// must not paper over, so there is no recovery and no partial result.
//
// Example:
//
//	shares, err := trend.ComputeYearShare(records)
//	var dataErr *trend.DataError
//	if errors.As(err, &dataErr) {
//	    log.Printf("bad row %d: %v", dataErr.Row, err)
//	}
type DataError struct {
	Field   string // offending column: "year_total", "num_questions"
	Row     int    // 0-based index into the input record slice
	Value   int    // offending value
	message string
}

// NewDataError creates a DataError for the record at row.
func NewDataError(row int, field string, value int, message string) *DataError {
	return &DataError{
		Field:   field,
		Row:     row,
		Value:   value,
		message: message,
	}
}

// Error returns the formatted error message.
func (e *DataError) Error() string {
	return fmt.Sprintf("data error [row=%d, field=%s, value=%d]: %s", e.Row, e.Field, e.Value, e.message)
}

// Unwrap lets errors.Is(err, ErrMalformedRecord) match any DataError.
func (e *DataError) Unwrap() error {
	return ErrMalformedRecord
}

// Is reports whether target is a DataError or the sentinel.
func (e *DataError) Is(target error) bool {
	if _, ok := target.(*DataError); ok {
		return true
	}
	return errors.Is(target, ErrMalformedRecord)
}
