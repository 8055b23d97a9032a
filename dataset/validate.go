package dataset

import "github.com/tagpulse-org/tagpulse/trend"

// Validate sweeps records for field-invariant violations and returns the
// first one found as a *trend.DataError. The checks mirror the input
// contract: year_total positive, num_questions non-negative, and a tag's
// count never exceeding its year's total.
func Validate(records []trend.Record) error {
	for i, r := range records {
		if r.YearTotal <= 0 {
			return trend.NewDataError(i, "year_total", r.YearTotal, "year_total must be positive")
		}
		if r.NumQuestions < 0 {
			return trend.NewDataError(i, "num_questions", r.NumQuestions, "num_questions must not be negative")
		}
		if r.NumQuestions > r.YearTotal {
			return trend.NewDataError(i, "num_questions", r.NumQuestions, "num_questions exceeds year_total")
		}
	}
	return nil
}
