package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/tagpulse-org/tagpulse/trend"
)

// ============================================================================
// CSV LOADER — Parses the tag-count table into []trend.Record
// ============================================================================
// Input contract: columns year, tag, num_questions, year_total with a header
// row, comma-separated, integers base-10. The file is read through a gota
// dataframe so column lookup is by name; extra columns are ignored.
// ============================================================================

var requiredColumns = []string{"year", "tag", "num_questions", "year_total"}

// LoadCSV reads the tag-count table from r and returns validated records.
// Every record is checked against the field invariants before the set is
// returned; a single malformed row fails the whole load with a *DataError.
func LoadCSV(r io.Reader) ([]trend.Record, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			"year":          series.Int,
			"tag":           series.String,
			"num_questions": series.Int,
			"year_total":    series.Int,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	present := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, fmt.Errorf("read csv: missing required column %q (have %v)", col, df.Names())
		}
	}

	years := df.Col("year")
	tags := df.Col("tag")
	counts := df.Col("num_questions")
	totals := df.Col("year_total")

	records := make([]trend.Record, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		year, err := years.Elem(i).Int()
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d: bad year: %w", i, err)
		}
		count, err := counts.Elem(i).Int()
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d: bad num_questions: %w", i, err)
		}
		total, err := totals.Elem(i).Int()
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d: bad year_total: %w", i, err)
		}

		records = append(records, trend.Record{
			Year:         year,
			Tag:          tags.Elem(i).String(),
			NumQuestions: count,
			YearTotal:    total,
		})
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadFile reads and validates the tag-count table at path.
func LoadFile(path string) ([]trend.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}
