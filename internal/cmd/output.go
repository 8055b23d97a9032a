package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tagpulse-org/tagpulse/dataset"
	"github.com/tagpulse-org/tagpulse/trend"
)

// ============================================================================
// SHARED OUTPUT HELPERS — format/out handling for every subcommand
// ============================================================================
// Formats:
//   table  Human-readable table (default)
//   json   Pretty-printed JSON of the result values
//   csv    Two-or-three column CSV ready for spreadsheets
// ============================================================================

func loadRecords() ([]trend.Record, error) {
	records, err := dataset.LoadFile(dataFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dataFile, err)
	}
	return records, nil
}

// resolveWriter returns the output writer for --out (stdout when empty)
// and a close function the caller defers.
func resolveWriter(outFile string) (io.Writer, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// ============================================================================
// CSV OUTPUT — per result type
// ============================================================================

func writeRankCSV(w io.Writer, totals []trend.TagTotal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"tag", "total_questions"})
	for _, tt := range totals {
		_ = cw.Write([]string{tt.Tag, fmt.Sprintf("%d", tt.TotalQuestions)})
	}
	cw.Flush()
	return cw.Error()
}

func writeShareCSV(w io.Writer, shares []trend.YearShare) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"year", "tag", "percentage"})
	for _, s := range shares {
		_ = cw.Write([]string{
			fmt.Sprintf("%d", s.Year),
			s.Tag,
			fmt.Sprintf("%.4f", s.Percentage),
		})
	}
	cw.Flush()
	return cw.Error()
}

func writeGrowthCSV(w io.Writer, rates []trend.GrowthRate) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"tag", "year", "growth_rate"})
	for _, gr := range rates {
		_ = cw.Write([]string{
			gr.Tag,
			fmt.Sprintf("%d", gr.Year),
			fmt.Sprintf("%.4f", gr.GrowthRate),
		})
	}
	cw.Flush()
	return cw.Error()
}

func writeClassesCSV(w io.Writer, classes map[string]trend.TrendClass, tagOrder []string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"tag", "trend"})
	for _, tag := range tagOrder {
		if class, ok := classes[tag]; ok {
			_ = cw.Write([]string{tag, class.String()})
		}
	}
	cw.Flush()
	return cw.Error()
}
