package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagpulse-org/tagpulse/report"
	"github.com/tagpulse-org/tagpulse/trend"
)

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Compute year-over-year growth rates per tag",
	Long: `Compute the percentage change in each tag's question count between
consecutive recorded years. A tag's first year has no baseline and a
zero-count baseline makes the transition undefined; neither produces a row.`,
	RunE: runGrowth,
}

var (
	growthTags   []string
	growthFormat string
	growthOut    string
)

func init() {
	growthCmd.Flags().StringSliceVar(&growthTags, "tags", nil, "restrict computation to these tags")
	growthCmd.Flags().StringVar(&growthFormat, "format", "table", "output format: table, json, csv")
	growthCmd.Flags().StringVar(&growthOut, "out", "", "write output to file instead of stdout")
	rootCmd.AddCommand(growthCmd)
}

func runGrowth(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}
	rates := trend.ComputeGrowthRate(records, trend.WithTags(growthTags...))

	w, closeFn, err := resolveWriter(growthOut)
	if err != nil {
		return err
	}
	defer closeFn()

	switch growthFormat {
	case "table":
		report.GrowthTable(w, rates)
		return nil
	case "json":
		return writeJSON(w, rates)
	case "csv":
		return writeGrowthCSV(w, rates)
	default:
		return fmt.Errorf("unknown format %q", growthFormat)
	}
}
