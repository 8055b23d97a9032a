package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagpulse-org/tagpulse/report"
	"github.com/tagpulse-org/tagpulse/trend"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Compute each tag's percentage of all questions per year",
	RunE:  runShare,
}

var (
	shareTags   []string
	shareFormat string
	shareOut    string
)

func init() {
	shareCmd.Flags().StringSliceVar(&shareTags, "tags", nil, "restrict output to these tags")
	shareCmd.Flags().StringVar(&shareFormat, "format", "table", "output format: table, json, csv")
	shareCmd.Flags().StringVar(&shareOut, "out", "", "write output to file instead of stdout")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	shares, err := trend.ComputeYearShare(records)
	if err != nil {
		return err
	}
	shares = filterShares(shares, shareTags)

	w, closeFn, err := resolveWriter(shareOut)
	if err != nil {
		return err
	}
	defer closeFn()

	switch shareFormat {
	case "table":
		report.ShareTable(w, shares)
		return nil
	case "json":
		return writeJSON(w, shares)
	case "csv":
		return writeShareCSV(w, shares)
	default:
		return fmt.Errorf("unknown format %q", shareFormat)
	}
}

// filterShares restricts shares to the requested tags for presentation.
// The aggregator computes all rows; filtering is a display concern.
func filterShares(shares []trend.YearShare, tags []string) []trend.YearShare {
	if len(tags) == 0 {
		return shares
	}
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToLower(t)] = true
	}
	filtered := make([]trend.YearShare, 0, len(shares))
	for _, s := range shares {
		if want[strings.ToLower(s.Tag)] {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
