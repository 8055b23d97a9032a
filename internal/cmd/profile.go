package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tagpulse-org/tagpulse/dataset"
	"github.com/tagpulse-org/tagpulse/report"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Describe the loaded dataset",
	Long: `Profile the dataset: row count, year range, distinct tags, and the
per-year question totals. Useful as a sanity check before running any of
the analytical commands.`,
	RunE: runProfile,
}

var (
	profileFormat string
	profileOut    string
)

func init() {
	profileCmd.Flags().StringVar(&profileFormat, "format", "table", "output format: table, json")
	profileCmd.Flags().StringVar(&profileOut, "out", "", "write output to file instead of stdout")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}
	p := dataset.Describe(records)

	w, closeFn, err := resolveWriter(profileOut)
	if err != nil {
		return err
	}
	defer closeFn()

	switch profileFormat {
	case "table":
		fmt.Fprintf(w, "Rows:  %s\n", report.FormatInt(p.Rows))
		fmt.Fprintf(w, "Years: %d-%d\n", p.FirstYear, p.LastYear)
		fmt.Fprintf(w, "Tags:  %s\n\n", strings.Join(p.Tags, ", "))

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Year", "Total Questions"})
		for _, year := range p.Years() {
			table.Append([]string{
				fmt.Sprintf("%d", year),
				report.FormatInt(p.YearTotal[year]),
			})
		}
		table.Render()
		return nil
	case "json":
		return writeJSON(w, p)
	default:
		return fmt.Errorf("unknown format %q", profileFormat)
	}
}
