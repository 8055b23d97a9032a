package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagpulse-org/tagpulse/config"
	"github.com/tagpulse-org/tagpulse/report"
	"github.com/tagpulse-org/tagpulse/trend"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank tags by total questions across all years",
	RunE:  runRank,
}

var (
	rankTop    int
	rankFormat string
	rankOut    string
)

func init() {
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "show only the top N tags (0 = config default)")
	rankCmd.Flags().StringVar(&rankFormat, "format", "table", "output format: table, json, csv")
	rankCmd.Flags().StringVar(&rankOut, "out", "", "write output to file instead of stdout")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}
	totals := trend.RankByTotal(records)

	topN := rankTop
	if !cmd.Flags().Changed("top") {
		topN = config.Get().Report.TopN
	}

	w, closeFn, err := resolveWriter(rankOut)
	if err != nil {
		return err
	}
	defer closeFn()

	switch rankFormat {
	case "table":
		report.RankTable(w, totals, topN)
		return nil
	case "json":
		if topN > 0 && len(totals) > topN {
			totals = totals[:topN]
		}
		return writeJSON(w, totals)
	case "csv":
		if topN > 0 && len(totals) > topN {
			totals = totals[:topN]
		}
		return writeRankCSV(w, totals)
	default:
		return fmt.Errorf("unknown format %q", rankFormat)
	}
}
