package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tagpulse-org/tagpulse/config"
	"github.com/tagpulse-org/tagpulse/report"
	"github.com/tagpulse-org/tagpulse/trend"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify tags as rising, declining, or stable",
	Long: `Classify each tag by the mean of its defined year-over-year growth
rates against the configured thresholds. Tags with no defined growth
observations (single year of data, or all zero-count baselines) cannot be
classified and are omitted.`,
	RunE: runClassify,
}

var (
	classifyTags         []string
	classifyRisingMin    float64
	classifyDecliningMax float64
	classifyFormat       string
	classifyOut          string
)

func init() {
	classifyCmd.Flags().StringSliceVar(&classifyTags, "tags", nil, "restrict classification to these tags")
	classifyCmd.Flags().Float64Var(&classifyRisingMin, "rising-min", 0, "mean growth at or above this classifies rising (overrides config)")
	classifyCmd.Flags().Float64Var(&classifyDecliningMax, "declining-max", 0, "mean growth at or below this classifies declining (overrides config)")
	classifyCmd.Flags().StringVar(&classifyFormat, "format", "table", "output format: table, json, csv")
	classifyCmd.Flags().StringVar(&classifyOut, "out", "", "write output to file instead of stdout")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	cfg := config.Get()
	thresholds := trend.Thresholds{
		RisingMin:    cfg.Thresholds.RisingMin,
		DecliningMax: cfg.Thresholds.DecliningMax,
	}
	if cmd.Flags().Changed("rising-min") {
		thresholds.RisingMin = classifyRisingMin
	}
	if cmd.Flags().Changed("declining-max") {
		thresholds.DecliningMax = classifyDecliningMax
	}
	if thresholds.RisingMin <= thresholds.DecliningMax {
		return fmt.Errorf("invalid thresholds: rising-min (%.2f) must exceed declining-max (%.2f)",
			thresholds.RisingMin, thresholds.DecliningMax)
	}

	rates := trend.ComputeGrowthRate(records, trend.WithTags(classifyTags...))
	classes := trend.ClassifyTrend(rates, thresholds)

	w, closeFn, err := resolveWriter(classifyOut)
	if err != nil {
		return err
	}
	defer closeFn()

	switch classifyFormat {
	case "table":
		report.ClassificationTable(w, classes)
		return nil
	case "json":
		named := make(map[string]string, len(classes))
		for tag, class := range classes {
			named[tag] = class.String()
		}
		return writeJSON(w, named)
	case "csv":
		tags := make([]string, 0, len(classes))
		for tag := range classes {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		return writeClassesCSV(w, classes, tags)
	default:
		return fmt.Errorf("unknown format %q", classifyFormat)
	}
}
