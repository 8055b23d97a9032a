package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tagpulse-org/tagpulse/config"
	"github.com/tagpulse-org/tagpulse/dataset"
	"github.com/tagpulse-org/tagpulse/report"
	"github.com/tagpulse-org/tagpulse/trend"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis and write a complete report",
	Long: `Run every analysis (ranking, share, growth, classification) over the
dataset, print the tables and a narrative summary, and render the share and
growth charts as PNG files under --out-dir.`,
	RunE: runReport,
}

var (
	reportOutDir string
	reportTags   []string
)

func init() {
	reportCmd.Flags().StringVar(&reportOutDir, "out-dir", ".", "directory for the rendered chart PNGs")
	reportCmd.Flags().StringSliceVar(&reportTags, "tags", nil, "restrict charts, growth, and classification to these tags")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log.Printf("📊 Loading dataset from %s", dataFile)
	records, err := loadRecords()
	if err != nil {
		return err
	}
	profile := dataset.Describe(records)
	log.Printf("✅ Loaded %d records (%d-%d, %d tags)",
		profile.Rows, profile.FirstYear, profile.LastYear, len(profile.Tags))

	totals := trend.RankByTotal(records)
	shares, err := trend.ComputeYearShare(records)
	if err != nil {
		return err
	}
	shares = filterShares(shares, reportTags)
	rates := trend.ComputeGrowthRate(records, trend.WithTags(reportTags...))
	classes := trend.ClassifyTrend(rates, trend.Thresholds{
		RisingMin:    cfg.Thresholds.RisingMin,
		DecliningMax: cfg.Thresholds.DecliningMax,
	})

	w := os.Stdout
	fmt.Fprintln(w, report.Summary(profile, totals, classes))
	fmt.Fprintln(w)
	report.RankTable(w, totals, cfg.Report.TopN)
	fmt.Fprintln(w)
	report.ShareTable(w, shares)
	fmt.Fprintln(w)
	report.GrowthTable(w, rates)
	fmt.Fprintln(w)
	report.ClassificationTable(w, classes)

	if err := os.MkdirAll(reportOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	opts := report.ChartOptions{Width: cfg.Report.ChartWidth, Height: cfg.Report.ChartHeight}

	sharePath := filepath.Join(reportOutDir, "share.png")
	if err := renderChartFile(sharePath, func(f *os.File) error {
		return report.ShareChart(f, shares, opts)
	}); err != nil {
		return err
	}
	log.Printf("📈 Wrote %s", sharePath)

	growthPath := filepath.Join(reportOutDir, "growth.png")
	if err := renderChartFile(growthPath, func(f *os.File) error {
		return report.GrowthChart(f, rates, opts)
	}); err != nil {
		return err
	}
	log.Printf("📈 Wrote %s", growthPath)

	return nil
}

func renderChartFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
