package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/tagpulse-org/tagpulse/trend"
)

// ============================================================================
// TABLE BUILDERS — Terminal tables for the four analyses
// ============================================================================
// Tables are written to any io.Writer; section headers use color and degrade
// to plain text when the writer is not a terminal.
// ============================================================================

var sectionHeader = color.New(color.FgYellow, color.Bold)

// RankTable writes the tag ranking as a table. topN <= 0 means all tags.
func RankTable(w io.Writer, totals []trend.TagTotal, topN int) {
	if topN > 0 && len(totals) > topN {
		totals = totals[:topN]
	}

	sectionHeader.Fprintln(w, "Most asked-about tags")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Tag", "Total Questions"})

	grandTotal := 0
	for i, tt := range totals {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			tt.Tag,
			FormatInt(tt.TotalQuestions),
		})
		grandTotal += tt.TotalQuestions
	}
	table.SetFooter([]string{"", "Total", FormatInt(grandTotal)})
	table.Render()
}

// ShareTable writes per-year percentage shares, one row per (year, tag).
func ShareTable(w io.Writer, shares []trend.YearShare) {
	sectionHeader.Fprintln(w, "Share of all questions by year")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Year", "Tag", "Share %"})

	for _, s := range shares {
		table.Append([]string{
			fmt.Sprintf("%d", s.Year),
			s.Tag,
			fmt.Sprintf("%.2f", s.Percentage),
		})
	}
	table.Render()
}

// GrowthTable writes year-over-year growth rates, one row per transition.
func GrowthTable(w io.Writer, rates []trend.GrowthRate) {
	sectionHeader.Fprintln(w, "Year-over-year growth")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tag", "Year", "Growth %"})

	for _, gr := range rates {
		table.Append([]string{
			gr.Tag,
			fmt.Sprintf("%d", gr.Year),
			fmt.Sprintf("%+.1f", gr.GrowthRate),
		})
	}
	table.Render()
}

// ClassificationTable writes the Rising/Declining/Stable mapping, tags
// sorted ascending for stable output.
func ClassificationTable(w io.Writer, classes map[string]trend.TrendClass) {
	tags := make([]string, 0, len(classes))
	for tag := range classes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	sectionHeader.Fprintln(w, "Trend classification")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tag", "Trend"})

	for _, tag := range tags {
		table.Append([]string{tag, classes[tag].String()})
	}
	table.Render()
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
