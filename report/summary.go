package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tagpulse-org/tagpulse/dataset"
	"github.com/tagpulse-org/tagpulse/trend"
)

// Summary builds a plain-text paragraph describing the dataset and the
// headline findings: the leading tag by volume and the classification
// buckets. Intended for the CLI's text output and report headers.
func Summary(p dataset.Profile, totals []trend.TagTotal, classes map[string]trend.TrendClass) string {
	var b strings.Builder

	if p.Rows == 0 {
		return "No data available to analyze."
	}

	fmt.Fprintf(&b, "%s records across %d–%d covering %d tags.",
		FormatInt(p.Rows), p.FirstYear, p.LastYear, len(p.Tags))

	if len(totals) > 0 {
		fmt.Fprintf(&b, " %s leads with %s questions overall.",
			totals[0].Tag, FormatInt(totals[0].TotalQuestions))
	}

	for _, class := range []trend.TrendClass{trend.Rising, trend.Declining, trend.Stable} {
		tags := tagsInClass(classes, class)
		if len(tags) == 0 {
			continue
		}
		fmt.Fprintf(&b, " %s: %s.", titleCase(class.String()), strings.Join(tags, ", "))
	}

	return b.String()
}

func tagsInClass(classes map[string]trend.TrendClass, want trend.TrendClass) []string {
	var tags []string
	for tag, class := range classes {
		if class == want {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

func titleCase(s string) string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
