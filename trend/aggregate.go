package trend

import (
	"sort"
)

// ============================================================================
// TREND AGGREGATOR — The four public operations
// ============================================================================
// Pipeline per operation: group → aggregate → sort. Every operation is a
// pure function of its input: no package state, no retries, no I/O.
// ============================================================================

// RankByTotal groups records by tag and sums NumQuestions within each group.
// The result is ordered descending by total; ties break by tag ascending so
// the output is deterministic. Empty input yields an empty result.
func RankByTotal(records []Record) []TagTotal {
	groups := GroupByTag(records)

	totals := make([]TagTotal, 0, len(groups))
	for _, g := range groups {
		sum := 0
		for _, i := range g.Indices {
			sum += records[i].NumQuestions
		}
		totals = append(totals, TagTotal{Tag: g.Tag, TotalQuestions: sum})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalQuestions != totals[j].TotalQuestions {
			return totals[i].TotalQuestions > totals[j].TotalQuestions
		}
		return totals[i].Tag < totals[j].Tag
	})
	return totals
}

// ComputeYearShare computes each record's percentage of its year's total
// question count. Result order matches input order; callers re-sort for
// presentation if they need to.
//
// A record with YearTotal <= 0 is malformed input: the computation aborts
// with a *DataError and returns no partial result.
func ComputeYearShare(records []Record) ([]YearShare, error) {
	for i, r := range records {
		if r.YearTotal <= 0 {
			return nil, NewDataError(i, "year_total", r.YearTotal, "year_total must be positive")
		}
	}

	shares := make([]YearShare, 0, len(records))
	for _, r := range records {
		shares = append(shares, YearShare{
			Year:       r.Year,
			Tag:        r.Tag,
			Percentage: float64(r.NumQuestions) / float64(r.YearTotal) * 100,
		})
	}
	return shares, nil
}

// ComputeGrowthRate computes the year-over-year percentage change in each
// tag's question count. Use WithTags to restrict the tags considered.
//
// Within a tag, records sort by year ascending and each transition uses the
// previous available year — gaps are not interpolated. A tag's first year
// produces no entry (no baseline), and a transition whose previous value is
// zero is omitted rather than producing a non-finite number. Both absences
// are deliberate: an undefined transition is distinct from zero growth.
func ComputeGrowthRate(records []Record, opts ...Option) []GrowthRate {
	cfg := applyOptions(opts)

	var rates []GrowthRate
	for _, g := range GroupByTag(records) {
		if !cfg.wants(g.Tag) {
			continue
		}

		// Snapshot (year, count) pairs so sorting never touches the input.
		type yearCount struct {
			year  int
			count int
		}
		series := make([]yearCount, 0, len(g.Indices))
		for _, i := range g.Indices {
			series = append(series, yearCount{year: records[i].Year, count: records[i].NumQuestions})
		}
		sort.Slice(series, func(i, j int) bool { return series[i].year < series[j].year })

		for i := 1; i < len(series); i++ {
			prev := series[i-1]
			curr := series[i]
			if prev.count == 0 {
				continue // undefined transition
			}
			rates = append(rates, GrowthRate{
				Tag:        g.Tag,
				Year:       curr.year,
				GrowthRate: float64(curr.count-prev.count) / float64(prev.count) * 100,
			})
		}
	}
	return rates
}

// ClassifyTrend maps each tag to Rising, Declining, or Stable based on the
// mean of its defined growth rates. A tag with no defined growth
// observations cannot be classified and is absent from the result — callers
// must handle absence explicitly.
func ClassifyTrend(growthRates []GrowthRate, thresholds Thresholds) map[string]TrendClass {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, gr := range growthRates {
		sums[gr.Tag] += gr.GrowthRate
		counts[gr.Tag]++
	}

	classes := make(map[string]TrendClass, len(counts))
	for tag, n := range counts {
		mean := sums[tag] / float64(n)
		switch {
		case mean >= thresholds.RisingMin:
			classes[tag] = Rising
		case mean <= thresholds.DecliningMax:
			classes[tag] = Declining
		default:
			classes[tag] = Stable
		}
	}
	return classes
}
