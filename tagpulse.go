// Package tagpulse computes programming-language popularity trends from a
// pre-aggregated Stack Overflow tag-count table.
//
// Usage:
//
//	import "github.com/tagpulse-org/tagpulse/trend"
//
//	records, err := dataset.LoadFile("by_tag_year.csv")
//	ranked := trend.RankByTotal(records)
//	shares, err := trend.ComputeYearShare(records)
//	rates := trend.ComputeGrowthRate(records, trend.WithTags("python", "r"))
//	classes := trend.ClassifyTrend(rates, trend.Thresholds{RisingMin: 5, DecliningMax: -5})
//
// The trend package is the computational core: four pure operations over an
// immutable record set. Loading, validation, and rendering live in the
// dataset and report packages; the aggregator itself never touches I/O.
package tagpulse
