package dataset

import (
	"sort"

	"github.com/tagpulse-org/tagpulse/trend"
)

// ============================================================================
// PROFILE — Describes the shape of a loaded tag-count table
// ============================================================================

// Profile summarizes a record set: how many rows, which tags, the year span
// covered, and each year's total question count (the normalization
// denominator).
type Profile struct {
	Rows      int         `json:"rows"`
	Tags      []string    `json:"tags"` // sorted ascending
	FirstYear int         `json:"firstYear"`
	LastYear  int         `json:"lastYear"`
	YearTotal map[int]int `json:"yearTotal"`
}

// Describe builds a Profile from records. An empty set yields a zero Profile.
func Describe(records []trend.Record) Profile {
	p := Profile{
		Rows:      len(records),
		YearTotal: make(map[int]int),
	}
	if len(records) == 0 {
		return p
	}

	tagSeen := make(map[string]bool)
	p.FirstYear = records[0].Year
	p.LastYear = records[0].Year

	for _, r := range records {
		if !tagSeen[r.Tag] {
			tagSeen[r.Tag] = true
			p.Tags = append(p.Tags, r.Tag)
		}
		if r.Year < p.FirstYear {
			p.FirstYear = r.Year
		}
		if r.Year > p.LastYear {
			p.LastYear = r.Year
		}
		p.YearTotal[r.Year] = r.YearTotal
	}

	sort.Strings(p.Tags)
	return p
}

// Years returns the years present in the profile, ascending.
func (p Profile) Years() []int {
	years := make([]int, 0, len(p.YearTotal))
	for y := range p.YearTotal {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
