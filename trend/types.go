package trend

// ============================================================================
// TREND TYPES — Input record and derived views
// ============================================================================
// One Record per (year, tag) pair. Records are immutable once loaded; every
// operation in this package computes a fresh derived view and never mutates
// its input, so concurrent invocation over the same slice is safe.
// ============================================================================

// Record is one row of the tag-count table.
//
// Invariants (enforced by dataset.Validate at the loading boundary):
// NumQuestions >= 0, YearTotal > 0, NumQuestions <= YearTotal.
type Record struct {
	Year         int    `json:"year"`
	Tag          string `json:"tag"`
	NumQuestions int    `json:"num_questions"`
	YearTotal    int    `json:"year_total"`
}

// TagTotal is a tag's question count summed across all years.
type TagTotal struct {
	Tag            string `json:"tag"`
	TotalQuestions int    `json:"total_questions"`
}

// YearShare is a tag's percentage of all questions asked in a year.
type YearShare struct {
	Year       int     `json:"year"`
	Tag        string  `json:"tag"`
	Percentage float64 `json:"percentage"`
}

// GrowthRate is the percentage change in a tag's question count relative to
// its previous recorded year. Transitions with no prior year or a zero prior
// value produce no GrowthRate at all — undefined is an absence, not a zero.
type GrowthRate struct {
	Tag        string  `json:"tag"`
	Year       int     `json:"year"`
	GrowthRate float64 `json:"growth_rate"`
}

// ============================================================================
// CLASSIFICATION
// ============================================================================

// TrendClass is a coarse label derived from a tag's mean growth rate.
type TrendClass int

const (
	Stable TrendClass = iota
	Rising
	Declining
)

// String returns the display name of the classification.
func (c TrendClass) String() string {
	switch c {
	case Rising:
		return "rising"
	case Declining:
		return "declining"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// Thresholds configure ClassifyTrend. A tag whose mean growth rate is at
// least RisingMin classifies Rising, at most DecliningMax classifies
// Declining, and anything in between is Stable.
type Thresholds struct {
	RisingMin    float64 `json:"risingMin"`
	DecliningMax float64 `json:"decliningMax"`
}
