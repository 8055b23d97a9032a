package trend

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// ============================================================================
// Test Data
// ============================================================================

// A small slice of the real 2008–2020 table shape: two languages plus a tag
// that appears in a single year only.
var sampleRecords = []Record{
	{Year: 2018, Tag: "python", NumQuestions: 900, YearTotal: 10000},
	{Year: 2019, Tag: "python", NumQuestions: 1000, YearTotal: 10000},
	{Year: 2020, Tag: "python", NumQuestions: 1500, YearTotal: 12000},
	{Year: 2018, Tag: "java", NumQuestions: 1200, YearTotal: 10000},
	{Year: 2019, Tag: "java", NumQuestions: 1100, YearTotal: 10000},
	{Year: 2020, Tag: "java", NumQuestions: 990, YearTotal: 12000},
	{Year: 2020, Tag: "kotlin", NumQuestions: 300, YearTotal: 12000},
}

// ============================================================================
// 1. RANK BY TOTAL
// ============================================================================

func TestRankByTotalOrdersDescending(t *testing.T) {
	records := []Record{
		{Year: 2018, Tag: "r", NumQuestions: 10, YearTotal: 100},
		{Year: 2019, Tag: "r", NumQuestions: 20, YearTotal: 100},
		{Year: 2018, Tag: "java", NumQuestions: 50, YearTotal: 100},
	}

	got := RankByTotal(records)
	want := []TagTotal{
		{Tag: "java", TotalQuestions: 50},
		{Tag: "r", TotalQuestions: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankByTotal = %v, want %v", got, want)
	}
}

func TestRankByTotalConservesSum(t *testing.T) {
	inputSum := 0
	for _, r := range sampleRecords {
		inputSum += r.NumQuestions
	}

	outputSum := 0
	prev := math.MaxInt
	for _, tt := range RankByTotal(sampleRecords) {
		outputSum += tt.TotalQuestions
		if tt.TotalQuestions > prev {
			t.Errorf("result not sorted descending: %d after %d", tt.TotalQuestions, prev)
		}
		prev = tt.TotalQuestions
	}

	if outputSum != inputSum {
		t.Errorf("total question sum: got %d, want %d", outputSum, inputSum)
	}
}

func TestRankByTotalTieBreaksByTag(t *testing.T) {
	records := []Record{
		{Year: 2019, Tag: "scala", NumQuestions: 40, YearTotal: 100},
		{Year: 2019, Tag: "elixir", NumQuestions: 40, YearTotal: 100},
	}

	got := RankByTotal(records)
	if got[0].Tag != "elixir" || got[1].Tag != "scala" {
		t.Errorf("ties should break by tag ascending, got %v", got)
	}
}

func TestRankByTotalEmptyInput(t *testing.T) {
	if got := RankByTotal(nil); len(got) != 0 {
		t.Errorf("empty input should yield empty result, got %v", got)
	}
}

// ============================================================================
// 2. YEAR SHARE
// ============================================================================

func TestComputeYearShareScenario(t *testing.T) {
	records := []Record{
		{Year: 2019, Tag: "python", NumQuestions: 100, YearTotal: 1000},
		{Year: 2020, Tag: "python", NumQuestions: 150, YearTotal: 1200},
	}

	got, err := ComputeYearShare(records)
	if err != nil {
		t.Fatalf("ComputeYearShare failed: %v", err)
	}

	want := []YearShare{
		{Year: 2019, Tag: "python", Percentage: 10.0},
		{Year: 2020, Tag: "python", Percentage: 12.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeYearShare = %v, want %v", got, want)
	}
}

func TestComputeYearShareBounds(t *testing.T) {
	shares, err := ComputeYearShare(sampleRecords)
	if err != nil {
		t.Fatalf("ComputeYearShare failed: %v", err)
	}
	for _, s := range shares {
		if s.Percentage < 0 || s.Percentage > 100 {
			t.Errorf("share %s/%d out of [0,100]: %f", s.Tag, s.Year, s.Percentage)
		}
	}
}

func TestComputeYearSharePreservesInputOrder(t *testing.T) {
	shares, err := ComputeYearShare(sampleRecords)
	if err != nil {
		t.Fatalf("ComputeYearShare failed: %v", err)
	}
	if len(shares) != len(sampleRecords) {
		t.Fatalf("got %d shares, want %d", len(shares), len(sampleRecords))
	}
	for i, s := range shares {
		if s.Tag != sampleRecords[i].Tag || s.Year != sampleRecords[i].Year {
			t.Errorf("row %d reordered: got %s/%d, want %s/%d",
				i, s.Tag, s.Year, sampleRecords[i].Tag, sampleRecords[i].Year)
		}
	}
}

func TestComputeYearShareZeroTotal(t *testing.T) {
	records := []Record{
		{Year: 2019, Tag: "python", NumQuestions: 100, YearTotal: 1000},
		{Year: 2020, Tag: "python", NumQuestions: 150, YearTotal: 0},
	}

	shares, err := ComputeYearShare(records)
	if err == nil {
		t.Fatal("expected DataError for year_total=0")
	}
	if shares != nil {
		t.Errorf("no partial result expected, got %v", shares)
	}

	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected *DataError, got %T: %v", err, err)
	}
	if dataErr.Row != 1 || dataErr.Field != "year_total" {
		t.Errorf("error context: got row=%d field=%s, want row=1 field=year_total", dataErr.Row, dataErr.Field)
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Error("DataError should match ErrMalformedRecord")
	}
}

// ============================================================================
// 3. GROWTH RATE
// ============================================================================

func TestComputeGrowthRateScenario(t *testing.T) {
	records := []Record{
		{Year: 2019, Tag: "python", NumQuestions: 100, YearTotal: 1000},
		{Year: 2020, Tag: "python", NumQuestions: 150, YearTotal: 1200},
	}

	got := ComputeGrowthRate(records)
	want := []GrowthRate{{Tag: "python", Year: 2020, GrowthRate: 50.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeGrowthRate = %v, want %v", got, want)
	}
}

func TestComputeGrowthRateZeroBaseline(t *testing.T) {
	records := []Record{
		{Year: 2018, Tag: "perl", NumQuestions: 0, YearTotal: 500},
		{Year: 2019, Tag: "perl", NumQuestions: 0, YearTotal: 600},
	}

	if got := ComputeGrowthRate(records); len(got) != 0 {
		t.Errorf("zero-baseline transitions should be omitted, got %v", got)
	}
}

func TestComputeGrowthRateNoEntryForFirstYear(t *testing.T) {
	for _, gr := range ComputeGrowthRate(sampleRecords) {
		if gr.Tag == "python" && gr.Year == 2018 {
			t.Error("earliest year of a tag must not produce a growth entry")
		}
		if gr.Tag == "kotlin" {
			t.Errorf("single-year tag must produce no entries, got %v", gr)
		}
	}
}

func TestComputeGrowthRateGapUsesPreviousAvailableYear(t *testing.T) {
	records := []Record{
		{Year: 2015, Tag: "go", NumQuestions: 100, YearTotal: 1000},
		{Year: 2018, Tag: "go", NumQuestions: 250, YearTotal: 1000},
	}

	got := ComputeGrowthRate(records)
	want := []GrowthRate{{Tag: "go", Year: 2018, GrowthRate: 150.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("gap years should use previous available year, got %v, want %v", got, want)
	}
}

func TestComputeGrowthRateUnsortedInput(t *testing.T) {
	records := []Record{
		{Year: 2020, Tag: "rust", NumQuestions: 200, YearTotal: 1000},
		{Year: 2019, Tag: "rust", NumQuestions: 100, YearTotal: 1000},
	}

	got := ComputeGrowthRate(records)
	want := []GrowthRate{{Tag: "rust", Year: 2020, GrowthRate: 100.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("years should sort ascending within a tag, got %v, want %v", got, want)
	}
}

func TestComputeGrowthRateZeroGrowthIsDefined(t *testing.T) {
	records := []Record{
		{Year: 2019, Tag: "php", NumQuestions: 400, YearTotal: 1000},
		{Year: 2020, Tag: "php", NumQuestions: 400, YearTotal: 1000},
	}

	got := ComputeGrowthRate(records)
	if len(got) != 1 || got[0].GrowthRate != 0 {
		t.Errorf("no-change transition is defined zero growth, got %v", got)
	}
}

func TestComputeGrowthRateTagRestriction(t *testing.T) {
	got := ComputeGrowthRate(sampleRecords, WithTags("Java"))
	if len(got) == 0 {
		t.Fatal("expected java growth entries")
	}
	for _, gr := range got {
		if gr.Tag != "java" {
			t.Errorf("restricted to java, got entry for %s", gr.Tag)
		}
	}
}

// ============================================================================
// 4. CLASSIFY
// ============================================================================

func TestClassifyTrend(t *testing.T) {
	rates := []GrowthRate{
		{Tag: "python", Year: 2019, GrowthRate: 20},
		{Tag: "python", Year: 2020, GrowthRate: 10},
		{Tag: "perl", Year: 2019, GrowthRate: -30},
		{Tag: "perl", Year: 2020, GrowthRate: -10},
		{Tag: "java", Year: 2019, GrowthRate: 1},
		{Tag: "java", Year: 2020, GrowthRate: -1},
	}
	thresholds := Thresholds{RisingMin: 5, DecliningMax: -5}

	got := ClassifyTrend(rates, thresholds)
	want := map[string]TrendClass{
		"python": Rising,
		"perl":   Declining,
		"java":   Stable,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClassifyTrend = %v, want %v", got, want)
	}
}

func TestClassifyTrendBoundaryValues(t *testing.T) {
	rates := []GrowthRate{
		{Tag: "up", Year: 2020, GrowthRate: 5},
		{Tag: "down", Year: 2020, GrowthRate: -5},
	}
	got := ClassifyTrend(rates, Thresholds{RisingMin: 5, DecliningMax: -5})

	if got["up"] != Rising {
		t.Errorf("mean == RisingMin should classify Rising, got %v", got["up"])
	}
	if got["down"] != Declining {
		t.Errorf("mean == DecliningMax should classify Declining, got %v", got["down"])
	}
}

func TestClassifyTrendExcludesUnobservedTags(t *testing.T) {
	// kotlin has a single year, so no defined growth observations.
	rates := ComputeGrowthRate(sampleRecords)
	classes := ClassifyTrend(rates, Thresholds{RisingMin: 5, DecliningMax: -5})

	if _, ok := classes["kotlin"]; ok {
		t.Error("tag with zero growth observations must be absent from the mapping")
	}
	if _, ok := classes["python"]; !ok {
		t.Error("python has defined growth and should be classified")
	}
}

// ============================================================================
// 5. PURITY
// ============================================================================

func TestOperationsAreIdempotent(t *testing.T) {
	input := make([]Record, len(sampleRecords))
	copy(input, sampleRecords)

	rank1 := RankByTotal(input)
	rank2 := RankByTotal(input)
	if !reflect.DeepEqual(rank1, rank2) {
		t.Error("RankByTotal not idempotent")
	}

	share1, _ := ComputeYearShare(input)
	share2, _ := ComputeYearShare(input)
	if !reflect.DeepEqual(share1, share2) {
		t.Error("ComputeYearShare not idempotent")
	}

	growth1 := ComputeGrowthRate(input)
	growth2 := ComputeGrowthRate(input)
	if !reflect.DeepEqual(growth1, growth2) {
		t.Error("ComputeGrowthRate not idempotent")
	}

	classes1 := ClassifyTrend(growth1, Thresholds{RisingMin: 5, DecliningMax: -5})
	classes2 := ClassifyTrend(growth1, Thresholds{RisingMin: 5, DecliningMax: -5})
	if !reflect.DeepEqual(classes1, classes2) {
		t.Error("ClassifyTrend not idempotent")
	}

	if !reflect.DeepEqual(input, sampleRecords) {
		t.Error("operations must not mutate their input")
	}
}
