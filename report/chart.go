package report

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tagpulse-org/tagpulse/trend"
)

// ============================================================================
// CHART BUILDERS — PNG line charts via go-chart
// ============================================================================
// One ContinuousSeries per tag, X = year, Y = percentage. go-chart needs at
// least two X values per series, so single-point series are padded the same
// way single-month series are elsewhere in the ecosystem.
// ============================================================================

// ChartOptions size the rendered image.
type ChartOptions struct {
	Width  int
	Height int
}

// DefaultChartOptions returns the standard report chart size.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 1024, Height: 400}
}

// ShareChart renders per-tag share-of-questions lines as a PNG.
func ShareChart(w io.Writer, shares []trend.YearShare, opts ChartOptions) error {
	series := buildSeries(shareSeriesData(shares))
	if len(series) == 0 {
		return fmt.Errorf("share chart: no data to plot")
	}
	return renderLineChart(w, "Share of questions (%)", series, opts)
}

// GrowthChart renders per-tag year-over-year growth lines as a PNG.
func GrowthChart(w io.Writer, rates []trend.GrowthRate, opts ChartOptions) error {
	series := buildSeries(growthSeriesData(rates))
	if len(series) == 0 {
		return fmt.Errorf("growth chart: no data to plot")
	}
	return renderLineChart(w, "Growth rate (%)", series, opts)
}

// ============================================================================
// SERIES ASSEMBLY
// ============================================================================

// taggedPoints is an ordered tag → (x, y) points mapping.
type taggedPoints struct {
	order  []string
	points map[string][][2]float64
}

func newTaggedPoints() *taggedPoints {
	return &taggedPoints{points: make(map[string][][2]float64)}
}

func (tp *taggedPoints) add(tag string, x, y float64) {
	if _, exists := tp.points[tag]; !exists {
		tp.order = append(tp.order, tag)
	}
	tp.points[tag] = append(tp.points[tag], [2]float64{x, y})
}

func shareSeriesData(shares []trend.YearShare) *taggedPoints {
	tp := newTaggedPoints()
	for _, s := range shares {
		tp.add(s.Tag, float64(s.Year), s.Percentage)
	}
	return tp
}

func growthSeriesData(rates []trend.GrowthRate) *taggedPoints {
	tp := newTaggedPoints()
	for _, gr := range rates {
		tp.add(gr.Tag, float64(gr.Year), gr.GrowthRate)
	}
	return tp
}

func buildSeries(tp *taggedPoints) []chart.Series {
	series := make([]chart.Series, 0, len(tp.order))
	for i, tag := range tp.order {
		pts := tp.points[tag]

		xs := make([]float64, 0, len(pts))
		ys := make([]float64, 0, len(pts))
		for _, p := range pts {
			xs = append(xs, p[0])
			ys = append(ys, p[1])
		}
		// Pad to at least two X values for go-chart.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}

		c := chart.GetDefaultColor(i)
		series = append(series, chart.ContinuousSeries{
			Name:    tag,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: c,
				StrokeWidth: 2,
				DotColor:    c,
				DotWidth:    3,
			},
		})
	}
	return series
}

func renderLineChart(w io.Writer, yAxisName string, series []chart.Series, opts ChartOptions) error {
	graph := chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: yAxisName,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
