package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/pathfang/internal/stats"
)

// Plot writes a self-contained HTML page charting the pool's depth and
// fan-out distributions.
func Plot(w io.Writer, report stats.Report) error {
	page := components.NewPage()
	page.PageTitle = "pathfang pool shape"
	page.AddCharts(depthChart(report), fanOutChart(report))

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render plot page: %w", err)
	}

	return nil
}

func depthChart(report stats.Report) *charts.Bar {
	labels := make([]string, len(report.DepthCounts))
	data := make([]opts.BarData, len(report.DepthCounts))

	for depth, count := range report.DepthCounts {
		labels[depth] = strconv.Itoa(depth)
		data[depth] = opts.BarData{Value: count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Paths per depth",
			Subtitle: fmt.Sprintf("%d paths, max depth %d", report.Paths, report.MaxDepth),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("paths", data)

	return bar
}

func fanOutChart(report stats.Report) *charts.Bar {
	fanOuts := make([]int, 0, len(report.FanOutCounts))
	for fanOut := range report.FanOutCounts {
		fanOuts = append(fanOuts, fanOut)
	}

	sort.Ints(fanOuts)

	labels := make([]string, len(fanOuts))
	data := make([]opts.BarData, len(fanOuts))

	for i, fanOut := range fanOuts {
		labels[i] = strconv.Itoa(fanOut)
		data[i] = opts.BarData{Value: report.FanOutCounts[fanOut]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Parents per fan-out",
			Subtitle: fmt.Sprintf("%d leaves excluded", report.Leaves),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("parents", data)

	return bar
}
