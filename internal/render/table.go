// Package render formats ingest results for people: summary tables on the
// terminal, YAML/JSON exports, and HTML chart pages.
package render

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/pathfang/internal/ingest"
	"github.com/Sumatoshi-tech/pathfang/internal/stats"
)

const maxFanOutRows = 10

// Table writes a human-readable summary of one ingest run and its pool
// statistics.
func Table(w io.Writer, result *ingest.Result, report stats.Report) error {
	heading := color.New(color.FgCyan, color.Bold)

	_, err := heading.Fprintf(w, "pathfang ingest: source %s, strategy %s\n\n", result.Source, report.Strategy)
	if err != nil {
		return fmt.Errorf("write heading: %w", err)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"Paths ingested", humanize.Comma(int64(result.Paths))},
		{"Paths interned", humanize.Comma(int64(report.Paths))},
		{"Leaves", humanize.Comma(int64(report.Leaves))},
		{"Distinct tags", humanize.Comma(int64(report.DistinctTags))},
		{"Max depth", report.MaxDepth},
		{"Mean depth", fmt.Sprintf("%.2f", report.MeanDepth)},
		{"Subnode hits", humanize.Comma(int64(result.Hits))},
		{"Subnode misses", humanize.Comma(int64(result.Misses))},
		{"Tag bytes stored", humanize.Bytes(report.TagBytes)},
		{"Expanded would be", humanize.Bytes(report.ExpandedBytes)},
		{"Flyweight saving", humanize.Bytes(report.SavedBytes())},
		{"Elapsed", result.Elapsed.Round(time.Millisecond)},
	})
	tbl.Render()

	return renderFanOut(w, report)
}

func renderFanOut(w io.Writer, report stats.Report) error {
	if len(report.FanOutCounts) == 0 {
		return nil
	}

	fanOuts := make([]int, 0, len(report.FanOutCounts))
	for fanOut := range report.FanOutCounts {
		fanOuts = append(fanOuts, fanOut)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(fanOuts)))

	if len(fanOuts) > maxFanOutRows {
		fanOuts = fanOuts[:maxFanOutRows]
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Fan-out", "Parents"})

	for _, fanOut := range fanOuts {
		tbl.AppendRow(table.Row{fanOut, report.FanOutCounts[fanOut]})
	}

	tbl.Render()

	return nil
}
