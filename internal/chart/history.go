package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/pwmeter/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := bounds(Series{Values: values})
	var b strings.Builder
	for _, v := range values {
		pos := (v - lo) / (hi - lo)
		idx := clamp(int(math.Round(pos*float64(len(sparkChars)-1))), 0, len(sparkChars)-1)
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderScoreCurve plots saved scores and entropy, smoothed over window.
func RenderScoreCurve(w io.Writer, entries []model.HistoryEntry, window, totalWidth, height int, useColor bool) error {
	if len(entries) == 0 {
		return nil
	}
	scores := make([]float64, len(entries))
	entropies := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = float64(e.Score)
		entropies[i] = float64(e.Entropy)
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Score History", []Series{
		{Name: "Score", Values: MovingAverage(scores, window), Fixed: true, Min: 0, Max: 100},
		{Name: "Entropy", Values: MovingAverage(entropies, window)},
	}, width, height, useColor)
}

// RenderHistorySummary prints aggregate history figures.
func RenderHistorySummary(w io.Writer, sum model.HistorySummary) error {
	if sum.Count == 0 {
		_, err := fmt.Fprintln(w, "No history found.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Entries: %s", humanize.Comma(int64(sum.Count))),
		fmt.Sprintf("Sessions: %s", humanize.Comma(int64(sum.Sessions))),
		fmt.Sprintf("Avg Score: %.1f", sum.AvgScore),
		fmt.Sprintf("Best Score: %d", sum.BestScore),
		fmt.Sprintf("Avg Entropy: %.1f bits", sum.AvgEntropy),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// HistoryRows returns table rows for entries, newest first.
func HistoryRows(entries []model.HistoryEntry) ([]string, [][]string) {
	headers := []string{"When", "Source", "Len", "Score", "Strength", "Entropy", "U/L/N/S", "Flags"}
	rows := make([][]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, []string{
			humanize.Time(e.CreatedAt),
			string(e.Source),
			fmt.Sprintf("%d", e.Length),
			fmt.Sprintf("%d", e.Score),
			e.Strength,
			fmt.Sprintf("%d", e.Entropy),
			fmt.Sprintf("%d/%d/%d/%d", e.Upper, e.Lower, e.Numbers, e.Special),
			entryFlags(e),
		})
	}
	return headers, rows
}

// RenderHistoryTable prints entries as an aligned table.
func RenderHistoryTable(w io.Writer, entries []model.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history found.")
		return err
	}
	headers, rows := HistoryRows(entries)
	rightAlign := map[int]bool{2: true, 3: true, 5: true}
	for _, line := range FormatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func entryFlags(e model.HistoryEntry) string {
	var flags []string
	if e.HasSequence {
		flags = append(flags, "seq")
	}
	if e.IsCommon {
		flags = append(flags, "common")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
