package chart

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// Slice is one labelled segment of the composition chart.
type Slice struct {
	Label string
	Count int
	Color string
}

// CompositionSlices returns the four character-class slices of c in fixed order.
func CompositionSlices(c analyzer.Counts) []Slice {
	return []Slice{
		{Label: "Uppercase", Count: c.Upper, Color: "#3498DB"},
		{Label: "Lowercase", Count: c.Lower, Color: "#2ECC71"},
		{Label: "Numbers", Count: c.Numbers, Color: "#E74C3C"},
		{Label: "Special", Count: c.Special, Color: "#F39C12"},
	}
}

// CompositionBars renders one horizontal bar per slice, sized relative to the
// largest slice. paint, when non-nil, colours the filled part of each bar.
func CompositionBars(slices []Slice, width int, paint func(color, s string) string) string {
	if width < 1 {
		width = 1
	}
	labelWidth := 0
	maxCount := 0
	for _, s := range slices {
		if w := displayWidth(s.Label); w > labelWidth {
			labelWidth = w
		}
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	shares := Shares(slices)
	lines := make([]string, 0, len(slices))
	for i, s := range slices {
		filled := 0
		if maxCount > 0 {
			filled = s.Count * width / maxCount
		}
		if s.Count > 0 && filled == 0 {
			filled = 1
		}
		bar := strings.Repeat(barFull, filled)
		if paint != nil {
			bar = paint(s.Color, bar)
		}
		bar += strings.Repeat(barEmpty, width-filled)
		lines = append(lines, fmt.Sprintf("%s %s %d (%.0f%%)", padCell(s.Label, labelWidth, false), bar, s.Count, shares[i]))
	}
	return strings.Join(lines, "\n")
}

// Shares returns each slice's percentage of the classified total.
func Shares(slices []Slice) []float64 {
	total := 0
	for _, s := range slices {
		total += s.Count
	}
	out := make([]float64, len(slices))
	if total == 0 {
		return out
	}
	for i, s := range slices {
		out[i] = float64(s.Count) / float64(total) * 100
	}
	return out
}
