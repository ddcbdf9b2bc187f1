// Package chart renders text charts for analysis results and history.
package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series is a named line on a plot. A Fixed series is drawn against
// [Min, Max] instead of the range of its own values.
type Series struct {
	Name   string
	Values []float64
	Fixed  bool
	Min    float64
	Max    float64
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	axisLabelWidth    = 4
	axisSeparator     = " │ "
	fallbackTermWidth = 80
	ansiReset         = "\x1b[0m"
)

var seriesColors = []string{"\x1b[36m", "\x1b[33m", "\x1b[35m", "\x1b[32m"}

// brailleBits maps a dot at [column][row] of a 2x4 cell to its bit.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// PlotSeries renders a braille line plot of series; width and height are in cells.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return plot(w, title, series, width, height, false)
}

// PlotSeriesWithColor is PlotSeries with ANSI colour forced on unless NO_COLOR is set.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	return plot(w, title, series, width, height, forceColor)
}

// PlotWidthFor returns the plot width that fits totalWidth columns once the axis is drawn.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	width := totalWidth - axisLabelWidth - utf8.RuneCountInString(axisSeparator)
	if width < minPlotWidth {
		return minPlotWidth
	}
	return width
}

func plot(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	lines := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	c := newCanvas(width, height)
	fixed := true
	header := make([]string, 0, len(lines)+2)
	if title != "" {
		header = append(header, title)
	}
	rangeLines := make([]string, 0, len(lines))
	for i, s := range lines {
		lo, hi := bounds(s)
		fixed = fixed && s.Fixed
		rangeLines = append(rangeLines, fmt.Sprintf("%s: min=%.2f max=%.2f", s.Name, lo, hi))
		prevX, prevY := -1, -1
		for x, v := range fitToWidth(s.Values, width) {
			y := c.dotRow(v, lo, hi)
			if prevX < 0 {
				c.set(2*x, y, i)
			} else {
				c.line(prevX, prevY, 2*x, y, i, i%2 == 1)
			}
			prevX, prevY = 2*x, y
		}
	}
	if fixed {
		header = append(header, "Fixed scale; ranges below.")
	} else {
		header = append(header, "Scaled per series; ranges below.")
	}
	header = append(header, rangeLines...)

	useColor := colorEnabled(w, forceColor)
	for _, line := range header {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for y := 0; y < height; y++ {
		if _, err := fmt.Fprintln(w, c.renderRow(y, axisLabel(y, height), useColor)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", legend(lines, useColor)); err != nil {
		return err
	}
	return nil
}

type canvas struct {
	width  int
	height int
	dots   [][]uint8
	owner  [][]int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.dots = make([][]uint8, height)
	c.owner = make([][]int, height)
	for y := range c.dots {
		c.dots[y] = make([]uint8, width)
		c.owner[y] = make([]int, width)
		for x := range c.owner[y] {
			c.owner[y][x] = -1
		}
	}
	return c
}

// dotRow maps v onto a dot row, 0 being the top.
func (c *canvas) dotRow(v, lo, hi float64) int {
	rows := c.height * 4
	if rows <= 1 {
		return 0
	}
	row := int(math.Round((hi - v) / (hi - lo) * float64(rows-1)))
	return clamp(row, 0, rows-1)
}

func (c *canvas) set(x, y, series int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.width || cy >= c.height {
		return
	}
	c.dots[cy][cx] |= brailleBits[x%2][y%4]
	if c.owner[cy][cx] < 0 {
		c.owner[cy][cx] = series
	}
}

// line draws a Bresenham segment. Dashed lines leave every other cell column blank.
func (c *canvas) line(x0, y0, x1, y1, series int, dashed bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if !dashed || (x0/2)%2 == 0 {
			c.set(x0, y0, series)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) renderRow(y int, label string, useColor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s%s", axisLabelWidth, label, axisSeparator)
	for x := 0; x < c.width; x++ {
		ch := rune(0x2800 + int(c.dots[y][x]))
		if owner := c.owner[y][x]; useColor && owner >= 0 {
			b.WriteString(seriesColors[owner%len(seriesColors)])
			b.WriteRune(ch)
			b.WriteString(ansiReset)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func axisLabel(y, height int) string {
	switch {
	case y == 0:
		return "100%"
	case y == height-1:
		return "0%"
	case height > 2 && y == height/2:
		return "50%"
	}
	return ""
}

func legend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		style := "solid"
		if i%2 == 1 {
			style = "dashed"
		}
		label := fmt.Sprintf("⠁ %s (%s)", s.Name, style)
		if useColor {
			label = seriesColors[i%len(seriesColors)] + label + ansiReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// bounds returns the drawing range of s, widened when the values are flat.
func bounds(s Series) (float64, float64) {
	if s.Fixed && s.Max > s.Min {
		return s.Min, s.Max
	}
	lo, hi := s.Values[0], s.Values[0]
	for _, v := range s.Values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		lo--
		hi++
	}
	return lo, hi
}

// fitToWidth averages values into width buckets, repeating values when there
// are fewer points than columns.
func fitToWidth(values []float64, width int) []float64 {
	n := len(values)
	out := make([]float64, width)
	for i := range out {
		lo := i * n / width
		hi := (i + 1) * n / width
		if hi <= lo {
			out[i] = values[lo]
			continue
		}
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func colorEnabled(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
