package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/chart"
	"github.com/verte-zerg/pwmeter/internal/feedback"
)

const (
	barWidth      = 40
	chartBarWidth = 24
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	sectionStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

func (m *Model) render() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.input.View(),
		"",
		renderStrength(m.result),
		"",
		sectionStyle.Render(renderChecklist(feedback.Requirements(m.result))),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render(renderStats(m.result, m.estimate)),
		sectionStyle.Render(renderComposition(m.result.Counts, m.config.Color)),
	)
	var body string
	if m.width > 0 && m.width < 100 {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	lines := []string{
		titleStyle.Render("Password Strength Meter"),
		"",
		body,
		"",
		hintStyle.Render(m.hint),
	}
	if m.status != "" {
		lines = append(lines, mutedStyle.Render(m.status))
	}
	lines = append(lines, m.renderFooter())
	return strings.Join(lines, "\n")
}

func renderStrength(r analyzer.Result) string {
	filled := r.Score * barWidth / 100
	color := lipgloss.Color(feedback.Color(r.Strength))
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	label := lipgloss.NewStyle().Foreground(color).Bold(true).Render(feedback.Label(r.Strength))
	return fmt.Sprintf("%s\n%s  %s", bar, label, mutedStyle.Render(fmt.Sprintf("Score: %d/100", r.Score)))
}

func renderChecklist(reqs []feedback.Requirement) string {
	titleWidth := 0
	for _, req := range reqs {
		if w := runewidth.StringWidth(req.Title); w > titleWidth {
			titleWidth = w
		}
	}
	lines := make([]string, 0, len(reqs))
	for _, req := range reqs {
		mark := invalidStyle.Render("✗")
		if req.Valid {
			mark = validStyle.Render("✓")
		}
		title := runewidth.FillRight(req.Title, titleWidth)
		line := fmt.Sprintf("%s %s", mark, title)
		if req.Value != "" {
			line += "  " + mutedStyle.Render(req.Value)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderStats(r analyzer.Result, est analyzer.Estimate) string {
	return strings.Join(chart.FormatTable(nil, feedback.StatRows(r, est), nil), "\n")
}

func renderComposition(counts analyzer.Counts, useColor bool) string {
	var paint func(color, s string) string
	if useColor {
		paint = func(color, s string) string {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
		}
	}
	return "Composition\n" + chart.CompositionBars(chart.CompositionSlices(counts), chartBarWidth, paint)
}

func (m *Model) renderFooter() string {
	segments := []string{"ctrl+g generate", "ctrl+r show/hide", "ctrl+y copy"}
	if m.store != nil {
		segments = append(segments, "ctrl+s save")
	}
	segments = append(segments, "esc quit")
	footer := strings.Join(segments, "  ")
	if m.hasSummary && m.summary.Count > 0 {
		footer += fmt.Sprintf("   History %d saved · avg %.1f · best %d", m.summary.Count, m.summary.AvgScore, m.summary.BestScore)
	}
	return footerStyle.Render(footer)
}
