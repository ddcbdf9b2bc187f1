package historyui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/chart"
	"github.com/verte-zerg/pwmeter/internal/feedback"
	"github.com/verte-zerg/pwmeter/internal/model"
)

const (
	plotHeight     = 10
	trendPoints    = 20
	breakdownWidth = 30
	wideLayout     = 80
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true)
	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTabStyle = tabStyle.
				Foreground(lipgloss.Color("#B0B0B0")).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

var tiers = []analyzer.Strength{
	analyzer.StrengthWeak,
	analyzer.StrengthFair,
	analyzer.StrengthGood,
	analyzer.StrengthStrong,
	analyzer.StrengthVeryStrong,
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs() + "\n" + mutedStyle.Render(m.status())
	body := m.renderBody()
	footer := m.renderFooter()
	return strings.Join([]string{
		frame(header, m.width, m.headerHeight()),
		frame(body, m.width, m.bodyHeight()),
		frame(footer, m.width, m.footerHeight()),
	}, "\n")
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(activeTabStyle.Render(tabNames[0])) + 1
}

func (m *Model) footerHeight() int {
	if m.settings == nil && m.loadErr != nil {
		return 2
	}
	return 1
}

func (m *Model) bodyHeight() int {
	return maxInt(1, m.height-m.headerHeight()-m.footerHeight())
}

func (m *Model) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) status() string {
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format(dateLayout)
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	source := "all"
	if m.cfg.Source != "" {
		source = string(m.cfg.Source)
	}
	return fmt.Sprintf("since=%s  last=%s  source=%s  window=%d  entries=%d",
		since, last, source, m.cfg.CurveWindow, len(m.entries))
}

func (m *Model) renderFooter() string {
	if m.settings != nil {
		return mutedStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	help := mutedStyle.Render("Tabs: left/right  Scroll: up/down  Window: -/=  Source: s  Settings: /  Quit: q")
	if m.loadErr != nil {
		return help + "\n" + errorStyle.Render(m.loadErr.Error())
	}
	return help
}

func (m *Model) renderBody() string {
	switch {
	case m.settings != nil:
		return m.settings.view()
	case m.tab == tabEntries && len(m.entries) == 0:
		return "No history found."
	case m.tab == tabEntries:
		return tableStyle.Render(m.table.View())
	default:
		return m.overview.View()
	}
}

func overviewContent(entries []model.HistoryEntry, window, width int) string {
	if len(entries) == 0 {
		return "No history found."
	}
	sections := []string{summaryCards(entries, width), strengthBreakdown(entries)}
	var buf bytes.Buffer
	if err := chart.RenderScoreCurve(&buf, entries, window, width, plotHeight, true); err != nil {
		sections = append(sections, fmt.Sprintf("Failed to render curve: %v", err))
	} else {
		sections = append(sections, strings.TrimRight(buf.String(), "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func summaryCards(entries []model.HistoryEntry, width int) string {
	var scoreSum, entropySum float64
	best, generated, flagged := 0, 0, 0
	scores := make([]float64, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, float64(e.Score))
		scoreSum += float64(e.Score)
		entropySum += float64(e.Entropy)
		best = maxInt(best, e.Score)
		if e.Source == model.SourceGenerated {
			generated++
		}
		if e.HasSequence || e.IsCommon {
			flagged++
		}
	}
	n := float64(len(entries))
	cards := []string{
		card("Entries", strconv.Itoa(len(entries))),
		card("Avg Score", fmt.Sprintf("%.1f", scoreSum/n)),
		card("Best Score", strconv.Itoa(best)),
		card("Avg Entropy", fmt.Sprintf("%.1f bits", entropySum/n)),
		card("Generated", strconv.Itoa(generated)),
		card("Flagged", strconv.Itoa(flagged)),
		card("Trend", "["+chart.Sparkline(scores[maxInt(0, len(scores)-trendPoints):])+"]"),
	}
	if width < wideLayout {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...),
	)
}

func card(label, value string) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

// strengthBreakdown draws one bar per tier sized by how many entries reached it.
func strengthBreakdown(entries []model.HistoryEntry) string {
	counts := make(map[string]int, len(tiers))
	for _, e := range entries {
		counts[e.Strength]++
	}
	slices := make([]chart.Slice, 0, len(tiers))
	for _, t := range tiers {
		slices = append(slices, chart.Slice{
			Label: feedback.Label(t),
			Count: counts[string(t)],
			Color: feedback.Color(t),
		})
	}
	paint := func(color, s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
	}
	return "Strength breakdown\n" + chart.CompositionBars(slices, breakdownWidth, paint)
}

func newEntriesTable(entries []model.HistoryEntry, height int) table.Model {
	headers, data := chart.HistoryRows(entries)
	widths := []int{16, 9, 4, 5, 11, 7, 11, 10}
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}
	rows := make([]table.Row, len(data))
	for i, r := range data {
		rows[i] = table.Row(r)
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1, 0, 0)
	styles.Cell = styles.Cell.Padding(0, 1, 0, 0)
	styles.Selected = styles.Cell.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	t.SetStyles(styles)
	return t
}

// frame clips s to width x height and pads it to fill the area.
func frame(s string, width, height int) string {
	clipped := lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(s)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, clipped)
}
