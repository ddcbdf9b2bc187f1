// Package historyui is the interactive browser for saved analyses.
package historyui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/store"
)

type tab int

const (
	tabOverview tab = iota
	tabEntries
)

var tabNames = [...]string{"Overview", "Entries"}

const windowStep = 5

// Model implements tea.Model for the history browser.
type Model struct {
	store *store.Store
	cfg   model.HistoryConfig

	entries []model.HistoryEntry
	loadErr error

	tab      tab
	overview viewport.Model
	table    table.Model
	settings *settingsForm

	width  int
	height int
}

// NewModel loads entries matching cfg from st.
func NewModel(st *store.Store, cfg model.HistoryConfig) *Model {
	if cfg.CurveWindow < 1 {
		cfg.CurveWindow = 1
	}
	m := &Model{
		store:    st,
		cfg:      cfg,
		overview: viewport.New(0, 0),
		table:    newEntriesTable(nil, 1),
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.redrawOverview()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.settings != nil {
			return m, m.updateSettings(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "right", "l", "tab":
		m.switchTab(1)
		return m, tea.ClearScreen
	case "left", "h", "shift+tab":
		m.switchTab(-1)
		return m, tea.ClearScreen
	case "=":
		m.cfg.CurveWindow = stepWindow(m.cfg.CurveWindow, 1)
		m.redrawOverview()
	case "-":
		m.cfg.CurveWindow = stepWindow(m.cfg.CurveWindow, -1)
		m.redrawOverview()
	case "s":
		m.cfg.Source = nextSource(m.cfg.Source)
		m.reload()
	case "/":
		return m, m.openSettings()
	case "g", "home":
		if m.tab == tabEntries {
			m.table.GotoTop()
		} else {
			m.overview.GotoTop()
		}
	case "G", "end":
		if m.tab == tabEntries {
			m.table.GotoBottom()
		} else {
			m.overview.GotoBottom()
		}
	default:
		var cmd tea.Cmd
		if m.tab == tabEntries {
			m.table, cmd = m.table.Update(msg)
		} else {
			m.overview, cmd = m.overview.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) switchTab(delta int) {
	n := len(tabNames)
	m.tab = tab((int(m.tab) + delta + n) % n)
	if m.tab == tabEntries {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) reload() {
	entries, err := m.store.ListEntries(context.Background(), m.cfg)
	m.loadErr = err
	m.entries = entries
	if err != nil {
		m.entries = nil
	}
	m.table = newEntriesTable(m.entries, maxInt(1, m.bodyHeight()-1))
	if m.width > 0 {
		m.table.SetWidth(m.width)
	}
	if m.tab == tabEntries {
		m.table.Focus()
	}
	m.redrawOverview()
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	body := m.bodyHeight()
	m.overview.Width = m.width
	m.overview.Height = body
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, body-1))
	if m.settings != nil {
		m.settings.setWidth(m.width)
	}
}

func (m *Model) redrawOverview() {
	if m.loadErr != nil {
		m.overview.SetContent("Failed to load history.")
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(overviewContent(m.entries, m.cfg.CurveWindow, width))
}

func (m *Model) openSettings() tea.Cmd {
	m.settings = newSettingsForm(m.cfg, m.width)
	return m.settings.focus(0)
}

func (m *Model) updateSettings(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.settings = nil
		return nil
	case tea.KeyEnter:
		cfg, err := m.settings.apply(m.cfg)
		if err != nil {
			m.settings.err = err.Error()
			return nil
		}
		m.cfg = cfg
		m.settings = nil
		m.reload()
		m.resize()
		return nil
	case tea.KeyTab, tea.KeyDown:
		return m.settings.focus(m.settings.active + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.settings.focus(m.settings.active - 1)
	}
	return m.settings.update(msg)
}

// stepWindow moves the moving-average window to the next multiple of
// windowStep in direction dir, never below 1.
func stepWindow(n, dir int) int {
	if dir > 0 {
		return (n/windowStep + 1) * windowStep
	}
	if n <= windowStep {
		return 1
	}
	if n%windowStep == 0 {
		return n - windowStep
	}
	return n / windowStep * windowStep
}

func nextSource(s model.Source) model.Source {
	switch s {
	case "":
		return model.SourceTyped
	case model.SourceTyped:
		return model.SourceGenerated
	default:
		return ""
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
