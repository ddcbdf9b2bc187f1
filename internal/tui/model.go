// Package tui provides the Bubble Tea password meter interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/feedback"
	"github.com/verte-zerg/pwmeter/internal/generator"
	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/store"
)

// Model implements the Bubble Tea meter UI.
type Model struct {
	config   model.Config
	analyzer *analyzer.Analyzer
	gen      *generator.Generator
	store    *store.Store
	copyFunc func(string) error

	input    textinput.Model
	revealed bool

	result   analyzer.Result
	estimate analyzer.Estimate
	source   model.Source
	hint     string
	status   string

	summary    model.HistorySummary
	hasSummary bool

	width  int
	height int
}

// NewModel constructs a meter TUI model. st may be nil when history is disabled.
func NewModel(cfg model.Config, a *analyzer.Analyzer, gen *generator.Generator, st *store.Store) *Model {
	input := textinput.New()
	input.Prompt = "Password: "
	input.Placeholder = "start typing"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()

	m := &Model{
		config:   cfg,
		analyzer: a,
		gen:      gen,
		store:    st,
		copyFunc: clipboard.WriteAll,
		input:    input,
		source:   model.SourceTyped,
	}
	m.setRevealed(cfg.Reveal)
	m.analyze()
	m.loadSummary()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = maxInt(10, msg.Width-len(m.input.Prompt)-4)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.setRevealed(!m.revealed)
			return m, nil
		case tea.KeyCtrlG:
			m.generate()
			return m, nil
		case tea.KeyCtrlY:
			m.copyPassword()
			return m, nil
		case tea.KeyCtrlS:
			m.save()
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.source = model.SourceTyped
			m.status = ""
			m.analyze()
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.render()
}

// Result returns the analysis of the current input.
func (m *Model) Result() analyzer.Result {
	return m.result
}

func (m *Model) analyze() {
	pw := m.input.Value()
	m.result = m.analyzer.Analyze(pw)
	m.estimate = analyzer.EstimateStrength(pw, nil)
	m.hint = feedback.Hint(m.result)
}

func (m *Model) setRevealed(revealed bool) {
	m.revealed = revealed
	if revealed {
		m.input.EchoMode = textinput.EchoNormal
		return
	}
	m.input.EchoMode = textinput.EchoPassword
	m.input.EchoCharacter = '•'
}

func (m *Model) generate() {
	pw := m.gen.Generate()
	m.input.SetValue(pw)
	m.input.CursorEnd()
	m.setRevealed(true)
	m.source = model.SourceGenerated
	m.status = ""
	m.analyze()
	m.hint = feedback.GeneratedHint
}

func (m *Model) copyPassword() {
	pw := m.input.Value()
	if pw == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := m.copyFunc(pw); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied to clipboard"
}

func (m *Model) save() {
	if m.store == nil {
		m.status = "History is disabled"
		return
	}
	if m.result.Length == 0 {
		m.status = "Nothing to save"
		return
	}
	entry := store.EntryFromResult(m.result, m.source, time.Now())
	if _, err := m.store.InsertEntry(context.Background(), entry); err != nil {
		logErrf("failed to save analysis: %v\n", err)
		m.status = "Save failed"
		return
	}
	m.status = "Saved metrics to history"
	m.loadSummary()
}

func (m *Model) loadSummary() {
	if m.store == nil {
		return
	}
	sum, err := m.store.Summary(context.Background())
	if err != nil {
		logErrf("failed to load history summary: %v\n", err)
		return
	}
	m.summary = sum
	m.hasSummary = true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
