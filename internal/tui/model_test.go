package tui

import (
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/feedback"
	"github.com/verte-zerg/pwmeter/internal/generator"
	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/store"
)

func newTestModel(t *testing.T, st *store.Store) *Model {
	t.Helper()
	gen := generator.NewWithSource(rand.NewSource(1))
	return NewModel(model.Config{}, analyzer.New(), gen, st)
}

func typeRunes(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, nil)
	out := m.View()
	for _, want := range []string{"Score: 0/100", "Weak", "Start typing", "Instantly", "0 characters"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestTypingReanalyzes(t *testing.T) {
	m := newTestModel(t, nil)
	typeRunes(m, "abc")
	r := m.Result()
	if r.Length != 3 || !r.HasSequence {
		t.Fatalf("unexpected result after typing: %+v", r)
	}
	if !strings.Contains(m.hint, "sequential") {
		t.Fatalf("unexpected hint %q", m.hint)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Result().Length != 2 {
		t.Fatalf("expected backspace to shrink input, got %d", m.Result().Length)
	}
}

func TestGenerateRevealsAndAnalyzes(t *testing.T) {
	m := newTestModel(t, nil)
	if m.input.EchoMode != textinput.EchoPassword {
		t.Fatalf("expected masked input by default")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	r := m.Result()
	if r.Length != generator.Length {
		t.Fatalf("expected generated length %d, got %d", generator.Length, r.Length)
	}
	if !r.HasUpper || !r.HasLower || !r.HasNumbers || !r.HasSpecial {
		t.Fatalf("expected all classes after generate: %+v", r)
	}
	if m.input.EchoMode != textinput.EchoNormal {
		t.Fatalf("expected input revealed after generate")
	}
	if m.hint != feedback.GeneratedHint || m.source != model.SourceGenerated {
		t.Fatalf("unexpected hint/source: %q %s", m.hint, m.source)
	}
}

func TestToggleReveal(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.input.EchoMode != textinput.EchoNormal {
		t.Fatalf("expected revealed input")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.input.EchoMode != textinput.EchoPassword {
		t.Fatalf("expected masked input")
	}
}

func TestCopy(t *testing.T) {
	m := newTestModel(t, nil)
	var copied string
	m.copyFunc = func(s string) error {
		copied = s
		return nil
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "Nothing to copy" {
		t.Fatalf("unexpected status %q", m.status)
	}
	typeRunes(m, "hunter2")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "hunter2" {
		t.Fatalf("expected hunter2 copied, got %q", copied)
	}

	m.copyFunc = func(string) error { return errors.New("no clipboard") }
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.status, "no clipboard") {
		t.Fatalf("expected copy error in status, got %q", m.status)
	}
}

func TestSaveWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	typeRunes(m, "abc")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "History is disabled" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestSaveWithStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	m := newTestModel(t, st)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "Nothing to save" {
		t.Fatalf("unexpected status %q", m.status)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.hasSummary || m.summary.Count != 1 {
		t.Fatalf("expected one saved entry, got %+v", m.summary)
	}
	if !strings.Contains(m.renderFooter(), "History 1 saved") {
		t.Fatalf("footer missing history totals: %s", m.renderFooter())
	}
}

func TestRenderChecklist(t *testing.T) {
	out := renderChecklist(feedback.Requirements(analyzer.Analyze("abcdefgh")))
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 checklist lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "8/8") {
		t.Fatalf("expected length value in first line: %q", lines[0])
	}
}
