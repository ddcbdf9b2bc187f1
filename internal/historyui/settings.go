package historyui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pwmeter/internal/model"
)

const dateLayout = "2006-01-02"

type settingsField struct {
	input textinput.Model
	parse func(value string, cfg *model.HistoryConfig) error
}

type settingsForm struct {
	fields []settingsField
	active int
	err    string
}

func newSettingsForm(cfg model.HistoryConfig, width int) *settingsForm {
	since := ""
	if cfg.Since != nil {
		since = cfg.Since.Format(dateLayout)
	}
	last := ""
	if cfg.Last > 0 {
		last = strconv.Itoa(cfg.Last)
	}
	f := &settingsForm{fields: []settingsField{
		{input: newSettingsInput("Since (YYYY-MM-DD): ", since), parse: parseSince},
		{input: newSettingsInput("Last: ", last), parse: parseLast},
		{input: newSettingsInput("Curve window: ", strconv.Itoa(cfg.CurveWindow)), parse: parseWindow},
	}}
	f.setWidth(width)
	return f
}

func newSettingsInput(prompt, value string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Cursor.SetMode(cursor.CursorBlink)
	input.SetValue(value)
	return input
}

func (f *settingsForm) setWidth(width int) {
	for i := range f.fields {
		f.fields[i].input.Width = maxInt(10, width-lipgloss.Width(f.fields[i].input.Prompt)-2)
	}
}

// focus moves focus to field i, wrapping around.
func (f *settingsForm) focus(i int) tea.Cmd {
	n := len(f.fields)
	f.active = (i%n + n) % n
	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.active {
			cmd = f.fields[j].input.Focus()
			continue
		}
		f.fields[j].input.Blur()
	}
	return cmd
}

func (f *settingsForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.active].input, cmd = f.fields[f.active].input.Update(msg)
	return cmd
}

// apply parses every field over a copy of base. base is left untouched on error.
func (f *settingsForm) apply(base model.HistoryConfig) (model.HistoryConfig, error) {
	cfg := base
	for _, field := range f.fields {
		if err := field.parse(strings.TrimSpace(field.input.Value()), &cfg); err != nil {
			return base, err
		}
	}
	return cfg, nil
}

func (f *settingsForm) view() string {
	lines := []string{"Settings (enter to apply, esc to cancel)"}
	for _, field := range f.fields {
		lines = append(lines, field.input.View())
	}
	if f.err != "" {
		lines = append(lines, errorStyle.Render(f.err))
	}
	return strings.Join(lines, "\n")
}

func parseSince(value string, cfg *model.HistoryConfig) error {
	if value == "" {
		cfg.Since = nil
		return nil
	}
	parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
	}
	cfg.Since = &parsed
	return nil
}

func parseLast(value string, cfg *model.HistoryConfig) error {
	if value == "" {
		cfg.Last = 0
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid last value (use 0 or positive integer)")
	}
	cfg.Last = n
	return nil
}

func parseWindow(value string, cfg *model.HistoryConfig) error {
	if value == "" {
		cfg.CurveWindow = 1
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid curve window (use integer >= 1)")
	}
	cfg.CurveWindow = n
	return nil
}
