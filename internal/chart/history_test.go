package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/pwmeter/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 100}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}); len(got) != 3 {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
}

func TestRenderHistoryTable(t *testing.T) {
	entries := []model.HistoryEntry{
		{CreatedAt: time.Now().Add(-time.Hour), Source: model.SourceTyped, Length: 3, Score: 1, Strength: "weak", HasSequence: true},
		{CreatedAt: time.Now(), Source: model.SourceGenerated, Length: 16, Score: 80, Strength: "strong"},
	}
	var buf bytes.Buffer
	if err := RenderHistoryTable(&buf, entries); err != nil {
		t.Fatalf("RenderHistoryTable failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "generated") {
		t.Fatalf("expected newest entry first: %q", lines[1])
	}
	if !strings.Contains(lines[2], "seq") {
		t.Fatalf("expected sequence flag: %q", lines[2])
	}
}

func TestRenderHistorySummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistorySummary(&buf, model.HistorySummary{}); err != nil {
		t.Fatalf("RenderHistorySummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No history") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
