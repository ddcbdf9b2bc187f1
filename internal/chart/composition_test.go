package chart

import (
	"strings"
	"testing"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
)

func TestCompositionBars(t *testing.T) {
	slices := CompositionSlices(analyzer.Counts{Upper: 2, Lower: 4, Numbers: 1, Special: 0})
	out := CompositionBars(slices, 8, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Lowercase "+strings.Repeat(barFull, 8)) {
		t.Fatalf("expected full bar for largest slice: %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "Uppercase "+strings.Repeat(barFull, 4)+strings.Repeat(barEmpty, 4)) {
		t.Fatalf("expected half bar for uppercase: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " 4 (57%)") {
		t.Fatalf("expected count and share suffix: %q", lines[1])
	}
	if !strings.Contains(lines[2], barFull) {
		t.Fatalf("expected non-zero slice to show at least one cell: %q", lines[2])
	}
	if strings.Contains(lines[3], barFull) || !strings.HasSuffix(lines[3], " 0 (0%)") {
		t.Fatalf("expected empty bar for zero slice: %q", lines[3])
	}
}

func TestCompositionBarsEmpty(t *testing.T) {
	out := CompositionBars(CompositionSlices(analyzer.Counts{}), 4, nil)
	if strings.Contains(out, barFull) {
		t.Fatalf("expected no filled cells for empty counts")
	}
}

func TestShares(t *testing.T) {
	shares := Shares(CompositionSlices(analyzer.Counts{Upper: 1, Lower: 3}))
	if shares[0] != 25 || shares[1] != 75 || shares[2] != 0 {
		t.Fatalf("unexpected shares: %v", shares)
	}
	zero := Shares(CompositionSlices(analyzer.Counts{}))
	for _, v := range zero {
		if v != 0 {
			t.Fatalf("expected zero shares, got %v", zero)
		}
	}
}
