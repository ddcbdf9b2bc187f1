package chart

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Class", "Share", "Count"}
	rows := [][]string{
		{"Upper", "12.50%", "2"},
		{"Special", "6.25%", "1"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Class    Share Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Upper   12.50%     2" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Special  6.25%     1" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
