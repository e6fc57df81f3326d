package report

import "testing"

func TestFormatTable(t *testing.T) {
	headers := []string{"Method", "Trials"}
	rows := [][]string{
		{"table", "100"},
		{"log-linear", "5"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	expected := []string{
		"Method     Trials",
		"table         100",
		"log-linear      5",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i, line := range expected {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

func TestFormatTableShortRow(t *testing.T) {
	lines := formatTable([]string{"a", "b"}, [][]string{{"only"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "only  " {
		t.Fatalf("expected padded short row, got %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("ab", 4, false); got != "ab  " {
		t.Fatalf("expected left-aligned pad, got %q", got)
	}
	if got := padCell("ab", 4, true); got != "  ab" {
		t.Fatalf("expected right-aligned pad, got %q", got)
	}
	if got := padCell("abcd", 2, true); got != "abcd" {
		t.Fatalf("expected no truncation, got %q", got)
	}
}
