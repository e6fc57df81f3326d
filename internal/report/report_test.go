package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/guesstimate/internal/evaluation"
	"github.com/verte-zerg/guesstimate/internal/practice"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		n        uint64
		expected string
	}{
		{5, "5"},
		{999, "999"},
		{1234, "1,234"},
		{1_000_000_000, "1,000,000,000"},
	}
	for _, tc := range cases {
		if got := FormatCount(tc.n); got != tc.expected {
			t.Fatalf("FormatCount(%d): expected %q, got %q", tc.n, tc.expected, got)
		}
	}
}

func TestRenderGuesses(t *testing.T) {
	var b strings.Builder
	if err := RenderGuesses(&b, []uint64{150, 2500, 800, 45}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "Here are the team's guesses:\n" +
		"  1. 150\n" +
		"  2. 2,500\n" +
		"  3. 800\n" +
		"  4. 45\n"
	if b.String() != expected {
		t.Fatalf("unexpected output:\n%q", b.String())
	}
}

func TestRenderResult(t *testing.T) {
	var b strings.Builder
	res := practice.Result{
		UserAnswer: 1250,
		ExactMean:  1243.1,
		Estimate:   1250,
		Guesses:    []uint64{3600, 920, 700},
		Elapsed:    12300 * time.Millisecond,
		Verdict:    practice.Correct,
	}
	if err := RenderResult(&b, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "Results:\n" +
		"========\n" +
		"Your answer: 1,250\n" +
		"Exact geometric mean: 1243.1\n" +
		"Estimation method result: 1,250\n" +
		"Time taken: 12.3 seconds\n" +
		"✓ CORRECT! You calculated the estimation method properly.\n"
	if b.String() != expected {
		t.Fatalf("unexpected output:\n%q", b.String())
	}
}

func TestVerdictLine(t *testing.T) {
	if !strings.Contains(VerdictLine(practice.Correct), "CORRECT") {
		t.Fatalf("unexpected correct line: %q", VerdictLine(practice.Correct))
	}
	if !strings.Contains(VerdictLine(practice.Excellent), "EXCELLENT") {
		t.Fatalf("unexpected excellent line: %q", VerdictLine(practice.Excellent))
	}
	if !strings.Contains(VerdictLine(practice.Incorrect), "incorrectly") {
		t.Fatalf("unexpected incorrect line: %q", VerdictLine(practice.Incorrect))
	}
}

func TestRenderRunResults(t *testing.T) {
	var b strings.Builder
	rows := []RunRow{
		{
			Method: "table",
			Results: evaluation.Results{
				MeanAbsRelError:       0.125,
				WorstCaseError:        0.25,
				WorstCaseOverestimate: 0.2,
				OverallBias:           -0.01,
				TotalTests:            100,
			},
		},
	}
	if err := RenderRunResults(&b, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Method", "Mean |err|", "table", "12.50%", "25.00%", "20.00%", "-1.00%", "100"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRunResultsNaN(t *testing.T) {
	var b strings.Builder
	rows := []RunRow{
		{
			Method: "rejecting",
			Results: evaluation.Results{
				MeanAbsRelError:       math.NaN(),
				WorstCaseError:        math.NaN(),
				WorstCaseOverestimate: math.NaN(),
				OverallBias:           math.NaN(),
			},
		},
	}
	if err := RenderRunResults(&b, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "n/a") {
		t.Fatalf("expected n/a for NaN statistics:\n%s", b.String())
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(0.045); got != "4.50%" {
		t.Fatalf("expected 4.50%%, got %q", got)
	}
	if got := formatPercent(math.NaN()); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
}
