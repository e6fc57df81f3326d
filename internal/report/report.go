// Package report renders practice problems and harness results as text.
package report

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/verte-zerg/guesstimate/internal/evaluation"
	"github.com/verte-zerg/guesstimate/internal/practice"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}

// RenderGuesses prints the team's guesses as a numbered list.
func RenderGuesses(w io.Writer, guesses []uint64) error {
	if _, err := fmt.Fprintln(w, "Here are the team's guesses:"); err != nil {
		return err
	}
	for i, g := range guesses {
		if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, FormatCount(g)); err != nil {
			return err
		}
	}
	return nil
}

// RenderResult prints the verdict block for a finished drill.
func RenderResult(w io.Writer, res practice.Result) error {
	if _, err := fmt.Fprintln(w, "Results:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "========"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Your answer: %s\n", FormatCount(res.UserAnswer)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Exact geometric mean: %.1f\n", res.ExactMean); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Estimation method result: %s\n", FormatCount(res.Estimate)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Time taken: %.1f seconds\n", res.Elapsed.Seconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, VerdictLine(res.Verdict)); err != nil {
		return err
	}
	return nil
}

// VerdictLine returns the one-line message for a verdict.
func VerdictLine(v practice.Verdict) string {
	switch v {
	case practice.Correct:
		return "✓ CORRECT! You calculated the estimation method properly."
	case practice.Excellent:
		return "★ EXCELLENT! Your answer is closer to the exact value than the estimation method!"
	default:
		return "You have calculated the estimation method incorrectly."
	}
}

// RunRow pairs a method name with its harness results for tabulation.
type RunRow struct {
	Method  string
	Results evaluation.Results
}

// RenderRunResults prints a statistics table for one or more harness runs.
func RenderRunResults(w io.Writer, rows []RunRow) error {
	headers := []string{"Method", "Mean |err|", "Worst |err|", "Worst over", "Bias", "Trials"}
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		r := row.Results
		tableRows = append(tableRows, []string{
			row.Method,
			formatPercent(r.MeanAbsRelError),
			formatPercent(r.WorstCaseError),
			formatPercent(r.WorstCaseOverestimate),
			formatPercent(r.OverallBias),
			fmt.Sprintf("%d", r.TotalTests),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatPercent(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", v*100)
}
