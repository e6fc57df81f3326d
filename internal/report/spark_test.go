package report

import "testing"

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0.0, 0.5, 1.0}, 2)
	if len(bins) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(bins))
	}
	if bins[0] != 1 || bins[1] != 2 {
		t.Fatalf("unexpected bins: %v", bins)
	}
}

func TestHistogramDegenerate(t *testing.T) {
	if bins := Histogram(nil, 4); bins != nil {
		t.Fatalf("expected nil for empty values, got %v", bins)
	}
	if bins := Histogram([]float64{1, 2}, 0); bins != nil {
		t.Fatalf("expected nil for zero buckets, got %v", bins)
	}
	bins := Histogram([]float64{3, 3, 3}, 4)
	if bins[0] != 3 {
		t.Fatalf("expected all values in the first bin, got %v", bins)
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestSparklineConstant(t *testing.T) {
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("expected mid-level run, got %q", got)
	}
}

func TestSparklineRamp(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := Sparkline(values); got != sparkChars {
		t.Fatalf("expected %q, got %q", sparkChars, got)
	}
}

func TestTerminalWidthPositive(t *testing.T) {
	if w := TerminalWidth(); w <= 0 {
		t.Fatalf("expected a positive width, got %d", w)
	}
}
