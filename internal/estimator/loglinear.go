package estimator

import (
	"fmt"
	"math"
)

// LogLinear approximates the geometric mean with the log-linear
// pen-and-paper method: each value is encoded as digit_count.fraction
// (2847 becomes 4.2847, 70 becomes 2.7), the encodings are averaged
// arithmetically, and the average is decoded back once.
type LogLinear struct{}

// Name implements Method.
func (LogLinear) Name() string { return "log-linear" }

// Estimate implements Method. Every value must be >= 1.0.
func (LogLinear) Estimate(values []float64) (float64, error) {
	if err := validate(values, true); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range values {
		sum += encodeLogLinear(v)
	}
	return decodeLogLinear(sum / float64(len(values))), nil
}

// Worksheet implements Worksheeter.
func (LogLinear) Worksheet(values []float64) ([]string, error) {
	if err := validate(values, true); err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(values)+2)
	sum := 0.0
	for _, v := range values {
		code := encodeLogLinear(v)
		sum += code
		lines = append(lines, fmt.Sprintf("%s → %.4g", formatValue(v), code))
	}
	average := sum / float64(len(values))
	lines = append(lines, fmt.Sprintf("average of codes: %.4g", average))
	lines = append(lines, fmt.Sprintf("%.4g → %s", average, formatValue(decodeLogLinear(average))))
	return lines, nil
}

func encodeLogLinear(v float64) float64 {
	digits := math.Floor(math.Log10(v)) + 1
	frac := v / math.Pow(10, digits)
	// Log10 is not exact at powers of ten; renormalize the fraction
	// into [0.1, 1).
	if frac >= 1 {
		digits++
		frac /= 10
	} else if frac < 0.1 {
		digits--
		frac *= 10
	}
	return digits + frac
}

func decodeLogLinear(code float64) float64 {
	digits := math.Floor(code)
	frac := code - digits
	// A fraction below 0.1 would decode to a degenerate near-zero multiplier.
	if frac < 0.1 {
		frac = 0.1
	}
	return frac * math.Pow(10, digits)
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
