package estimator

import (
	"fmt"
	"math"
)

// multipliers holds the ten leading-digit multipliers of the lookup table.
// Index i covers leading digits in [multipliers[i], multipliers[i+1]).
var multipliers = [10]float64{1.0, 1.25, 1.6, 2.0, 2.5, 3.0, 4.0, 5.0, 6.0, 8.0}

// TableBased approximates the geometric mean with a ten-entry lookup
// table over a scaled integer log representation: a value with z
// trailing magnitudes and table index i encodes as the integer z*10+i.
type TableBased struct{}

// Name implements Method.
func (TableBased) Name() string { return "table" }

// Estimate implements Method. Every value must be >= 1.0.
func (TableBased) Estimate(values []float64) (float64, error) {
	if err := validate(values, true); err != nil {
		return 0, err
	}
	sum := 0
	for _, v := range values {
		sum += encodeTable(v)
	}
	return decodeTable(averageCode(sum, len(values))), nil
}

// Worksheet implements Worksheeter.
func (TableBased) Worksheet(values []float64) ([]string, error) {
	if err := validate(values, true); err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(values)+2)
	sum := 0
	for _, v := range values {
		code := encodeTable(v)
		sum += code
		lines = append(lines, fmt.Sprintf("%s → %s", formatValue(v), formatCode(code)))
	}
	code := averageCode(sum, len(values))
	lines = append(lines, fmt.Sprintf("average of codes (rounded up): %s", formatCode(code)))
	lines = append(lines, fmt.Sprintf("%s → %s", formatCode(code), formatValue(decodeTable(code))))
	return lines, nil
}

// averageCode divides the summed codes with a ceiling bias: when the
// average lands between two codes the estimate moves to the next table
// entry rather than the nearest one.
func averageCode(sum, n int) int {
	return (sum + n - 1) / n
}

func encodeTable(v float64) int {
	zeros := int(math.Floor(math.Log10(v)))
	leading := v / math.Pow(10, float64(zeros))
	// Log10 is not exact at powers of ten; renormalize the leading
	// digit into [1, 10).
	if leading >= 10 {
		zeros++
		leading /= 10
	} else if leading < 1 {
		zeros--
		leading *= 10
	}
	idx := 0
	for i := len(multipliers) - 1; i >= 0; i-- {
		if leading >= multipliers[i] {
			idx = i
			break
		}
	}
	return zeros*10 + idx
}

func decodeTable(code int) float64 {
	return multipliers[code%10] * math.Pow(10, float64(code/10))
}

func formatCode(code int) string {
	return fmt.Sprintf("%d.%d", code/10, code%10)
}
