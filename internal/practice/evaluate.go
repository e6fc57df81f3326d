package practice

import "math"

// Verdict classifies a submitted answer.
type Verdict int

const (
	// Correct means the answer matches the floor or ceiling of the
	// estimation method's result.
	Correct Verdict = iota
	// Excellent means the answer beats the estimation method: it lies
	// strictly closer to the exact mean than the method's own error.
	Excellent
	// Incorrect means neither criterion holds.
	Incorrect
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Excellent:
		return "excellent"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// EvaluateAnswer classifies a user answer against the exact geometric
// mean and the estimation method's result. A floor/ceil match takes
// precedence over the excellent band, whose boundaries are exclusive
// so a value exactly at the margin is not double-classified.
func EvaluateAnswer(userAnswer uint64, exactMean, estimate float64) Verdict {
	floor := uint64(math.Floor(estimate))
	ceil := uint64(math.Ceil(estimate))
	if userAnswer == floor || userAnswer == ceil {
		return Correct
	}
	margin := math.Abs(estimate - exactMean)
	answer := float64(userAnswer)
	if answer > exactMean-margin && answer < exactMean+margin {
		return Excellent
	}
	return Incorrect
}
