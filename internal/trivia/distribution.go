// Package trivia generates realistic human trivia guesses: log-normal
// samples around a true answer, snapped onto the round numbers people
// actually write down.
package trivia

import (
	"errors"
	"math"
)

// Source supplies uniform random numbers in [0, 1). *rand.Rand
// satisfies it; tests substitute deterministic sequences.
type Source interface {
	Float64() float64
}

// MaxLogStdDev bounds the distribution width to keep exp() finite.
const MaxLogStdDev = 50.0

var (
	// ErrInvalidCorrectAnswer is returned when the correct answer is zero.
	ErrInvalidCorrectAnswer = errors.New("correct answer must be greater than 0")
	// ErrInvalidLogStdDev is returned for a negative, NaN, or infinite log std dev.
	ErrInvalidLogStdDev = errors.New("log std dev must be finite and non-negative")
	// ErrLogStdDevTooLarge is returned when the log std dev exceeds MaxLogStdDev.
	ErrLogStdDevTooLarge = errors.New("log std dev must be <= 50.0 to prevent floating point overflow")
)

// Distribution draws guesses clustered log-normally around a correct
// answer. Immutable once constructed; safe to reuse across samples.
type Distribution struct {
	correctAnswer   uint64
	lnCorrectAnswer float64
	logStdDev       float64
}

// New validates the parameters and builds a Distribution. The natural
// log of the correct answer is cached for repeated sampling.
func New(correctAnswer uint64, logStdDev float64) (Distribution, error) {
	if correctAnswer == 0 {
		return Distribution{}, ErrInvalidCorrectAnswer
	}
	if math.IsNaN(logStdDev) || math.IsInf(logStdDev, 0) || logStdDev < 0 {
		return Distribution{}, ErrInvalidLogStdDev
	}
	if logStdDev > MaxLogStdDev {
		return Distribution{}, ErrLogStdDevTooLarge
	}
	return Distribution{
		correctAnswer:   correctAnswer,
		lnCorrectAnswer: math.Log(float64(correctAnswer)),
		logStdDev:       logStdDev,
	}, nil
}

// CorrectAnswer returns the answer the distribution clusters around.
func (d Distribution) CorrectAnswer() uint64 { return d.correctAnswer }

// LogStdDev returns the distribution width in the natural log domain.
func (d Distribution) LogStdDev() float64 { return d.logStdDev }

// Sample draws one rounded guess. With a zero log std dev the sampler
// is skipped entirely and the correct answer is rounded directly, so
// repeated calls return the same value.
func (d Distribution) Sample(src Source) uint64 {
	if d.logStdDev == 0 {
		return Round(float64(d.correctAnswer))
	}
	z := normFloat64(src)
	raw := math.Exp(d.lnCorrectAnswer + d.logStdDev*z)
	return Round(raw)
}

// normFloat64 converts two uniforms into a standard normal deviate via
// the Box-Muller transform.
func normFloat64(src Source) float64 {
	u1 := src.Float64()
	for u1 == 0 {
		u1 = src.Float64()
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
