// Package practice runs timed estimation drills: generate a team's
// guesses, accept one answer, and classify it against the chosen
// estimation method and the exact geometric mean.
package practice

import "errors"

var (
	// ErrZeroTeamSize is returned for a team size below one.
	ErrZeroTeamSize = errors.New("team size cannot be zero")
	// ErrInvalidAnswerRange is returned for an empty or non-positive
	// answer range, and wraps any internal failure during Start.
	ErrInvalidAnswerRange = errors.New("answer range cannot be empty (min >= max)")
	// ErrSessionConsumed is returned when a session value is advanced twice.
	ErrSessionConsumed = errors.New("practice session already consumed")
)

// Config holds validated practice settings. Construct with NewConfig;
// a Config built by hand bypasses validation and may fail later.
type Config struct {
	TeamSize  int
	LogStdDev float64
	MinAnswer uint64
	MaxAnswer uint64
}

// NewConfig validates the settings once, before any session exists.
func NewConfig(teamSize int, logStdDev float64, minAnswer, maxAnswer uint64) (Config, error) {
	if teamSize <= 0 {
		return Config{}, ErrZeroTeamSize
	}
	if minAnswer == 0 || minAnswer >= maxAnswer {
		return Config{}, ErrInvalidAnswerRange
	}
	return Config{
		TeamSize:  teamSize,
		LogStdDev: logStdDev,
		MinAnswer: minAnswer,
		MaxAnswer: maxAnswer,
	}, nil
}
