// Package estimator implements geometric-mean estimation methods.
package estimator

import "errors"

// Method computes a geometric-mean estimate for a sample of values.
type Method interface {
	// Estimate returns a positive, finite estimate for the values.
	Estimate(values []float64) (float64, error)
	// Name identifies the method in CLI output.
	Name() string
}

// Worksheeter is implemented by methods that can show their
// pen-and-paper working line by line.
type Worksheeter interface {
	Worksheet(values []float64) ([]string, error)
}

var (
	// ErrEmptyInput is returned when no values are supplied.
	ErrEmptyInput = errors.New("cannot calculate geometric mean of empty input")
	// ErrNonPositiveValue is returned when any value is zero or negative.
	ErrNonPositiveValue = errors.New("geometric mean requires all positive values")
	// ErrValueTooSmall is returned by the pen-and-paper methods for values below 1.
	ErrValueTooSmall = errors.New("values must be >= 1.0 for this pen-and-paper method")
)

func validate(values []float64, requireGeOne bool) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for _, v := range values {
		if v <= 0 {
			return ErrNonPositiveValue
		}
		if requireGeOne && v < 1.0 {
			return ErrValueTooSmall
		}
	}
	return nil
}
