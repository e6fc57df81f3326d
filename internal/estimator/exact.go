package estimator

import "gonum.org/v1/gonum/stat"

// Exact computes the true geometric mean via the log-sum identity
// exp(mean(ln v)). It serves as ground truth for the approximations.
type Exact struct{}

// Name implements Method.
func (Exact) Name() string { return "exact" }

// Estimate implements Method.
func (Exact) Estimate(values []float64) (float64, error) {
	if err := validate(values, false); err != nil {
		return 0, err
	}
	return stat.GeometricMean(values, nil), nil
}
