// Package evaluation measures estimator accuracy with Monte Carlo trials.
package evaluation

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/verte-zerg/guesstimate/internal/estimator"
	"github.com/verte-zerg/guesstimate/internal/trivia"
)

const (
	minTrialSize = 1
	maxTrialSize = 10
)

// Results aggregates error statistics over the valid trials of a run.
// All errors are relative to the exact geometric mean. A run with zero
// valid trials reports NaN statistics.
type Results struct {
	// MeanAbsRelError is the mean of |est - exact| / exact.
	MeanAbsRelError float64
	// WorstCaseError is the largest absolute relative error seen.
	WorstCaseError float64
	// WorstCaseOverestimate is the largest positive signed error, or 0
	// when no trial ever overestimated.
	WorstCaseOverestimate float64
	// OverallBias is the mean signed error (est - exact) / exact.
	OverallBias float64
	// TotalTests counts the trials that both methods accepted.
	TotalTests int
}

// Run executes numTests random trials against the method. Each trial
// draws a size uniformly in [1, 10] and that many values log-uniformly
// in [min, max]; trials either computation rejects are discarded.
func Run(src trivia.Source, method estimator.Method, min, max float64, numTests int) Results {
	results, _ := RunDetailed(src, method, min, max, numTests)
	return results
}

// RunDetailed is Run plus the per-trial absolute relative errors, in
// trial order, for callers that want to plot the error distribution.
func RunDetailed(src trivia.Source, method estimator.Method, min, max float64, numTests int) (Results, []float64) {
	absErrs := make([]float64, 0, numTests)
	signedErrs := make([]float64, 0, numTests)

	lnMin := math.Log(min)
	lnMax := math.Log(max)
	exact := estimator.Exact{}

	for i := 0; i < numTests; i++ {
		size := minTrialSize + int(src.Float64()*float64(maxTrialSize-minTrialSize+1))
		if size > maxTrialSize {
			size = maxTrialSize
		}
		values := make([]float64, size)
		for j := range values {
			values[j] = math.Exp(lnMin + src.Float64()*(lnMax-lnMin))
		}

		exactResult, err := exact.Estimate(values)
		if err != nil {
			continue
		}
		estimate, err := method.Estimate(values)
		if err != nil {
			continue
		}

		signed := (estimate - exactResult) / exactResult
		signedErrs = append(signedErrs, signed)
		absErrs = append(absErrs, math.Abs(signed))
	}

	if len(absErrs) == 0 {
		return Results{
			MeanAbsRelError:       math.NaN(),
			WorstCaseError:        math.NaN(),
			WorstCaseOverestimate: math.NaN(),
			OverallBias:           math.NaN(),
		}, nil
	}

	// The aggregations only fail on empty input, which is guarded above.
	meanAbs, _ := stats.Mean(absErrs)
	worst, _ := stats.Max(absErrs)
	bias, _ := stats.Mean(signedErrs)
	maxSigned, _ := stats.Max(signedErrs)

	return Results{
		MeanAbsRelError:       meanAbs,
		WorstCaseError:        worst,
		WorstCaseOverestimate: math.Max(0, maxSigned),
		OverallBias:           bias,
		TotalTests:            len(absErrs),
	}, absErrs
}
