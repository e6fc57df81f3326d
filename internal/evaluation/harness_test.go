package evaluation

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/verte-zerg/guesstimate/internal/estimator"
)

// rejectingMethod fails every trial.
type rejectingMethod struct{}

func (rejectingMethod) Name() string { return "rejecting" }

func (rejectingMethod) Estimate([]float64) (float64, error) {
	return 0, errors.New("rejected")
}

func TestRunExactMethodHasNoError(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	results := Run(rng, estimator.Exact{}, 1.0, 1000.0, 200)
	if results.TotalTests != 200 {
		t.Fatalf("expected 200 valid trials, got %d", results.TotalTests)
	}
	if results.MeanAbsRelError != 0 || results.WorstCaseError != 0 {
		t.Fatalf("expected zero error for the exact method, got %+v", results)
	}
	if results.WorstCaseOverestimate != 0 || results.OverallBias != 0 {
		t.Fatalf("expected zero bias for the exact method, got %+v", results)
	}
}

func TestRunStatisticsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	results := Run(rng, estimator.TableBased{}, 1.0, 1_000_000.0, 500)
	if results.TotalTests <= 0 || results.TotalTests > 500 {
		t.Fatalf("unexpected trial count: %d", results.TotalTests)
	}
	if results.MeanAbsRelError < 0 || results.WorstCaseError < results.MeanAbsRelError {
		t.Fatalf("inconsistent error stats: %+v", results)
	}
	if results.WorstCaseOverestimate < 0 || results.WorstCaseOverestimate > results.WorstCaseError {
		t.Fatalf("inconsistent overestimate: %+v", results)
	}
	if math.Abs(results.OverallBias) > results.WorstCaseError {
		t.Fatalf("bias exceeds worst case: %+v", results)
	}
}

func TestRunDetailedReturnsPerTrialErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	results, absErrs := RunDetailed(rng, estimator.LogLinear{}, 1.0, 1_000_000.0, 300)
	if len(absErrs) != results.TotalTests {
		t.Fatalf("expected %d per-trial errors, got %d", results.TotalTests, len(absErrs))
	}
	worst := 0.0
	for i, e := range absErrs {
		if e < 0 || math.IsNaN(e) {
			t.Fatalf("error %d is invalid: %v", i, e)
		}
		if e > worst {
			worst = e
		}
	}
	if math.Abs(worst-results.WorstCaseError) > 1e-12 {
		t.Fatalf("worst per-trial error %v does not match %v", worst, results.WorstCaseError)
	}
}

func TestRunAllTrialsDiscarded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	results, absErrs := RunDetailed(rng, rejectingMethod{}, 1.0, 1000.0, 50)
	if results.TotalTests != 0 {
		t.Fatalf("expected zero valid trials, got %d", results.TotalTests)
	}
	if len(absErrs) != 0 {
		t.Fatalf("expected no per-trial errors, got %d", len(absErrs))
	}
	if !math.IsNaN(results.MeanAbsRelError) || !math.IsNaN(results.WorstCaseError) {
		t.Fatalf("expected NaN statistics, got %+v", results)
	}
	if !math.IsNaN(results.WorstCaseOverestimate) || !math.IsNaN(results.OverallBias) {
		t.Fatalf("expected NaN statistics, got %+v", results)
	}
}
