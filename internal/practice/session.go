package practice

import (
	"fmt"
	"math"
	"time"

	"github.com/verte-zerg/guesstimate/internal/estimator"
	"github.com/verte-zerg/guesstimate/internal/trivia"
)

// Session is a drill in its ready state: it owns only the randomness
// source and the clock. Start consumes it.
type Session struct {
	method   estimator.Method
	src      trivia.Source
	clock    Clock
	consumed bool
}

// NewSession builds a ready session around an estimation method, a
// randomness source, and a clock. Neither is shared across sessions.
func NewSession(method estimator.Method, src trivia.Source, clock Clock) *Session {
	return &Session{method: method, src: src, clock: clock}
}

// ActiveSession is a started drill awaiting the user's answer. Submit
// consumes it.
type ActiveSession struct {
	clock     Clock
	exactMean float64
	estimate  float64
	guesses   []uint64
	startedAt time.Time
	consumed  bool
}

// Result is the terminal, immutable record of a drill.
type Result struct {
	UserAnswer uint64
	ExactMean  float64
	Estimate   uint64
	Guesses    []uint64
	Elapsed    time.Duration
	Verdict    Verdict
}

// Start draws a problem and begins timing. It picks a true answer
// log-uniformly in [MinAnswer, MaxAnswer), samples TeamSize guesses
// around it, and computes both the exact geometric mean and the
// method's estimate over the guesses. Internal estimator or
// distribution failures are reported as ErrInvalidAnswerRange with the
// cause wrapped. The ready session cannot be started twice.
func (s *Session) Start(cfg Config) ([]uint64, *ActiveSession, error) {
	if s.consumed {
		return nil, nil, ErrSessionConsumed
	}
	s.consumed = true

	lnMin := math.Log(float64(cfg.MinAnswer))
	lnMax := math.Log(float64(cfg.MaxAnswer))
	answer := uint64(math.Exp(lnMin + s.src.Float64()*(lnMax-lnMin)))

	dist, err := trivia.New(answer, cfg.LogStdDev)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAnswerRange, err)
	}

	guesses := make([]uint64, cfg.TeamSize)
	values := make([]float64, cfg.TeamSize)
	for i := range guesses {
		guesses[i] = dist.Sample(s.src)
		values[i] = float64(guesses[i])
	}

	exactMean, err := estimator.Exact{}.Estimate(values)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAnswerRange, err)
	}
	estimate, err := s.method.Estimate(values)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAnswerRange, err)
	}

	active := &ActiveSession{
		clock:     s.clock,
		exactMean: exactMean,
		estimate:  estimate,
		guesses:   guesses,
		startedAt: s.clock.Now(),
	}
	return guesses, active, nil
}

// Submit stops the clock, classifies the answer, and produces the
// terminal result. The active session cannot be submitted twice.
func (a *ActiveSession) Submit(userAnswer uint64) (Result, error) {
	if a.consumed {
		return Result{}, ErrSessionConsumed
	}
	a.consumed = true
	elapsed := a.clock.Now().Sub(a.startedAt)
	return Result{
		UserAnswer: userAnswer,
		ExactMean:  a.exactMean,
		Estimate:   uint64(a.estimate),
		Guesses:    a.guesses,
		Elapsed:    elapsed,
		Verdict:    EvaluateAnswer(userAnswer, a.exactMean, a.estimate),
	}, nil
}
