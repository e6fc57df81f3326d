package practice

import "time"

// Clock supplies the current instant. The indirection exists so tests
// can drive elapsed-time calculations deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
