package trivia

import "math"

// maxMagnitude is the largest power of ten that fits a uint64 guess;
// anything above saturates to MaxUint64.
const maxMagnitude = 18

// Round snaps a raw positive value onto the trivia grid. The step size
// depends on the leading digit of the value's magnitude bracket:
//
//	1:   0.05 increments of the leading digit (100, 105, 110, ...)
//	2-4: two significant digits (200, 210, 220, ...)
//	5-9: half-steps (500, 550, 600, ...)
//
// The bracketing pair is derived arithmetically from the step size, so
// no search over candidates is performed. Ties in log distance prefer
// the lower candidate.
func Round(raw float64) uint64 {
	if raw <= 1.0 {
		return 1
	}
	magnitude := int(math.Floor(math.Log10(raw)))
	if magnitude < 0 {
		return 1
	}
	if magnitude > maxMagnitude {
		return math.MaxUint64
	}
	power := pow10(magnitude)
	firstDigit := uint64(raw / float64(power))

	var base, step uint64
	switch {
	case firstDigit == 1:
		base = power
		step = power / 20
	case firstDigit <= 4:
		base = firstDigit * power
		step = power / 10
	default:
		base = firstDigit * power
		step = power / 2
	}

	low, high := bracket(raw, base, step)
	return closestInLogSpace(raw, low, high)
}

// bracket finds the two consecutive grid values around the target.
// Because ln is monotonic, a pair bracketing the target linearly also
// brackets it logarithmically.
func bracket(target float64, base, step uint64) (uint64, uint64) {
	if step == 0 {
		return base, base
	}
	offset := target - float64(base)
	var k uint64
	if offset > 0 {
		k = uint64(offset / float64(step))
	}
	low := satAdd(base, satMul(k, step))
	high := satAdd(base, satMul(k+1, step))
	return low, high
}

func closestInLogSpace(target float64, low, high uint64) uint64 {
	if low == 0 || high == 0 {
		if low > 0 {
			return low
		}
		return high
	}
	lnTarget := math.Log(target)
	distLow := math.Abs(lnTarget - math.Log(float64(low)))
	distHigh := math.Abs(lnTarget - math.Log(float64(high)))
	if distLow <= distHigh {
		return low
	}
	return high
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func satMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}

func pow10(exp int) uint64 {
	p := uint64(1)
	for i := 0; i < exp; i++ {
		p *= 10
	}
	return p
}
