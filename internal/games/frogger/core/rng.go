package core

import "time"

// LCG parameters (GCC constants).
const (
	rngModulus    = 1 << 31
	rngMultiplier = 1103515245
	rngIncrement  = 12345
)

// RNG is a linear congruential generator held by value.
// Every operation returns the advanced generator instead of mutating the
// receiver, so a State can carry it without aliasing.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from seed. A zero seed draws one from the clock.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return RNG{state: uint64(seed) % rngModulus}
}

// State returns the raw generator state.
func (r RNG) State() int64 {
	return int64(r.state)
}

// NextInt advances the generator once and returns the produced integer.
func (r RNG) NextInt() (int64, RNG) {
	next := (rngMultiplier*r.state + rngIncrement) % rngModulus
	return int64(next), RNG{state: next}
}

// NextRange returns an integer in [0, max).
// max <= 0 yields 0 and leaves the generator untouched; callers must treat
// that as "nothing to pick".
func (r RNG) NextRange(max int) (int, RNG) {
	if max <= 0 {
		return 0, r
	}
	n, next := r.NextInt()
	v := int(float64(max) * (float64(n) / float64(rngModulus-1)))
	// n can equal m-1, which would land exactly on max
	if v >= max {
		v = max - 1
	}
	return v, next
}

// Next returns a generator seeded with the next produced integer.
func (r RNG) Next() RNG {
	_, next := r.NextInt()
	return next
}
