package parcount

import "math"

// Predicate is a pure element test. Implementations must be side-effect
// free and safe to call concurrently from many workers without
// synchronization; the counters treat the predicate's cost as opaque.
type Predicate func(x int) bool

// NamedPredicate pairs a predicate with the label used in reports.
type NamedPredicate struct {
	Name string
	Test Predicate
}

// LightPredicate is the cheap bitwise test: true for even values.
func LightPredicate(x int) bool {
	return x&1 == 0
}

// HeavyPredicate is the expensive variant: a 12-iteration floating-point
// accumulation whose truncated sum decides parity. The work is deliberately
// pointless; all that matters is that each call burns a fixed amount of CPU.
func HeavyPredicate(x int) bool {
	var s float64
	for i := 0; i < 12; i++ {
		s += math.Sqrt(float64(x + i))
	}
	return int64(s)&1 == 1
}

// Predicates returns the fixed benchmark set: one light, one heavy.
func Predicates() []NamedPredicate {
	return []NamedPredicate{
		{Name: "light", Test: LightPredicate},
		{Name: "heavy", Test: HeavyPredicate},
	}
}
