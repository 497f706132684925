package parcount

import (
	"log/slog"
	"sort"
	"time"
)

// CandidateKs builds the worker counts the sweep evaluates: the fixed small
// constants {1,2,4,8,16,32,64} plus every power of two up to twice the
// hardware parallelism, deduplicated and sorted ascending. Brute force on
// purpose — the search space is tiny and re-timing is cheap, so nothing
// smarter than enumeration pays for itself.
func CandidateKs(hardware int) []int {
	if hardware < 1 {
		hardware = 1
	}

	ks := []int{1, 2, 4, 8, 16, 32, 64}
	for k := 2; k <= hardware*2; k *= 2 {
		ks = append(ks, k)
	}

	sort.Ints(ks)
	out := ks[:0]
	for i, k := range ks {
		if i == 0 || k != out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}

// Observation is one evaluated point of the sweep: a worker count, its
// median elapsed time, the count it produced, and whether that count
// disagreed with the sequential baseline.
type Observation struct {
	K        int
	Elapsed  time.Duration
	Count    int64
	Mismatch bool
}

// SweepResult is the full best-K curve for one (workload, predicate) pair,
// discarded after reporting.
type SweepResult struct {
	Observations []Observation
	Best         Observation
	Hardware     int
}

// Ratio is best K over hardware parallelism, the headline number of the
// whole experiment.
func (r SweepResult) Ratio() float64 {
	if r.Hardware == 0 {
		return 0
	}
	return float64(r.Best.K) / float64(r.Hardware)
}

// Violations returns the observations whose count disagreed with the
// baseline.
func (r SweepResult) Violations() []Observation {
	var v []Observation
	for _, o := range r.Observations {
		if o.Mismatch {
			v = append(v, o)
		}
	}
	return v
}

// Sweep evaluates count across every candidate K for a fixed workload and
// predicate. Per K it takes one untimed invocation for the result, then
// times fresh invocations with Measure; the result is checked against the
// sequential baseline and a disagreement is recorded — not fatal, so later
// K values are still evaluated and reported. Best-K tracking is a fold over
// the observations in candidate order: strict less-than, so ties keep the
// earliest-seen K.
func Sweep(data []int, pred Predicate, baseline int64, count CountFunc, ks []int, repeats int, hardware int, log *slog.Logger) SweepResult {
	obs := make([]Observation, 0, len(ks))
	for _, k := range ks {
		res := count(data, pred, k)
		m := Measure(func() { count(data, pred, k) }, repeats)

		o := Observation{
			K:        k,
			Elapsed:  m.Median(),
			Count:    res,
			Mismatch: res != baseline,
		}
		if o.Mismatch {
			log.Warn("count mismatch",
				"k", k,
				"got", res,
				"want", baseline)
		}
		obs = append(obs, o)
	}

	return SweepResult{
		Observations: obs,
		Best:         bestObservation(obs),
		Hardware:     hardware,
	}
}

// bestObservation folds the ordered observations down to the minimum-time
// entry. Strict comparison keeps the first K on ties.
func bestObservation(obs []Observation) Observation {
	var best Observation
	for i, o := range obs {
		if i == 0 || o.Elapsed < best.Elapsed {
			best = o
		}
	}
	return best
}
