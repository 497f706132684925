package parcount

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DefaultRepeats is the number of timed invocations per measurement. Odd,
// so the median is a real sample rather than an interpolation.
const DefaultRepeats = 7

// Measurement holds the raw wall-clock samples of repeated invocations of
// one operation. Reducing to the median rather than the mean suppresses the
// isolated slow runs that OS scheduling and cold caches produce.
type Measurement struct {
	Samples []time.Duration
}

// Measure invokes op repeats times and records each wall-clock elapsed
// time. repeats < 1 falls back to DefaultRepeats. Measure has no side
// effects of its own; if op mutates shared state the caller must make that
// safe to repeat (every operation measured here is a read-only count). A
// panicking op propagates uncaught — there is nothing sensible to retry.
func Measure(op func(), repeats int) Measurement {
	if repeats < 1 {
		repeats = DefaultRepeats
	}
	samples := make([]time.Duration, repeats)
	for i := range samples {
		start := time.Now()
		op()
		samples[i] = time.Since(start)
	}
	return Measurement{Samples: samples}
}

// Median returns the middle element of the sorted samples. For odd sample
// counts this is exactly the middle observation; the empirical quantile
// picks the lower middle for even counts.
func (m Measurement) Median() time.Duration {
	if len(m.Samples) == 0 {
		return 0
	}
	sorted := m.seconds()
	return secondsToDuration(stat.Quantile(0.5, stat.Empirical, sorted, nil))
}

// Min returns the fastest sample.
func (m Measurement) Min() time.Duration {
	if len(m.Samples) == 0 {
		return 0
	}
	min := m.Samples[0]
	for _, s := range m.Samples[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Max returns the slowest sample.
func (m Measurement) Max() time.Duration {
	if len(m.Samples) == 0 {
		return 0
	}
	max := m.Samples[0]
	for _, s := range m.Samples[1:] {
		if s > max {
			max = s
		}
	}
	return max
}

// seconds returns the samples as sorted float64 seconds, the form the stat
// and benchmath packages want.
func (m Measurement) seconds() []float64 {
	out := make([]float64, len(m.Samples))
	for i, s := range m.Samples {
		out[i] = s.Seconds()
	}
	sort.Float64s(out)
	return out
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
