package parcount

import "math/rand"

// WorkloadMax is the upper bound (inclusive) of generated values.
const WorkloadMax = 1_000_000

// NewWorkload fills a fresh slice with n uniform values in [0, WorkloadMax].
// The caller owns the rng: reusing one seeded source across sizes keeps a
// whole run reproducible. The returned slice is treated as immutable for the
// lifetime of every measurement taken against it — workers share it
// read-only, so no element may be written after generation.
func NewWorkload(n int, rng *rand.Rand) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(WorkloadMax + 1)
	}
	return data
}
