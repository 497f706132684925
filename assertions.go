package parcount

import "testing"

// AssertCountInvariance verifies the core correctness property: the
// partitioned counter returns the same result as the sequential baseline
// for every worker count in ks.
func AssertCountInvariance(t *testing.T, data []int, pred Predicate, ks []int) {
	t.Helper()

	want := CountSequential(data, pred)
	for _, k := range ks {
		got := CountPartitioned(data, pred, k)
		if got != want {
			t.Errorf("K=%d: count=%d, sequential baseline=%d", k, got, want)
		}
	}
	t.Logf("✓ count invariant across K=%v (count=%d, n=%d)", ks, want, len(data))
}

// AssertPlanSound verifies the partition-plan invariants for one (n, k)
// pair: k spans, non-decreasing boundaries, pairwise disjoint, union
// exactly [0, n).
func AssertPlanSound(t *testing.T, n, k int) {
	t.Helper()

	plan := Plan(n, k)
	if len(plan) != k {
		t.Fatalf("Plan(%d,%d): got %d spans, want %d", n, k, len(plan), k)
	}

	prev := 0
	for i, s := range plan {
		if s.Lo != prev {
			t.Errorf("Plan(%d,%d) span %d: starts at %d, want %d (gap or overlap)", n, k, i, s.Lo, prev)
		}
		if s.Hi < s.Lo {
			t.Errorf("Plan(%d,%d) span %d: inverted [%d,%d)", n, k, i, s.Lo, s.Hi)
		}
		prev = s.Hi
	}
	if prev != n {
		t.Errorf("Plan(%d,%d): union ends at %d, want %d", n, k, prev, n)
	}
}
