package parcount

import (
	"math/rand"
	"testing"
)

// TestCountSequential_EvenScenario pins the baseline on the known scenario:
// "even" over [1,2,3,4,5,6] counts 3.
func TestCountSequential_EvenScenario(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}

	if got := CountSequential(data, LightPredicate); got != 3 {
		t.Errorf("sequential even count: got %d, want 3", got)
	}
}

// TestCountPartitioned_EvenScenario verifies every partitioned variant
// agrees with the baseline on the same scenario, regardless of K.
func TestCountPartitioned_EvenScenario(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}

	for _, k := range []int{1, 2, 3, 6} {
		if got := CountPartitioned(data, LightPredicate, k); got != 3 {
			t.Errorf("K=%d: got %d, want 3", k, got)
		}
	}
}

// TestCountPartitioned_InvariantToK is the core correctness property: for a
// fixed workload and predicate the result does not depend on K, including
// K=1 (degenerate sequential path) and K > n (empty spans).
func TestCountPartitioned_InvariantToK(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := NewWorkload(10_000, rng)
	ks := []int{1, 2, 3, 4, 7, 8, 16, 33, 64, 10_001}

	for _, p := range Predicates() {
		t.Run(p.Name, func(t *testing.T) {
			AssertCountInvariance(t, data, p.Test, ks)
		})
	}
}

// TestCountPartitioned_Empty covers the zero-length workload.
func TestCountPartitioned_Empty(t *testing.T) {
	for _, k := range []int{1, 4} {
		if got := CountPartitioned(nil, LightPredicate, k); got != 0 {
			t.Errorf("K=%d over empty workload: got %d, want 0", k, got)
		}
	}
}

// TestGatherPartials verifies the ephemeral worker set returns partials in
// span order, one per span.
func TestGatherPartials(t *testing.T) {
	plan := Plan(10, 4)

	partials := gatherPartials(plan, func(s Span) int64 {
		return int64(s.Lo)
	})

	if len(partials) != len(plan) {
		t.Fatalf("got %d partials, want %d", len(partials), len(plan))
	}
	for i, p := range partials {
		if p != int64(plan[i].Lo) {
			t.Errorf("slot %d: got %d, want %d (results out of span order)", i, p, plan[i].Lo)
		}
	}
}

// TestPredicates_Purity spot-checks that the predicates are deterministic,
// which is what makes them safe to call from many workers at once.
func TestPredicates_Purity(t *testing.T) {
	for _, p := range Predicates() {
		for _, x := range []int{0, 1, 2, 17, 999_983, WorkloadMax} {
			first := p.Test(x)
			for i := 0; i < 3; i++ {
				if p.Test(x) != first {
					t.Fatalf("%s(%d) not deterministic", p.Name, x)
				}
			}
		}
	}

	if !LightPredicate(4) || LightPredicate(5) {
		t.Error("light predicate is not the even test")
	}
}
