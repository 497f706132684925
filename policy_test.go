package parcount

import (
	"errors"
	"math/rand"
	"testing"
)

// TestPolicies_MatchBaseline verifies both library policies agree with the
// sequential count for every built-in predicate.
func TestPolicies_MatchBaseline(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := NewWorkload(20_000, rng)

	for _, p := range Predicates() {
		want := CountSequential(data, p.Test)
		for _, pol := range Policies() {
			out := RunPolicy(pol, data, p.Test)
			if !out.Supported {
				t.Errorf("%s/%s: unexpectedly unsupported", pol.Name, p.Name)
				continue
			}
			if out.Count != want {
				t.Errorf("%s/%s: got %d, want %d", pol.Name, p.Name, out.Count, want)
			}
		}
	}
}

// TestRunPolicy_Unsupported verifies failures fold into the Unsupported
// outcome instead of propagating: both error returns and panics inside the
// library.
func TestRunPolicy_Unsupported(t *testing.T) {
	failing := Policy{
		Name: "failing",
		Count: func([]int, Predicate) (int64, error) {
			return 0, errors.New("platform does not support this policy")
		},
	}
	if out := RunPolicy(failing, []int{1, 2, 3}, LightPredicate); out.Supported {
		t.Error("error return reported as supported")
	}

	panicking := Policy{
		Name: "panicking",
		Count: func([]int, Predicate) (int64, error) {
			panic("no such capability")
		},
	}
	if out := RunPolicy(panicking, []int{1, 2, 3}, LightPredicate); out.Supported {
		t.Error("panic reported as supported")
	}
}

// TestPolicies_Empty covers the zero-length workload.
func TestPolicies_Empty(t *testing.T) {
	for _, pol := range Policies() {
		out := RunPolicy(pol, nil, LightPredicate)
		if !out.Supported || out.Count != 0 {
			t.Errorf("%s over empty workload: %+v, want supported count 0", pol.Name, out)
		}
	}
}
