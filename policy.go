package parcount

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"
)

// Policy is a library-provided parallel counting strategy. Its internals are
// out of scope here: policies exist only to be timed against the hand-rolled
// partitioned counter, the way a standard-library parallel algorithm would
// be. Each policy picks its own degree of parallelism.
type Policy struct {
	Name  string
	Count func(data []int, pred Predicate) (int64, error)
}

// Outcome is the result of a failure-tolerant policy invocation. A policy
// that is unavailable on the running platform yields Supported=false rather
// than an error or a panic, so the sweep's correctness check can skip the
// comparison cleanly instead of spuriously flagging a mismatch.
type Outcome struct {
	Supported bool
	Count     int64
}

// Policies returns the library strategies compared against the custom
// counter: errgroup (golang.org/x/sync) and conc (sourcegraph/conc), both
// chunked across GOMAXPROCS.
func Policies() []Policy {
	return []Policy{
		{Name: "errgroup", Count: countErrgroup},
		{Name: "conc", Count: countConc},
	}
}

// RunPolicy invokes a policy and folds any failure — an error return or a
// panic inside the library — into an Unsupported outcome.
func RunPolicy(p Policy, data []int, pred Predicate) (out Outcome) {
	defer func() {
		if recover() != nil {
			out = Outcome{Supported: false}
		}
	}()

	n, err := p.Count(data, pred)
	if err != nil {
		return Outcome{Supported: false}
	}
	return Outcome{Supported: true, Count: n}
}

func countErrgroup(data []int, pred Predicate) (int64, error) {
	var total atomic.Int64
	var g errgroup.Group

	for _, span := range Plan(len(data), runtime.GOMAXPROCS(0)) {
		chunk := data[span.Lo:span.Hi]
		g.Go(func() error {
			var n int64
			for _, x := range chunk {
				if pred(x) {
					n++
				}
			}
			total.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("errgroup count: %w", err)
	}
	return total.Load(), nil
}

func countConc(data []int, pred Predicate) (int64, error) {
	nw := runtime.GOMAXPROCS(0)
	var total atomic.Int64

	p := pool.New().WithMaxGoroutines(nw)
	for _, span := range Plan(len(data), nw) {
		chunk := data[span.Lo:span.Hi]
		p.Go(func() {
			var n int64
			for _, x := range chunk {
				if pred(x) {
					n++
				}
			}
			total.Add(n)
		})
	}
	p.Wait()

	return total.Load(), nil
}
