package parcount

import "sync"

// CountFunc is any counting strategy over (data, pred, k). Sweep accepts a
// CountFunc so tests can inject a deliberately broken strategy and exercise
// the violation path.
type CountFunc func(data []int, pred Predicate, k int) int64

// CountSequential scans the workload once in index order and returns the
// number of elements satisfying pred. It is the ground truth: every other
// strategy's result must equal this for the same (data, pred) pair.
func CountSequential(data []int, pred Predicate) int64 {
	var n int64
	for _, x := range data {
		if pred(x) {
			n++
		}
	}
	return n
}

// CountPartitioned counts predicate matches with k workers over the
// partition plan for (len(data), k). Workers are spawned fresh on every call
// and joined before return — goroutine lifecycle cost is part of what the
// benchmark characterizes, so there is deliberately no pooling or reuse.
//
// k ≤ 1 degenerates to CountSequential rather than spawning a single
// redundant worker. The result is invariant to k for a fixed (data, pred);
// the sweep driver checks exactly that.
func CountPartitioned(data []int, pred Predicate, k int) int64 {
	if k <= 1 {
		return CountSequential(data, pred)
	}

	partials := gatherPartials(Plan(len(data), k), func(s Span) int64 {
		var n int64
		for _, x := range data[s.Lo:s.Hi] {
			if pred(x) {
				n++
			}
		}
		return n
	})

	var total int64
	for _, p := range partials {
		total += p
	}
	return total
}

// gatherPartials is the ephemeral worker set: one goroutine per span, a
// join barrier, and the partial results in span order. Each worker writes
// only its own slot, so the slice needs no locking; the WaitGroup join is
// the only synchronization point.
func gatherPartials(plan []Span, count func(Span) int64) []int64 {
	partials := make([]int64, len(plan))

	var wg sync.WaitGroup
	for i, span := range plan {
		wg.Add(1)
		go func(i int, span Span) {
			defer wg.Done()
			partials[i] = count(span)
		}(i, span)
	}
	wg.Wait()

	return partials
}
