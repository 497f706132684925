// Package parcount benchmarks strategies for parallel predicate counting
// over a large in-memory integer slice.
//
// # Overview
//
// The question the package answers is empirical: for a fresh-spawn
// partitioned counter, how many workers K actually win on this machine?
// Conventional wisdom says K = number of CPUs, but goroutine lifecycle
// overhead, predicate cost, and workload size all move the optimum. parcount
// measures instead of guessing:
//
//   - a sequential baseline, which doubles as the correctness oracle
//   - two library parallel policies (errgroup, conc) as external yardsticks
//   - the hand-rolled partitioned counter, swept across a brute-force set
//     of K candidates
//
// Every strategy is timed with median-of-repeats (7 runs, middle value) so
// isolated slow runs from the scheduler or cold caches don't pollute the
// comparison. Every result is cross-checked against the sequential count;
// a mismatch is reported for that K and the sweep keeps going.
//
// # Quick start
//
//	err := parcount.Run(context.Background(), parcount.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or drive the pieces directly:
//
//	data := parcount.NewWorkload(1_000_000, rng)
//	baseline := parcount.CountSequential(data, parcount.LightPredicate)
//	res := parcount.Sweep(data, parcount.LightPredicate, baseline,
//	    parcount.CountPartitioned, parcount.CandidateKs(runtime.NumCPU()),
//	    parcount.DefaultRepeats, runtime.NumCPU(), slog.Default())
//	fmt.Printf("best K = %d (ratio %.2f)\n", res.Best.K, res.Ratio())
//
// # Partition geometry
//
// Plan(n, k) cuts [0, n) into k boundary-exact half-open spans with
// Lo = floor(n·i/k), so spans differ in length by at most one element and
// every index belongs to exactly one worker. Workers write disjoint slots
// of the partial-result slice; the WaitGroup join is the only
// synchronization in the hot path.
//
// # Scaling analysis
//
// After the sweep, the (K, time) curve is fitted to the Universal
// Scalability Law C(K) = λK/(1+α(K-1)+βK(K-1)). The fitted peak is printed
// next to the empirically best K — when the two disagree badly, the timing
// data was noisy. The fit never feeds back into scheduling; the sweep stays
// brute force on purpose.
package parcount
