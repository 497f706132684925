package parcount

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
)

// Config controls a full benchmark run. There are no flags and no
// environment inputs; behavior is fixed by these constants, and the only
// thing read from the machine is its hardware parallelism.
type Config struct {
	Sizes   []int     // workload sizes, one outer block each
	Repeats int       // timed invocations per measurement
	Seed    int64     // workload generator seed, shared across sizes
	Output  io.Writer // report destination (default os.Stdout)
	Logger  *slog.Logger
}

// DefaultConfig returns the fixed benchmark parameters.
func DefaultConfig() Config {
	return Config{
		Sizes:   []int{100_000, 1_000_000, 5_000_000},
		Repeats: DefaultRepeats,
		Seed:    123456,
	}
}

// Run executes the whole experiment: for every size, generate one workload,
// and for every predicate establish the sequential baseline, time the
// library policies, sweep the partitioned counter across the K candidates,
// and report the best K. The context is only consulted between blocks —
// workers inside a measurement have no cancellation, so a hung worker
// blocks the sweep (that is the accepted failure mode, not a bug).
func Run(ctx context.Context, cfg Config) error {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	hardware := runtime.NumCPU()
	ks := CandidateKs(hardware)
	rng := rand.New(rand.NewSource(cfg.Seed))

	rep := NewReport(out)
	rep.Header(hardware)

	for _, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Info("generating workload", "n", n)
		data := NewWorkload(n, rng)
		rep.BeginSize(n)

		for _, p := range Predicates() {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep.BeginPredicate(p.Name)

			baseline := CountSequential(data, p.Test)
			seq := Measure(func() { CountSequential(data, p.Test) }, cfg.Repeats)
			rep.Strategy("sequential", seq)

			for _, pol := range Policies() {
				outcome := RunPolicy(pol, data, p.Test)
				if !outcome.Supported {
					log.Warn("policy not supported", "policy", pol.Name)
					rep.Unsupported(pol.Name)
					continue
				}
				if outcome.Count != baseline {
					log.Warn("policy count mismatch",
						"policy", pol.Name,
						"got", outcome.Count,
						"want", baseline)
				}
				m := Measure(func() { RunPolicy(pol, data, p.Test) }, cfg.Repeats)
				rep.Strategy(pol.Name, m)
			}

			res := Sweep(data, p.Test, baseline, CountPartitioned, ks, cfg.Repeats, hardware, log)
			rep.SweepTable(res)
			rep.BestK(res)
			if fit, err := FitScaling(res.Observations); err == nil {
				rep.Scaling(fit)
			} else {
				log.Warn("scaling fit skipped", "err", err)
			}
			rep.EndPredicate()

			log.Info("sweep complete",
				"n", n,
				"predicate", p.Name,
				"best_k", res.Best.K,
				"best_time", res.Best.Elapsed,
				"violations", len(res.Violations()))
		}
	}

	return nil
}
