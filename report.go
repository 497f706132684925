package parcount

import (
	"fmt"
	"io"
	"math"
	"time"

	"golang.org/x/perf/benchmath"
)

// Report renders the per-size, per-predicate benchmark blocks as plain text.
// One Report writes one run; it keeps no state beyond the destination.
type Report struct {
	w io.Writer
}

// NewReport writes to w, typically os.Stdout.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Header prints the hardware parallelism the run was taken on.
func (r *Report) Header(hardware int) {
	fmt.Fprintf(r.w, "CPU threads: %d\n\n", hardware)
}

// BeginSize opens the block for one workload size.
func (r *Report) BeginSize(n int) {
	fmt.Fprintf(r.w, "===========================================================\n")
	fmt.Fprintf(r.w, "N = %d\n", n)
}

// BeginPredicate opens the block for one predicate within a size.
func (r *Report) BeginPredicate(name string) {
	fmt.Fprintf(r.w, "\n=== predicate: %s ===\n", name)
}

// Strategy prints one counting strategy's median together with the
// benchmath summary of its repeat samples (median with a 95% confidence
// interval, no distributional assumption).
func (r *Report) Strategy(name string, m Measurement) {
	sum := summarize(m)
	fmt.Fprintf(r.w, "%-12s %10s   (95%% CI [%s, %s], n=%d)\n",
		name+":", fmtMillis(m.Median()),
		fmtSeconds(sum.Lo), fmtSeconds(sum.Hi), len(m.Samples))
}

// Unsupported prints the marker for a policy unavailable on this platform.
func (r *Report) Unsupported(name string) {
	fmt.Fprintf(r.w, "%-12s not supported\n", name+":")
}

// SweepTable prints the per-K timing table, flagging any K whose count
// disagreed with the sequential baseline.
func (r *Report) SweepTable(res SweepResult) {
	fmt.Fprintf(r.w, "\n--- partitioned counter, K sweep ---\n")
	for _, o := range res.Observations {
		flag := ""
		if o.Mismatch {
			flag = "   ERROR: incorrect result"
		}
		fmt.Fprintf(r.w, "K=%3d   time=%10s%s\n", o.K, fmtMillis(o.Elapsed), flag)
	}
}

// BestK prints the sweep summary line: the winning K, its time, the
// hardware parallelism, and their ratio.
func (r *Report) BestK(res SweepResult) {
	fmt.Fprintf(r.w, "\nBEST K = %d (time=%s, CPU=%d, ratio=%.2f)\n",
		res.Best.K, fmtMillis(res.Best.Elapsed), res.Hardware, res.Ratio())
}

// Scaling prints the USL fit of the sweep's throughput curve next to the
// empirical winner.
func (r *Report) Scaling(fit ScalingFit) {
	peak := "inf"
	if p := fit.PeakK(); !math.IsInf(p, 1) {
		peak = fmt.Sprintf("%.1f", p)
	}
	fmt.Fprintf(r.w, "USL fit: lambda=%.1f/s alpha=%.4f beta=%.6f R2=%.3f peak K~%s\n",
		fit.Lambda, fit.Alpha, fit.Beta, fit.RSquared, peak)
}

// EndPredicate closes a predicate block.
func (r *Report) EndPredicate() {
	fmt.Fprintln(r.w)
}

func summarize(m Measurement) benchmath.Summary {
	s := benchmath.NewSample(m.seconds(), &benchmath.DefaultThresholds)
	return benchmath.AssumeNothing.Summary(s, 0.95)
}

func fmtMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

func fmtSeconds(s float64) string {
	return fmtMillis(time.Duration(s * float64(time.Second)))
}
