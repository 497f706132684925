// Command parcount runs the full best-K benchmark: sequential baseline,
// library parallel policies, and the partitioned counter swept across worker
// counts, for every built-in workload size and predicate. The report goes to
// stdout; progress and diagnostics go to stderr.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"

	"github.com/alexshd/parcount"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	cfg := parcount.DefaultConfig()
	cfg.Output = os.Stdout
	cfg.Logger = slog.Default().With("run", uuid.NewString()[:8])

	cfg.Logger.Info("starting benchmark",
		"sizes", cfg.Sizes,
		"repeats", cfg.Repeats)

	if err := parcount.Run(context.Background(), cfg); err != nil {
		cfg.Logger.Error("benchmark failed", "err", err)
		os.Exit(1)
	}
}
