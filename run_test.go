package parcount

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// TestRun_SmallWorkload drives the full pipeline end to end on a tiny
// configuration and checks the report contains every block.
func TestRun_SmallWorkload(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Sizes:   []int{2_000},
		Repeats: 3,
		Seed:    123456,
		Output:  &buf,
		Logger:  discardLogger(),
	}

	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"CPU threads:",
		"N = 2000",
		"=== predicate: light ===",
		"=== predicate: heavy ===",
		"sequential:",
		"errgroup:",
		"conc:",
		"K sweep",
		"BEST K =",
		"USL fit:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "ERROR: incorrect result") {
		t.Error("correct strategies flagged a mismatch")
	}
}

// TestRun_Canceled verifies a canceled context stops the run between
// blocks with the context's error.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	cfg := Config{
		Sizes:   []int{1_000},
		Repeats: 3,
		Output:  &buf,
		Logger:  discardLogger(),
	}

	if err := Run(ctx, cfg); err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
