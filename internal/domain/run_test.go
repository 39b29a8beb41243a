package domain

import (
	"testing"
	"time"
)

func TestTransformRunDuration(t *testing.T) {
	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	run := TransformRun{StartedAt: start, EndedAt: start.Add(250 * time.Millisecond)}
	if run.Duration() != 250*time.Millisecond {
		t.Fatalf("unexpected duration %s", run.Duration())
	}

	if (TransformRun{StartedAt: start}).Duration() != 0 {
		t.Fatalf("expected zero duration when EndedAt is unset")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Paths.SequencesDir != "sequences" || cfg.Paths.RunsDir != "runs" {
		t.Fatalf("unexpected default paths: %+v", cfg.Paths)
	}
	if cfg.Defaults.Sequence != "sample" {
		t.Fatalf("unexpected default sequence %q", cfg.Defaults.Sequence)
	}
	if !cfg.Runs.Index {
		t.Fatalf("expected index enabled by default")
	}
}
