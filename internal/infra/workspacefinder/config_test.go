package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/prefixer/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()

	// Partial config (no paths/defaults)
	content := []byte("prefixer:\n  runs:\n    index: false\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFile), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Runs.Index {
		t.Fatalf("expected index=false")
	}
	if cfg.Defaults.Sequence != "sample" {
		t.Fatalf("expected default sequence=sample, got=%s", cfg.Defaults.Sequence)
	}
	if cfg.Paths.SequencesDir != "sequences" {
		t.Fatalf("expected sequences dir=sequences, got=%s", cfg.Paths.SequencesDir)
	}
	if cfg.Paths.RunsDir != "runs" {
		t.Fatalf("expected runs dir=runs, got=%s", cfg.Paths.RunsDir)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	root := t.TempDir()

	content := []byte(`prefixer:
  defaults:
    sequence: parent-b
  paths:
    sequences_dir: data
    runs_dir: out
`)
	if err := os.WriteFile(filepath.Join(root, ConfigFile), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.Sequence != "parent-b" || cfg.Paths.SequencesDir != "data" || cfg.Paths.RunsDir != "out" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Runs.Index {
		t.Fatalf("expected index to keep its default")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if cfg.Paths.SequencesDir != "sequences" {
		t.Fatalf("expected defaults alongside the error")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte("prefixer: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
