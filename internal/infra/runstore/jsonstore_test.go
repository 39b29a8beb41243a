package runstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func sampleRun(start time.Time) domain.TransformRun {
	return domain.TransformRun{
		SequenceName: "Parent B",
		SequencePath: "sequences/parent_b.yaml",
		Input:        []int64{4, 5, 6},
		Output:       []int64{4, 9, 11},
		StartedAt:    start,
		EndedAt:      start.Add(2 * time.Millisecond),
	}
}

func TestSaveRun_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Runs.Index = false
	store := NewJSONStore(tmp, cfg)

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveRun(sampleRun(start))
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "20260203T101112Z_parent-b" {
		t.Fatalf("unexpected id %q", id)
	}

	wantFile := filepath.Join(tmp, "runs", id+".json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.TransformRun
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(sampleRun(start), decoded); diff != "" {
		t.Fatalf("decoded run mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(filepath.Join(tmp, "runs", "index.jsonl")); !os.IsNotExist(err) {
		t.Fatalf("expected no index when disabled, stat err=%v", err)
	}
}

func TestSaveRun_UsesUniqueFilenameOnCollision(t *testing.T) {
	store := NewJSONStore(t.TempDir(), domain.DefaultConfig())

	run := sampleRun(time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC))

	id1, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun #1 error: %v", err)
	}
	id2, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun #2 error: %v", err)
	}
	if id2 != id1+"_2" {
		t.Fatalf("expected second id %q, got %q", id1+"_2", id2)
	}

	for _, id := range []string{id1, id2} {
		if _, err := store.Load(id); err != nil {
			t.Fatalf("Load(%s) error: %v", id, err)
		}
	}
}

func TestSaveRun_WritesIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	if _, err := store.SaveRun(sampleRun(start)); err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if _, err := store.SaveRun(sampleRun(start.Add(time.Second))); err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}

	f, err := os.Open(filepath.Join(tmp, "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var lines []indexLine
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var l indexLine
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			t.Fatalf("index line: %v", err)
		}
		lines = append(lines, l)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	if lines[0].Sequence != "Parent B" || lines[0].Length != 3 {
		t.Fatalf("unexpected index line %+v", lines[0])
	}
}

func TestSaveRun_FallbackNameAndClock(t *testing.T) {
	tmp := t.TempDir()
	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return fixed }), WithIndex(false))

	id, err := store.SaveRun(domain.TransformRun{SequencePath: "data/Weekly Totals.json"})
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "20260506T070809Z_weekly-totals" {
		t.Fatalf("unexpected id %q", id)
	}

	id, err = store.SaveRun(domain.TransformRun{StartedAt: fixed})
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "20260506T070809Z_run" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveRun_CustomRunsDir(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "artifacts"

	store := NewJSONStore(tmp, cfg)
	id, err := store.SaveRun(sampleRun(time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)))
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "artifacts", id+".json")); err != nil {
		t.Fatalf("expected artifact under custom dir: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	store := NewJSONStore(t.TempDir(), domain.DefaultConfig())
	_, err := store.Load("nope")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Parent B":       "parent-b",
		"  __weird..  ":  "weird",
		"a--b":           "a-b",
		"Ünïcode 42":     "n-code-42",
		"":               "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
