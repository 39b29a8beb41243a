package runstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/ports"
)

const defaultRunsDir = "runs"

// maxCollisions bounds the _N suffix search for same-second runs.
const maxCollisions = 1000

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex overrides the config and toggles runs/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  cfg.Runs.Index,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RunStore = (*JSONStore)(nil)

// Dir returns the directory runs are written to.
func (s *JSONStore) Dir() string {
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveRun(run domain.TransformRun) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	ts := toSave.StartedAt.UTC()

	namePart := run.SequenceName
	if strings.TrimSpace(namePart) == "" {
		namePart = strings.TrimSuffix(filepath.Base(run.SequencePath), filepath.Ext(run.SequencePath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "run"
	}

	id, path, err := uniqueName(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Write to a temp file first so readers never observe a partial artifact.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

// Load reads a saved run back by id.
func (s *JSONStore) Load(id string) (domain.TransformRun, error) {
	path := filepath.Join(s.Dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.TransformRun{}, &domain.OpError{Op: "runstore.load", Kind: kind, Path: path, Err: err}
	}

	var run domain.TransformRun
	if err := json.Unmarshal(b, &run); err != nil {
		return domain.TransformRun{}, &domain.OpError{Op: "runstore.load", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return run, nil
}

func uniqueName(dir, base string) (id string, path string, err error) {
	for n := 1; n <= maxCollisions; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		path = filepath.Join(dir, id+".json")
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return id, path, nil
		}
	}
	return "", "", &domain.OpError{
		Op:   "runstore.name",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base+".json"),
		Err:  errors.New("too many runs with the same timestamp"),
	}
}

type indexLine struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Sequence  string    `json:"sequence"`
	Length    int       `json:"length"`
	StartedAt time.Time `json:"started_at"`
}

func appendIndex(dir, id, filename string, run domain.TransformRun) error {
	line, err := json.Marshal(indexLine{
		ID:        id,
		File:      filename,
		Sequence:  run.SequenceName,
		Length:    len(run.Input),
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
