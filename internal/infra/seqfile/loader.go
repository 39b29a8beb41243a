package seqfile

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/ports"
)

// DefaultValuesPath is the JSONPath used to locate values in JSON documents.
const DefaultValuesPath = "$.values"

type Loader struct {
	sequencesDir string
	valuesPath   string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		sequencesDir: "sequences",
		valuesPath:   DefaultValuesPath,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithSequencesDir(dir string) Option {
	return func(l *Loader) { l.sequencesDir = dir }
}

// WithValuesPath sets the JSONPath expression used for .json files.
func WithValuesPath(expr string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(expr) != "" {
			l.valuesPath = strings.TrimSpace(expr)
		}
	}
}

var _ ports.SequenceLoader = (*Loader)(nil)

func (l *Loader) LoadSequence(path string) (domain.Sequence, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Sequence{}, &domain.OpError{
			Op:   "seqfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var seq domain.Sequence
	switch {
	case HasJSONExt(path):
		seq, err = decodeJSON(path, b, l.valuesPath)
	case HasYAMLExt(path):
		seq, err = decodeYAML(path, b)
	default:
		return domain.Sequence{}, &domain.OpError{
			Op:   "seqfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unsupported file extension %q: %w", filepath.Ext(path), domain.ErrInvalidSequence),
		}
	}
	if err != nil {
		return domain.Sequence{}, err
	}

	if strings.TrimSpace(seq.Name) == "" {
		seq.Name = stem(path)
	}
	return seq, nil
}

func (l *Loader) ListSequences(root string) ([]domain.SequenceRef, error) {
	dir := filepath.Join(root, l.sequencesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "seqfile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.SequenceRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !HasYAMLExt(name) && !HasJSONExt(name) {
			continue
		}

		p := filepath.Join(dir, name)
		n := stem(name)
		if HasYAMLExt(name) {
			if declared, _ := readYAMLName(p); strings.TrimSpace(declared) != "" {
				n = declared
			}
		}

		refs = append(refs, domain.SequenceRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// HasYAMLExt reports whether p ends in .yaml or .yml (case-insensitive).
func HasYAMLExt(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}

// HasJSONExt reports whether p ends in .json (case-insensitive).
func HasJSONExt(p string) bool {
	return strings.ToLower(filepath.Ext(p)) == ".json"
}

func stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// integral accepts whole-valued floats (3.0, 1e3) that fit in an int64.
// Both file formats share this rule.
func integral(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("expected integer, got %v", f)
	}
	return int64(f), nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "seqfile.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidSequence),
	}
}
