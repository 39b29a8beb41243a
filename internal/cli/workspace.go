package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/infra/logger"
	"github.com/aalvaropc/prefixer/internal/infra/runstore"
	"github.com/aalvaropc/prefixer/internal/infra/seqfile"
	"github.com/aalvaropc/prefixer/internal/infra/workspacefinder"
	"github.com/aalvaropc/prefixer/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	sequences ports.SequenceLoader
	store     ports.RunStore

	log      *slog.Logger
	closeLog func() error
}

type workspaceOptions struct {
	valuesPath string
	debug      bool
}

func loadWorkspace(workspaceFlag string, opts workspaceOptions) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root: root,
		cfg:  cfg,
		sequences: seqfile.NewLoader(
			seqfile.WithSequencesDir(cfg.Paths.SequencesDir),
			seqfile.WithValuesPath(opts.valuesPath),
		),
		store:    runstore.NewJSONStore(root, cfg),
		log:      logger.L(),
		closeLog: func() error { return nil },
	}

	// Logging is best-effort; a read-only workspace still transforms.
	if cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: opts.debug}); lerr == nil {
		ws.log = logger.L()
		ws.closeLog = cleanup
	}

	return ws, nil
}

func (ws *workspaceCtx) Close() error {
	if ws == nil || ws.closeLog == nil {
		return nil
	}
	return ws.closeLog()
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `prefixer init`): %w", wd, err)
	}
	return root, nil
}

// resolveSequencePath maps a --sequence argument to a file. An empty
// argument selects the workspace default sequence.
func resolveSequencePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Sequence
	}
	if in == "" {
		return "", fmt.Errorf("sequence is required (use --sequence or -s)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	dir := filepath.Join(ws.root, ws.cfg.Paths.SequencesDir)

	if seqfile.HasYAMLExt(in) || seqfile.HasJSONExt(in) {
		if p := filepath.Join(dir, in); fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if p := filepath.Join(dir, in+ext); fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match by the declared sequence name.
	if refs, err := ws.sequences.ListSequences(ws.root); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("sequence %q not found in %q: %w", in, dir, domain.ErrNotFound)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
