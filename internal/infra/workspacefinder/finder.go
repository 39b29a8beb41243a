package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/ports"
)

// Finder walks upward from a start directory until it meets a directory
// holding the marker file.
type Finder struct {
	Marker string
}

func NewFinder() *Finder {
	return &Finder{Marker: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start dir is empty")}
	}

	cur, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	// A file argument searches from its directory.
	if info, statErr := os.Stat(cur); statErr == nil && !info.IsDir() {
		cur = filepath.Dir(cur)
	}

	for dir := filepath.Clean(cur); ; {
		if _, err := os.Stat(filepath.Join(dir, f.Marker)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: cur, Err: domain.ErrNotFound}
		}
		dir = parent
	}
}
