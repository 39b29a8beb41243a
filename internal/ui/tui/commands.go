package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/infra/seqfile"
	"github.com/aalvaropc/prefixer/internal/infra/workspacefinder"
	"github.com/aalvaropc/prefixer/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}
		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadSequences(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return sequencesLoadedMsg{root: root, err: err}
		}

		loader := seqfile.NewLoader(seqfile.WithSequencesDir(cfg.Paths.SequencesDir))
		refs, err := loader.ListSequences(root)
		return sequencesLoadedMsg{root: root, refs: refs, err: err}
	}
}

// cmdTransform runs the transform for ref without saving an artifact.
func cmdTransform(ref domain.SequenceRef, log *slog.Logger, debug bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		uc := usecase.NewTransformSequence(seqfile.NewLoader(), nil, usecase.WithLogger(log))
		run, _, err := uc.Execute(ctx, ref.Path)
		if err != nil {
			log.Error("tui.transform.failed", "path", ref.Path, "err", err)
		} else if debug {
			log.Debug("tui.transform.ok", "sequence", run.SequenceName, "len", len(run.Input))
		}
		return transformDoneMsg{run: run, err: err}
	}
}
