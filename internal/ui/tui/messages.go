package tui

import "github.com/aalvaropc/prefixer/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type sequencesLoadedMsg struct {
	root string
	refs []domain.SequenceRef
	err  error
}

type transformDoneMsg struct {
	run domain.TransformRun
	err error
}
