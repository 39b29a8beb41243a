package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/infra/fsworkspace"
)

type fakeLocator struct {
	root string
	err  error
}

func (f fakeLocator) FindRoot(string) (string, error) { return f.root, f.err }

func initWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	return root
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestRefreshWorkspace_NotFound(t *testing.T) {
	deps := Deps{WorkspaceLocator: fakeLocator{err: &domain.OpError{
		Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound,
	}}}

	msg, ok := cmdRefreshWorkspace(deps)().(workspaceRefreshedMsg)
	if !ok {
		t.Fatalf("unexpected msg type")
	}
	if msg.found {
		t.Fatalf("expected found=false")
	}

	m, cmd := update(t, newModel(deps), msg)
	if cmd != nil {
		t.Fatalf("expected no follow-up cmd")
	}
	if m.toast != "" {
		t.Fatalf("not-found should not toast, got %q", m.toast)
	}
	if !strings.Contains(m.View(), "No workspace found") {
		t.Fatalf("view should mention missing workspace:\n%s", m.View())
	}
}

func TestLoadSequences_ListsWorkspaceFiles(t *testing.T) {
	root := initWorkspace(t)

	msg, ok := cmdLoadSequences(root)().(sequencesLoadedMsg)
	if !ok {
		t.Fatalf("unexpected msg type")
	}
	if msg.err != nil {
		t.Fatalf("load: %v", msg.err)
	}

	var names []string
	for _, r := range msg.refs {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"readings", "sample"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	m := newModel(Deps{})
	m, _ = update(t, m, workspaceRefreshedMsg{found: true, root: root})
	if !m.busy {
		t.Fatalf("expected busy while loading")
	}
	m, _ = update(t, m, msg)
	if m.busy {
		t.Fatalf("expected busy=false after load")
	}
	if got := len(m.seqs.Items()); got != 2 {
		t.Fatalf("items=%d want 2", got)
	}
}

func TestTransform_ShowsResultAndBack(t *testing.T) {
	root := initWorkspace(t)
	ref := domain.SequenceRef{Name: "sample", Path: filepath.Join(root, "sequences", "sample.yaml")}

	msg, ok := cmdTransform(ref, newModel(Deps{}).log, true)().(transformDoneMsg)
	if !ok {
		t.Fatalf("unexpected msg type")
	}
	if msg.err != nil {
		t.Fatalf("transform: %v", msg.err)
	}
	if diff := cmp.Diff([]int64{4, 9, 11}, msg.run.Output); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	m := newModel(Deps{})
	m.workspaceFound = true
	m.workspaceRoot = root
	m.busy = true

	m, _ = update(t, m, msg)
	if m.scr != screenResult {
		t.Fatalf("expected result screen, got %v", m.scr)
	}
	view := m.View()
	if !strings.Contains(view, "[4, 9, 11]") {
		t.Fatalf("view missing output:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenHome {
		t.Fatalf("esc should go home, got %v", m.scr)
	}
}

func TestTransform_ErrorToasts(t *testing.T) {
	m := newModel(Deps{})
	m.busy = true

	err := &domain.OpError{
		Op:   "seqfile.validate",
		Kind: domain.KindInvalidConfig,
		Path: "/ws/sequences/bad.yaml",
		Err:  errors.New("field values[1]: must be an integer"),
	}
	m, _ = update(t, m, transformDoneMsg{err: err})

	if m.scr != screenHome {
		t.Fatalf("should stay home on error")
	}
	if m.toast != "Invalid values[1] in bad.yaml" {
		t.Fatalf("toast=%q", m.toast)
	}
}

func TestEnter_IgnoredWhileBusy(t *testing.T) {
	m := newModel(Deps{})
	m.busy = true

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("enter while busy should not start a transform")
	}
}

func TestQuit(t *testing.T) {
	m := newModel(Deps{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestInitWorkspaceHere(t *testing.T) {
	dir := t.TempDir()
	deps := Deps{WorkspaceInitializer: fsworkspace.NewInitializer()}

	msg, ok := cmdInitWorkspaceHere(deps, dir)().(initWorkspaceDoneMsg)
	if !ok {
		t.Fatalf("unexpected msg type")
	}
	if msg.err != nil {
		t.Fatalf("init: %v", msg.err)
	}

	m, cmd := update(t, newModel(deps), msg)
	if m.toast != "Workspace created" {
		t.Fatalf("toast=%q", m.toast)
	}
	if cmd == nil {
		t.Fatalf("expected refresh cmd after init")
	}
}

func TestInitWorkspaceFailure_ClearsBusy(t *testing.T) {
	m := newModel(Deps{})
	m.cwd = t.TempDir()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if cmd == nil || !m.busy {
		t.Fatalf("i should start init (busy=%v)", m.busy)
	}

	m, _ = update(t, m, initWorkspaceDoneMsg{root: m.cwd, err: errors.New("permission denied")})
	if m.busy {
		t.Fatalf("busy should clear after a failed init")
	}
	if m.toast == "" {
		t.Fatalf("expected a toast for the failure")
	}

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatalf("r should refresh after a failed init")
	}
}

func TestRefreshNotFound_ClearsBusy(t *testing.T) {
	m := newModel(Deps{})
	m.busy = true

	m, _ = update(t, m, workspaceRefreshedMsg{cwd: t.TempDir()})
	if m.busy {
		t.Fatalf("busy should clear when no workspace is found")
	}
}

func TestSafeModel_DelegatesUpdate(t *testing.T) {
	s := wrapSafe(newModel(Deps{}), nil)

	next, _ := s.Update(transformDoneMsg{run: domain.TransformRun{
		SequenceName: "inline",
		Input:        []int64{7, 8, 9},
		Output:       []int64{7, 15, 17},
	}})
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.scr != screenResult {
		t.Fatalf("expected result screen")
	}
	if !strings.Contains(sm.View(), "[7, 15, 17]") {
		t.Fatalf("view missing output:\n%s", sm.View())
	}
}
