package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/prefixer/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type sequenceItem struct {
	ref domain.SequenceRef
}

func (s sequenceItem) Title() string       { return s.ref.Name }
func (s sequenceItem) Description() string { return s.ref.Path }
func (s sequenceItem) FilterValue() string { return s.ref.Name }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr  screen
	seqs list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	busy    bool
	toast   string
	lastRun domain.TransformRun
	width   int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sequences"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		scr:   screenHome,
		seqs:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.seqs.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if !msg.found {
			m.busy = false
			if msg.err != nil && !domain.IsKind(msg.err, domain.KindNotFound) {
				m.toast = userMessage(msg.err)
			}
			m.seqs.SetItems(nil)
			return m, nil
		}
		m.busy = true
		return m, cmdLoadSequences(msg.root)

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Error("tui.init.failed", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created"
		return m, cmdRefreshWorkspace(m.deps)

	case sequencesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, sequenceItem{ref: r})
		}
		return m, m.seqs.SetItems(items)

	case transformDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = ""
		m.lastRun = msg.run
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.seqs.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "r":
			if m.scr == screenHome && !m.busy {
				m.toast = ""
				return m, cmdRefreshWorkspace(m.deps)
			}

		case "i":
			if m.scr == screenHome && !m.workspaceFound && m.cwd != "" && !m.busy {
				m.busy = true
				return m, cmdInitWorkspaceHere(m.deps, m.cwd)
			}

		case "enter":
			if m.scr != screenHome || m.busy {
				return m, nil
			}
			it, ok := m.seqs.SelectedItem().(sequenceItem)
			if !ok {
				return m, nil
			}
			m.busy = true
			m.toast = ""
			return m, cmdTransform(it.ref, m.log, m.deps.Debug)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.seqs, cmd = m.seqs.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("prefixer") + "\n" +
		m.theme.Subtitle.Render("prefix transform of numeric sequences") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("No workspace found.\n\nPress i to create one in the current directory.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter transform • / search • r refresh • q quit")
		if m.busy {
			help = m.theme.Help.Render("working…")
		}
		body := banner
		if m.workspaceFound {
			body += "\n\n" + m.theme.Card.Render(m.seqs.View())
		}
		return wrap.Render(header + "\n" + body + toast + "\n" + help)

	case screenResult:
		card := m.theme.Card.Render(renderRun(m.theme, m.lastRun, m.width-16))
		help := m.theme.Help.Render("esc/b back • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + card + toast + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
