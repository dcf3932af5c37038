// Package tui implements an interactive, single-step tableau animator on
// top of pkg/engine.Step, styled with the charmbracelet stack
// (bubbletea/bubbles/lipgloss) and muesli/termenv's color-profile
// detection, built around the "step(tableau) -> (applied?, rule, target)"
// contract in bubbletea's Model/Update/View shape.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
	"github.com/owings1/pytableaux/pkg/writer"
)

var (
	profile = termenv.ColorProfile()

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	appliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	closedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	Step key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Step: key.NewBinding(key.WithKeys(" ", "n"), key.WithHelp("space/n", "step")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model driving one tableau build, one engine.Step
// at a time.
type Model struct {
	tb     *tableau.Tableau
	root   *rule.Root
	opts   engine.Options
	rs     writer.RenderSet
	logic  string
	last   engine.StepResult
	done   bool
	width  int
	height int
}

// New builds a Model for arg under logicName. The trunk is built up front
// only when opts.AutoBuildTrunk is set; otherwise the tableau starts empty.
func New(arg predstore.Argument, logicName string, opts engine.Options) (*Model, error) {
	l, ok := logic.Get(logicName)
	if !ok {
		return nil, &engine.UnknownLogicError{Name: logicName}
	}
	tb := tableau.New(arg, logicName)
	if opts.AutoBuildTrunk {
		l.BuildTrunk(tb, tb.RootBranch(), arg)
	}
	helpers := rule.NewHelpers()
	root := l.Rules(helpers)

	return &Model{
		tb:    tb,
		root:  root,
		opts:  opts,
		rs:    writer.RenderSet{Notation: notation.Standard, CharSet: notation.ASCII},
		logic: logicName,
	}, nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Step):
			if m.done {
				return m, nil
			}
			res, err := engine.Step(m.tb, m.root, m.opts)
			if err != nil {
				m.done = true
				return m, nil
			}
			m.last = res
			if !res.Applied {
				m.done = true
				m.tb.Finished = true
				m.tb.Completed = true
				m.tb.Valid = m.tb.AllClosed()
				m.tb.Invalid = !m.tb.Valid
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headerStyle.Render(fmt.Sprintf("%s tableau — step %d", m.logic, m.tb.Step())))

	if m.last.Rule != "" {
		style := appliedStyle
		if !m.last.Applied {
			style = closedStyle
		}
		fmt.Fprintf(&b, "%s\n\n", style.Render(fmt.Sprintf("applied: %s on branch %v (applied=%v)", m.last.Rule, m.last.Branch, m.last.Applied)))
	}

	b.WriteString(writer.WriteProof(m.tb, m.rs))
	b.WriteString("\n\n")

	status := "in progress"
	if m.done {
		if m.tb.Valid {
			status = "valid"
		} else {
			status = "invalid"
		}
	}
	fmt.Fprintf(&b, "%s\n", footerStyle.Render(fmt.Sprintf("status: %s — space/n: step, q: quit", status)))
	return b.String()
}

// Run starts the animator as a bubbletea program on the current terminal.
func Run(arg predstore.Argument, logicName string, opts engine.Options) error {
	m, err := New(arg, logicName, opts)
	if err != nil {
		return err
	}
	termenv.DefaultOutput().Profile = profile
	_, err = tea.NewProgram(m).Run()
	return err
}
