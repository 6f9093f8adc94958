// ============================================================================
// KAL - Kaleido Arithmetic Language
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model for the KAL REPL
// Author:      Mike Stoffels with Claude
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/kal/kal"
)

// Version is set during build
var Version = "0.1.0"

const maxVisibleEntries = 20

// entry is one evaluated REPL line with its rendered result
type entry struct {
	input  string
	output string
	isErr  bool
}

// Model is the main Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	height   int
	showTree bool
	err      error

	// Components
	input textinput.Model

	// Session state
	engine  *kal.Engine
	entries []entry
	history []string
	histPos int
}

// New creates a new REPL model backed by the given engine
func New(engine *kal.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "def twice(x) x*2"
	ti.Prompt = PromptStyle.Render("kal> ")
	ti.Focus()
	ti.CharLimit = 512

	return Model{
		input:   ti,
		engine:  engine,
		histPos: -1,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			return m.recall(-1)

		case tea.KeyDown:
			return m.recall(1)

		case tea.KeyCtrlT:
			m.showTree = !m.showTree
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	m.histPos = -1
	m.input.SetValue("")

	switch line {
	case ":quit", ":q":
		return m, tea.Quit
	case ":tree":
		m.showTree = !m.showTree
		m.entries = append(m.entries, entry{
			input:  line,
			output: fmt.Sprintf("Baumansicht: %v", m.showTree),
		})
		return m, nil
	case ":help", ":h":
		m.entries = append(m.entries, entry{
			input:  line,
			output: ":tree  Baumansicht umschalten (auch Ctrl+T)\n:quit  Beenden (auch Esc)",
		})
		return m, nil
	}

	m.entries = append(m.entries, m.evaluate(line))
	if len(m.entries) > maxVisibleEntries {
		m.entries = m.entries[len(m.entries)-maxVisibleEntries:]
	}
	return m, nil
}

// evaluate parses one line and renders the result
func (m Model) evaluate(line string) entry {
	program, err := m.engine.Parse(line)
	if err != nil {
		return entry{input: line, output: err.Error(), isErr: true}
	}

	if m.showTree {
		return entry{input: line, output: strings.TrimRight(m.engine.Dump(program), "\n")}
	}
	return entry{input: line, output: program.String()}
}

// recall navigates the input history
func (m Model) recall(direction int) (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m, nil
	}

	if m.histPos == -1 {
		if direction > 0 {
			return m, nil
		}
		m.histPos = len(m.history) - 1
	} else {
		m.histPos += direction
		if m.histPos >= len(m.history) {
			m.histPos = -1
			m.input.SetValue("")
			return m, nil
		}
		if m.histPos < 0 {
			m.histPos = 0
		}
	}

	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render(fmt.Sprintf("KAL REPL v%s", Version)))
	b.WriteString("\n")
	b.WriteString(SubHeaderStyle.Render("Ausdruck eingeben, :help für Hilfe"))
	b.WriteString("\n\n")

	for _, e := range m.entries {
		b.WriteString(InputEchoStyle.Render("kal> " + e.input))
		b.WriteString("\n")
		style := ResultStyle
		if e.isErr {
			style = ErrorStyle
		} else if m.showTree {
			style = TreeStyle
		}
		for _, line := range strings.Split(e.output, "\n") {
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(HintStyle.Render("Enter: auswerten • Ctrl+T: Baumansicht • ↑/↓: Historie • Esc: beenden"))

	return b.String()
}

// Run starts the REPL and blocks until the user quits
func Run(engine *kal.Engine) error {
	p := tea.NewProgram(New(engine))
	_, err := p.Run()
	return err
}
