package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/builtins"
	"github.com/wippyai/starlark-runtime/dispatch"
	"github.com/wippyai/starlark-runtime/sequence"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	listStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectMethod modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	thread   *dispatch.Thread
	reg      *dispatch.Registry
	list     *sequence.List
	names    []string
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type callResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(items []starlark.Value) *interactiveModel {
	th := dispatch.NewThread(context.Background(), "inspect")
	reg := builtins.Std()
	return &interactiveModel{
		thread: th,
		reg:    reg,
		list:   sequence.WrapList(th.Mutability(), items),
		names:  reg.Names("list"),
		state:  stateSelectMethod,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectMethod && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMethod && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "f":
			if m.state == stateSelectMethod {
				if err := m.thread.Freeze(); err != nil {
					m.err = err
				} else {
					m.result = "token frozen; the list is now permanently read-only"
				}
				m.state = stateShowResult
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectMethod:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callMethod
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callMethod

			case stateShowResult:
				m.state = stateSelectMethod
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectMethod
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectMethod
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	method, _ := m.reg.Method("list", m.names[m.selected])
	params := method.Params()
	m.inputs = make([]textinput.Model, len(params))
	for i, p := range params {
		ti := textinput.New()
		placeholder := p.TypeName()
		if placeholder == "" {
			placeholder = "value"
		}
		if p.HasDefault() {
			placeholder += " = " + starlark.Repr(p.Default())
		}
		ti.Placeholder = placeholder
		ti.Prompt = p.Name() + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callMethod() tea.Msg {
	method, _ := m.reg.Method("list", m.names[m.selected])

	var given []starlark.Value
	for _, input := range m.inputs {
		if strings.TrimSpace(input.Value()) == "" {
			break
		}
		given = append(given, parseLiteral(strings.TrimSpace(input.Value())))
	}

	bound, err := bindArgs(method, given)
	if err != nil {
		return callResultMsg{err: err}
	}

	loc := starlark.At("<inspect>", 1, 1)
	res, err := method.Call(m.thread, m.list, bound, loc)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: starlark.Repr(res)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("starlark-runtime inspector"))
	b.WriteString("\n\n")
	b.WriteString(listStyle.Render("list = " + m.list.String()))
	if m.thread.Mutability().IsFrozen() {
		b.WriteString(errorStyle.Render("  (frozen)"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectMethod:
		for i, name := range m.names {
			method, _ := m.reg.Method("list", name)
			line := fmt.Sprintf("  %s(%s)", name, signature(method))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line[2:]))
			} else {
				b.WriteString(methodStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: call  f: freeze token  q: quit"))

	case stateInputArgs:
		b.WriteString(methodStyle.Render(m.names[m.selected]))
		b.WriteString("\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: call  tab: next field  esc: back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		} else {
			b.WriteString(resultStyle.Render("result: " + m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: continue  q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func runInteractive(itemsStr string) error {
	model := newInteractiveModel(parseItems(itemsStr))
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
