package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/rawvalue/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
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
	stateSelectType modelState = iota
	stateInputValue
)

type typeInfo struct {
	declared *types.Descriptor
	name     string
}

type interactiveModel struct {
	err      error
	app      *app
	result   string
	types    []typeInfo
	input    textinput.Model
	selected int
	state    modelState
	count    bool
	null     bool
}

func newInteractiveModel(a *app) *interactiveModel {
	var list []typeInfo
	for _, name := range types.PrimitiveNames() {
		list = append(list, typeInfo{name: name, declared: types.MustParse(name, nil)})
	}
	for _, name := range a.reg.Names() {
		e, _ := a.reg.LookupName(name)
		list = append(list, typeInfo{name: name, declared: types.Enum(e)})
	}
	return &interactiveModel{
		app:   a,
		types: list,
		state: stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectType {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType {
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectType {
				if m.selected < len(m.types)-1 {
					m.selected++
				}
				return m, nil
			}

		case "enter":
			if m.state == stateSelectType {
				m.prepareInput()
				m.state = stateInputValue
				m.refresh()
				return m, textinput.Blink
			}
			return m, nil

		case "ctrl+t":
			if m.state == stateInputValue {
				m.count = !m.count
				m.refresh()
			}
			return m, nil

		case "ctrl+n":
			if m.state == stateInputValue {
				m.null = !m.null
				m.refresh()
			}
			return m, nil

		case "esc":
			if m.state == stateInputValue {
				m.state = stateSelectType
				m.result, m.err = "", nil
			}
			return m, nil
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = m.types[m.selected].name
	ti.Prompt = "value: "
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.count, m.null = false, false
}

// refresh re-renders the current input.
func (m *interactiveModel) refresh() {
	req := request{
		declared: types.Nullable(m.types[m.selected].declared),
		text:     m.input.Value(),
		count:    m.count,
		null:     m.null,
	}
	if !req.null && !req.count && req.text == "" {
		m.result, m.err = "", nil
		return
	}
	m.result, m.err = m.app.render(req)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Raw Value"))
	b.WriteString(" ")
	b.WriteString(m.app.ser.Options().NullPolicy.String())
	b.WriteString(" nulls\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a declared type:\n\n")
		for i, t := range m.types {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + t.name))
			} else {
				b.WriteString("  " + typeStyle.Render(t.name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputValue:
		t := m.types[m.selected]
		b.WriteString(fmt.Sprintf("Declared type %s", typeStyle.Render(t.declared.String())))
		if m.count {
			b.WriteString(" (as $count)")
		}
		if m.null {
			b.WriteString(" (null)")
		}
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		switch {
		case m.err != nil:
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		default:
			b.WriteString(resultStyle.Render(fmt.Sprintf("%q", m.result)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+t $count • ctrl+n null • esc back • ctrl+c quit"))
	}

	return b.String()
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick a type and watch the raw value text as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := tea.NewProgram(newInteractiveModel(a),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}
