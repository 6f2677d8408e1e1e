package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	a := &app{configPath: writeConfig(t, enumConfig)}
	cmd := &cobra.Command{}
	require.NoError(t, a.setup(cmd))
	return a
}

func press(m *interactiveModel, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+t":
			msg = tea.KeyMsg{Type: tea.KeyCtrlT}
		case "ctrl+n":
			msg = tea.KeyMsg{Type: tea.KeyCtrlN}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func selectType(t *testing.T, m *interactiveModel, name string) {
	t.Helper()
	for i, ti := range m.types {
		if ti.name == name {
			m.selected = i
			press(m, "enter")
			require.Equal(t, stateInputValue, m.state)
			return
		}
	}
	t.Fatalf("type %s not listed", name)
}

func TestInteractive_ListsTypes(t *testing.T) {
	m := newInteractiveModel(newTestApp(t))

	var names []string
	for _, ti := range m.types {
		names = append(names, ti.name)
	}
	assert.Equal(t, "bool", names[0])
	assert.Contains(t, names, "Color")
	assert.Contains(t, names, "Size")

	press(m, "down", "down")
	assert.Equal(t, 2, m.selected)
	assert.Contains(t, m.View(), "> s8")
}

func TestInteractive_LiveRender(t *testing.T) {
	m := newInteractiveModel(newTestApp(t))
	selectType(t, m, "f64")

	press(m, "5", ".", "0")
	require.NoError(t, m.err)
	assert.Equal(t, "5", m.result)
	assert.Contains(t, m.View(), `"5"`)

	press(m, "x")
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}

func TestInteractive_Flags(t *testing.T) {
	m := newInteractiveModel(newTestApp(t))
	selectType(t, m, "Color")

	press(m, "Red,Blue")
	require.NoError(t, m.err)
	assert.Equal(t, "Red, Blue", m.result)
}

func TestInteractive_CountAndNull(t *testing.T) {
	m := newInteractiveModel(newTestApp(t))
	selectType(t, m, "string")

	press(m, "1", "2")
	assert.Equal(t, "12", m.result)

	press(m, "ctrl+t")
	require.NoError(t, m.err)
	assert.Equal(t, "12", m.result)
	assert.Contains(t, m.View(), "(as $count)")

	press(m, "ctrl+t", "ctrl+n")
	assert.Error(t, m.err, "null is rejected by default")

	press(m, "esc")
	assert.Equal(t, stateSelectType, m.state)
	assert.Nil(t, m.err)
}
