package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
)

type ViewButton struct {
	Name    string
	OnClick func() (tea.Model, tea.Cmd)
}

type MenuButtons struct {
	buttons []ViewButton
	index   int
}

func NewMenuButton(buttons []ViewButton) MenuButtons {
	return MenuButtons{
		buttons: buttons,
	}
}

// Update only returns a non nil model when a button is clicked
func (m *MenuButtons) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.buttons) == 0 {
		return nil, nil
	}

	switch {
	case key.Matches(keyMsg, global.MenuDownKey, global.DownTabKey):
		m.index = (m.index + 1) % len(m.buttons)
	case key.Matches(keyMsg, global.MenuUpKey, global.UpTabKey):
		m.index = (m.index - 1 + len(m.buttons)) % len(m.buttons)
	case key.Matches(keyMsg, global.SelectKey):
		if m.index >= 0 {
			return m.buttons[m.index].OnClick()
		}
	}

	return nil, nil
}

func (m MenuButtons) Index() int {
	return m.index
}

func (m MenuButtons) View() string {
	views := make([]string, len(m.buttons))
	for i, button := range m.buttons {
		if i == m.index {
			views[i] = rendering.HighlightedButtonStyle.Render(button.Name)
		} else {
			views[i] = rendering.ButtonStyle.Render(button.Name)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, views...)
}
