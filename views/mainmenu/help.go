package mainmenu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
)

type helpMenuModel struct {
	backtrack components.Breadcrumbs
}

func newHelpMenu(backtrack components.Breadcrumbs) helpMenuModel {
	return helpMenuModel{backtrack}
}

func (m helpMenuModel) Init() tea.Cmd { return nil }
func (m helpMenuModel) View() string {
	return rendering.GlobalCenter(
		lipgloss.JoinVertical(lipgloss.Center, rendering.HeaderStyle.Render("Help"),
			"Up / K and Down / J to move through a menu",
			"Enter to select an item in a menu",
			"Type a name and press Enter to search",
			"Up / Down to pick a suggestion, Enter to use it",
			"Ctrl+N / Ctrl+P for the next or previous pokemon",
			"Ctrl+O to see the moves of the current pokemon",
			"Tab to switch between inputs",
			"Esc to move to a previous menu",
			"Ctrl+C to quit",
		),
	)
}

func (m helpMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	return m, nil
}
