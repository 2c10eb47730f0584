package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/views"
	"github.com/nathanieltooley/pokedex/views/compareview"
	"github.com/nathanieltooley/pokedex/views/dexview"
	"github.com/nathanieltooley/pokedex/views/moveview"
)

type MainMenuModel struct {
	ctx     views.Context
	buttons components.MenuButtons
}

func NewModel(ctx views.Context) MainMenuModel {
	backtrack := components.NewBreadcrumb().PushNew(func() tea.Model { return NewModel(ctx) })

	buttons := []components.ViewButton{
		{
			Name: "Pokedex",
			OnClick: func() (tea.Model, tea.Cmd) {
				m := dexview.NewModel(ctx, backtrack)
				return m, m.Init()
			},
		},
		{
			Name: "Moves",
			OnClick: func() (tea.Model, tea.Cmd) {
				m := moveview.NewModel(ctx, backtrack)
				return m, m.Init()
			},
		},
		{
			Name: "Compare",
			OnClick: func() (tea.Model, tea.Cmd) {
				m := compareview.NewModel(ctx, backtrack)
				return m, m.Init()
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				return newOptionsMenu(backtrack), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				return newHelpMenu(backtrack), nil
			},
		},
	}

	return MainMenuModel{
		ctx:     ctx,
		buttons: components.NewMenuButton(buttons),
	}
}

// Init starts loading the name list so the first search already has suggestions
func (m MainMenuModel) Init() tea.Cmd {
	return views.LoadCorpus(m.ctx)
}

func (m MainMenuModel) View() string {
	header := rendering.HeaderStyle.Render("Pokedex!")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
