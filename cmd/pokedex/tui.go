package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/views"
	"github.com/nathanieltooley/pokedex/views/mainmenu"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		global.TERM_WIDTH, global.TERM_HEIGHT = msg.Width, msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, global.QuitKey) {
			return m, tea.Quit
		}
	}

	newView, cmd := m.currentView.Update(msg)
	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive Pokedex (the default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}
}

func runTUI(ctx context.Context) error {
	viewCtx := views.Context{
		Client:    global.NewClient(),
		Corpus:    dex.NewCorpusCache(),
		PrefsPath: global.Opt.PrefsLocation,
	}

	log.Info().Str("api", global.Opt.API.BaseURL).Msg("starting tui")

	m := model{currentView: mainmenu.NewModel(viewCtx)}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}

	return nil
}
