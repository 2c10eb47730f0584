package moveview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/shared/prefs"
	"github.com/nathanieltooley/pokedex/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var moveLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "moveview").Logger()
	return &logger
}

type pokemonLoadedMsg struct {
	cycle   string
	pokemon dex.Pokemon
	err     error
}

type moveLoadedMsg struct {
	cycle string
	move  dex.MoveDetail
	err   error
}

// Model lists the moves of the pokemon last selected in the dex.
// Rows show up in the order their fetches finish.
type Model struct {
	ctx       views.Context
	backtrack components.Breadcrumbs

	cycle   string
	pokemon dex.Pokemon
	moves   list.Model
	// moves still being fetched
	pending int

	status string
}

func NewModel(ctx views.Context, backtrack components.Breadcrumbs) Model {
	return Model{
		ctx:       ctx,
		backtrack: backtrack,
		cycle:     views.NewCycleID(),
		moves:     rendering.NewSimpleList([]list.Item{}, 50, max(10, global.TERM_HEIGHT-10)),
		status:    "Loading...",
	}
}

func (m Model) Init() tea.Cmd {
	cycle := m.cycle
	client := m.ctx.Client
	prefsPath := m.ctx.PrefsPath

	return func() tea.Msg {
		name, err := prefs.LoadSelectedPokemon(prefsPath)
		if err != nil {
			return pokemonLoadedMsg{cycle: cycle, err: fmt.Errorf("reading selected pokemon: %w", err)}
		}

		pokemon, err := client.FetchPokemon(context.Background(), name)
		return pokemonLoadedMsg{cycle: cycle, pokemon: pokemon, err: err}
	}
}

func (m Model) Rows() []string {
	items := m.moves.Items()
	rows := make([]string, len(items))
	for i, item := range items {
		rows[i] = item.FilterValue()
	}

	return rows
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pokemonLoadedMsg:
		if msg.cycle != m.cycle {
			return m, nil
		}

		if msg.err != nil {
			moveLogger().Err(msg.err).Str("cycle", msg.cycle).Msg("error loading pokemon for moves")
			m.status = views.NotFoundMessage
			return m, nil
		}

		m.pokemon = msg.pokemon
		m.pending = len(msg.pokemon.Moves)
		m.status = ""
		if m.pending == 0 {
			m.status = "This pokemon has no moves"
		}

		moveLogger().Debug().Str("cycle", m.cycle).Str("name", m.pokemon.Name).Int("moves", m.pending).Msg("fetching moves")

		cmds := make([]tea.Cmd, len(msg.pokemon.Moves))
		for i, move := range msg.pokemon.Moves {
			cmds[i] = m.fetchMove(move)
		}

		return m, tea.Batch(cmds...)
	case moveLoadedMsg:
		if msg.cycle != m.cycle {
			moveLogger().Debug().Str("cycle", msg.cycle).Msg("dropping move from an old screen")
			return m, nil
		}

		m.pending--

		if msg.err != nil {
			moveLogger().Err(msg.err).Str("cycle", msg.cycle).Msg("error fetching move")
			return m, nil
		}

		row := rendering.ColoredItem{Text: dex.FormatMove(msg.move), Color: rendering.TypeColor(msg.move.Type)}
		return m, m.moves.InsertItem(len(m.moves.Items()), row)
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	var cmd tea.Cmd
	m.moves, cmd = m.moves.Update(msg)

	return m, cmd
}

func (m Model) fetchMove(move dex.NamedResource) tea.Cmd {
	cycle := m.cycle
	client := m.ctx.Client

	return func() tea.Msg {
		detail, err := client.FetchMove(context.Background(), move)
		return moveLoadedMsg{cycle: cycle, move: detail, err: err}
	}
}

func (m Model) View() string {
	header := "Moves"
	if !m.pokemon.IsNil() {
		header = fmt.Sprintf("Moves of %s", strings.ToUpper(m.pokemon.Name))
	}

	footer := rendering.StatusStyle.Render(fmt.Sprintf("%d moves", len(m.moves.Items())))
	if m.pending > 0 {
		footer = rendering.StatusStyle.Render(fmt.Sprintf("%d moves, %d loading", len(m.moves.Items()), m.pending))
	}

	body := m.moves.View()
	switch m.status {
	case "":
	case views.NotFoundMessage:
		body = rendering.ErrorStyle.Render(m.status)
	default:
		body = rendering.StatusStyle.Render(m.status)
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		rendering.HeaderStyle.Render(header),
		rendering.PanelStyle.Render(body),
		footer,
	))
}
