package dexview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/shared/prefs"
	"github.com/nathanieltooley/pokedex/views"
	"github.com/nathanieltooley/pokedex/views/moveview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var dexLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "dexview").Logger()
	return &logger
}

var (
	detailStyle = rendering.PanelStyle.Width(48)
	sideStyle   = rendering.PanelStyle.Width(36)
)

type pokemonLoadedMsg struct {
	cycle   string
	query   string
	pokemon dex.Pokemon
	err     error
}

type matchupLoadedMsg struct {
	cycle   string
	matchup dex.Matchup
}

type locationsLoadedMsg struct {
	cycle     string
	locations []string
	err       error
}

type Model struct {
	ctx       views.Context
	backtrack components.Breadcrumbs

	search components.SuggestBox
	bars   components.StatBars

	// id navigation starts from. Set before the fetch so repeated presses keep moving.
	currentID int
	pokemon   dex.Pokemon
	matchup   *dex.Matchup
	locations []string

	status string
}

func NewModel(ctx views.Context, backtrack components.Breadcrumbs) Model {
	search := components.NewSuggestBox("Search for a pokemon")
	search.Focus()
	search.SetCorpus(ctx.Corpus.Snapshot())

	return Model{
		ctx:       ctx,
		backtrack: backtrack,
		search:    search,
		bars:      components.NewStatBars(24),
		currentID: dex.FirstPokemonID,
	}
}

// Init loads the name corpus and opens on the first pokemon
func (m Model) Init() tea.Cmd {
	return tea.Batch(views.LoadCorpus(m.ctx), m.fetchByID(dex.FirstPokemonID))
}

func (m Model) Pokemon() dex.Pokemon {
	return m.pokemon
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.CorpusLoadedMsg:
		m.search.SetCorpus(msg.Corpus)
		return m, nil
	case pokemonLoadedMsg:
		return m.onPokemonLoaded(msg)
	case matchupLoadedMsg:
		dexLogger().Debug().Str("cycle", msg.cycle).Strs("failed", msg.matchup.Failed).Msg("matchup loaded")
		m.matchup = &msg.matchup
		return m, nil
	case locationsLoadedMsg:
		if msg.err != nil {
			dexLogger().Err(msg.err).Str("cycle", msg.cycle).Msg("error fetching encounters")
			m.locations = []string{dex.UnknownLocation}
		} else {
			m.locations = msg.locations
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.BackKey):
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		case key.Matches(msg, global.NextPokemonKey):
			m.currentID = dex.NextID(m.currentID)
			return m, m.fetchByID(m.currentID)
		case key.Matches(msg, global.PrevPokemonKey):
			m.currentID = dex.PrevID(m.currentID)
			return m, m.fetchByID(m.currentID)
		case key.Matches(msg, global.OpenMovesKey):
			return m.openMoves()
		}
	}

	var (
		cmd     tea.Cmd
		handled bool
	)
	m.search, cmd, handled = m.search.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !handled && key.Matches(keyMsg, global.SelectKey) {
		return m, tea.Batch(cmd, m.fetchByName(m.search.Value()))
	}

	return m, cmd
}

func (m Model) fetchByName(query string) tea.Cmd {
	cycle := views.NewCycleID()
	dexLogger().Info().Str("cycle", cycle).Str("query", query).Msg("searching")

	client := m.ctx.Client
	return func() tea.Msg {
		pokemon, err := client.FetchPokemon(context.Background(), query)
		return pokemonLoadedMsg{cycle: cycle, query: query, pokemon: pokemon, err: err}
	}
}

func (m Model) fetchByID(id int) tea.Cmd {
	cycle := views.NewCycleID()
	dexLogger().Info().Str("cycle", cycle).Int("id", id).Msg("navigating")

	client := m.ctx.Client
	return func() tea.Msg {
		pokemon, err := client.FetchPokemonByID(context.Background(), id)
		return pokemonLoadedMsg{cycle: cycle, query: fmt.Sprint(id), pokemon: pokemon, err: err}
	}
}

func (m Model) onPokemonLoaded(msg pokemonLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// previous pokemon stays on screen
		dexLogger().Err(msg.err).Str("cycle", msg.cycle).Str("query", msg.query).Msg("error fetching pokemon")
		m.status = views.NotFoundMessage
		return m, nil
	}

	dexLogger().Debug().Str("cycle", msg.cycle).Str("name", msg.pokemon.Name).Int("id", msg.pokemon.ID).Msg("pokemon loaded")

	m.status = ""
	m.pokemon = msg.pokemon
	m.currentID = msg.pokemon.ID
	m.bars = m.bars.SetPokemon(msg.pokemon)
	m.matchup = nil
	m.locations = nil

	client := m.ctx.Client
	pokemon := msg.pokemon

	fetchMatchup := func() tea.Msg {
		return matchupLoadedMsg{cycle: msg.cycle, matchup: dex.Aggregate(context.Background(), pokemon.Types, client)}
	}
	fetchLocations := func() tea.Msg {
		locations, err := client.FetchEncounters(context.Background(), pokemon.ID)
		return locationsLoadedMsg{cycle: msg.cycle, locations: locations, err: err}
	}

	return m, tea.Batch(fetchMatchup, fetchLocations)
}

func (m Model) openMoves() (tea.Model, tea.Cmd) {
	if m.pokemon.IsNil() {
		m.status = "Search for a pokemon first!"
		return m, nil
	}

	if err := prefs.SaveSelectedPokemon(m.ctx.PrefsPath, m.pokemon.Name); err != nil {
		dexLogger().Err(err).Str("path", m.ctx.PrefsPath).Msg("couldn't save selected pokemon")
		m.status = "Error: couldn't save selection"
		return m, nil
	}

	moves := moveview.NewModel(m.ctx, m.backtrack.Push(m))
	return moves, moves.Init()
}

func (m Model) detailView() string {
	if m.pokemon.IsNil() {
		return detailStyle.Render(rendering.StatusStyle.Render("Nothing to show yet"))
	}

	badges := lo.Map(m.pokemon.Types, func(t string, _ int) string {
		return rendering.TypeBadge(t)
	})

	return detailStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		rendering.HeaderStyle.Render(fmt.Sprintf("#%04d %s", m.pokemon.ID, strings.ToUpper(m.pokemon.Name))),
		strings.Join(badges, " "),
		"",
		fmt.Sprintf("Height: %s   Weight: %s", dex.FormatHeight(m.pokemon.Height), dex.FormatWeight(m.pokemon.Weight)),
		fmt.Sprintf("Sprite: %s", m.pokemon.SpriteURL),
		"",
		m.bars.View(),
	))
}

func (m Model) sideView() string {
	if m.pokemon.IsNil() {
		return ""
	}

	matchup := rendering.StatusStyle.Render("Loading...")
	if m.matchup != nil {
		matchup = lipgloss.JoinVertical(lipgloss.Left,
			rendering.HeaderStyle.Render("Strong Against"),
			orNone(dex.FormatTypeList(m.matchup.Strengths)),
			"",
			rendering.HeaderStyle.Render("Weak Against"),
			orNone(dex.FormatTypeList(m.matchup.Weaknesses)),
		)
	}

	locations := rendering.StatusStyle.Render("Loading...")
	if m.locations != nil {
		locations = strings.Join(m.locations, "\n")
	}

	return sideStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		matchup,
		"",
		rendering.HeaderStyle.Render("Locations"),
		locations,
	))
}

func orNone(list string) string {
	if list == "" {
		return "None"
	}

	return list
}

func (m Model) View() string {
	status := rendering.ErrorStyle.Render(m.status)
	help := rendering.StatusStyle.Render("enter: search  ctrl+n/ctrl+p: next/prev  ctrl+o: moves  esc: back")

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		rendering.HeaderStyle.Render("Pokedex"),
		m.search.View(),
		status,
		lipgloss.JoinHorizontal(lipgloss.Top, m.detailView(), m.sideView()),
		help,
	))
}
