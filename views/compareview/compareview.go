package compareview

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const MissingNamesMessage = "Both Pokemon names must be entered!"

var compareLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "compareview").Logger()
	return &logger
}

var slotStyle = rendering.PanelStyle.Width(34).Height(12)

type slotLoadedMsg struct {
	slot    int
	cycle   string
	pokemon dex.Pokemon
	err     error
}

type slot struct {
	pokemon dex.Pokemon
	err     error
}

type nameInput struct {
	box   components.SuggestBox
	label string
}

func (n *nameInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	compareModel := m.(Model)

	var focusCmd tea.Cmd
	if !n.box.Input.Focused() {
		focusCmd = n.box.Focus()
	}

	var (
		cmd     tea.Cmd
		handled bool
	)
	n.box, cmd, handled = n.box.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !handled && key.Matches(keyMsg, global.SelectKey) {
		newModel, compareCmd := compareModel.compare()
		return newModel, tea.Batch(focusCmd, cmd, compareCmd)
	}

	return compareModel, tea.Batch(focusCmd, cmd)
}

func (n *nameInput) Blur() {
	n.box.Blur()
}

func (n *nameInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, n.label, n.box.View())
}

func (n *nameInput) FocusedView() string {
	return lipgloss.JoinVertical(lipgloss.Left, rendering.HighlightedItemStyle.UnsetPaddingLeft().Render(n.label), n.box.View())
}

// Model shows two pokemon side by side. Each side is fetched and filled in on its own.
type Model struct {
	ctx       views.Context
	backtrack components.Breadcrumbs

	first  *nameInput
	second *nameInput
	focus  components.Focus

	slots  [2]slot
	status string
}

func NewModel(ctx views.Context, backtrack components.Breadcrumbs) Model {
	first := &nameInput{box: components.NewSuggestBox("First pokemon"), label: "First Pokemon"}
	second := &nameInput{box: components.NewSuggestBox("Second pokemon"), label: "Second Pokemon"}

	corpus := ctx.Corpus.Snapshot()
	first.box.SetCorpus(corpus)
	second.box.SetCorpus(corpus)
	first.box.Focus()

	return Model{
		ctx:       ctx,
		backtrack: backtrack,
		first:     first,
		second:    second,
		focus:     components.NewFocus(first, second),
	}
}

func (m Model) Init() tea.Cmd {
	return views.LoadCorpus(m.ctx)
}

// Slot returns the pokemon shown on one side and the error from its latest fetch, if any
func (m Model) Slot(index int) (dex.Pokemon, error) {
	return m.slots[index].pokemon, m.slots[index].err
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.CorpusLoadedMsg:
		m.first.box.SetCorpus(msg.Corpus)
		m.second.box.SetCorpus(msg.Corpus)
		return m, nil
	case slotLoadedMsg:
		if msg.err != nil {
			// the slot keeps whatever it was showing
			compareLogger().Err(msg.err).Str("cycle", msg.cycle).Int("slot", msg.slot).Msg("error fetching pokemon to compare")
			m.slots[msg.slot].err = msg.err
			m.status = views.NotFoundMessage
			return m, nil
		}

		m.slots[msg.slot] = slot{pokemon: msg.pokemon}
		if m.status == views.NotFoundMessage && m.slots[0].err == nil && m.slots[1].err == nil {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.BackKey):
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		case key.Matches(msg, global.DownTabKey):
			m.focus.Next()
		case key.Matches(msg, global.UpTabKey):
			m.focus.Prev()
		}
	}

	return m.focus.UpdateFocused(m, msg)
}

func (m Model) compare() (Model, tea.Cmd) {
	firstName := dex.CanonicalName(m.first.box.Value())
	secondName := dex.CanonicalName(m.second.box.Value())

	if firstName == "" || secondName == "" {
		compareLogger().Error().Str("first", firstName).Str("second", secondName).Msg("comparison needs two names")
		m.status = MissingNamesMessage
		return m, nil
	}

	m.status = ""
	cycle := views.NewCycleID()
	compareLogger().Info().Str("cycle", cycle).Str("first", firstName).Str("second", secondName).Msg("comparing")

	return m, tea.Batch(m.fetchSlot(0, cycle, firstName), m.fetchSlot(1, cycle, secondName))
}

func (m Model) fetchSlot(index int, cycle string, name string) tea.Cmd {
	client := m.ctx.Client

	return func() tea.Msg {
		pokemon, err := client.FetchPokemon(context.Background(), name)
		return slotLoadedMsg{slot: index, cycle: cycle, pokemon: pokemon, err: err}
	}
}

func (m Model) slotView(index int) string {
	s := m.slots[index]

	switch {
	case !s.pokemon.IsNil():
		return slotStyle.Render(dex.FormatComparison(s.pokemon))
	case s.err != nil:
		return slotStyle.Render(rendering.ErrorStyle.Render(views.NotFoundMessage))
	default:
		return slotStyle.Render(rendering.StatusStyle.Render("Nothing to compare yet"))
	}
}

func (m Model) View() string {
	inputs := lipgloss.JoinHorizontal(lipgloss.Top, m.focus.Views()[0], "    ", m.focus.Views()[1])
	help := rendering.StatusStyle.Render("tab: switch input  enter: compare  esc: back")

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		rendering.HeaderStyle.Render("Compare"),
		inputs,
		rendering.ErrorStyle.Render(m.status),
		lipgloss.JoinHorizontal(lipgloss.Top, m.slotView(0), m.slotView(1)),
		help,
	))
}
