package dexview

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/shared/prefs"
	"github.com/nathanieltooley/pokedex/views"
	"github.com/nathanieltooley/pokedex/views/moveview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	global.StopLogging()
}

var errMissing = errors.New("missing")

type fakeClient struct {
	pokemon []dex.Pokemon
	types   map[string]dex.TypeRelations
}

func (f fakeClient) ListNames(context.Context) ([]string, error) {
	names := make([]string, len(f.pokemon))
	for i, p := range f.pokemon {
		names[i] = p.Name
	}
	return names, nil
}

func (f fakeClient) FetchType(_ context.Context, name string) (dex.TypeRelations, error) {
	rel, ok := f.types[name]
	if !ok {
		return dex.TypeRelations{}, errMissing
	}
	return rel, nil
}

func (f fakeClient) FetchPokemon(_ context.Context, nameOrID string) (dex.Pokemon, error) {
	query := dex.CanonicalName(nameOrID)
	for _, p := range f.pokemon {
		if p.Name == query || strconv.Itoa(p.ID) == query {
			return p, nil
		}
	}
	return dex.Pokemon{}, errMissing
}

func (f fakeClient) FetchPokemonByID(ctx context.Context, id int) (dex.Pokemon, error) {
	return f.FetchPokemon(ctx, strconv.Itoa(id))
}

func (f fakeClient) FetchEncounters(_ context.Context, id int) ([]string, error) {
	if id == 25 {
		return []string{"Viridian Forest"}, nil
	}
	return []string{dex.UnknownLocation}, nil
}

func (f fakeClient) FetchMove(_ context.Context, move dex.NamedResource) (dex.MoveDetail, error) {
	return dex.MoveDetail{Name: move.Name, Type: "normal"}, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	client := fakeClient{
		pokemon: []dex.Pokemon{
			{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}},
			{ID: 25, Name: "pikachu", Types: []string{"electric"}, Moves: []dex.NamedResource{{Name: "thunder-punch"}}},
			{ID: 26, Name: "raichu", Types: []string{"electric"}},
			{ID: 1025, Name: "pecharunt", Types: []string{"poison", "ghost"}},
		},
		types: map[string]dex.TypeRelations{
			"electric": dex.NewTypeRelations("electric", []string{"flying", "water"}, []string{"ground"}),
		},
	}

	ctx := views.Context{
		Client:    client,
		Corpus:    dex.NewCorpusCache(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.json"),
	}

	return NewModel(ctx, components.NewBreadcrumb())
}

// run executes cmd and every command it batches, returning the resulting messages
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		msgs := make([]tea.Msg, 0)
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}
		return msgs
	}

	return []tea.Msg{msg}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	newModel, cmd := m.Update(msg)
	dexModel, ok := newModel.(Model)
	require.True(t, ok, "expected to stay on the dex screen, got %T", newModel)

	return dexModel, cmd
}

// feed runs cmd and hands all of its messages back to the model
func feed(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	for _, msg := range run(cmd) {
		var next tea.Cmd
		m, next = update(t, m, msg)
		m = feed(t, m, next)
	}

	return m
}

func search(t *testing.T, m Model, name string) Model {
	t.Helper()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	return feed(t, m, cmd)
}

func TestOpensOnFirstPokemon(t *testing.T) {
	m := newTestModel(t)
	m = feed(t, m, m.Init())

	assert.Equal(t, "bulbasaur", m.Pokemon().Name)
	assert.Equal(t, dex.FirstPokemonID, m.currentID)
	assert.Empty(t, m.status)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 2, m.currentID)
	m = feed(t, m, cmd)

	// #2 isn't in the fake dex, so bulbasaur stays up
	assert.Equal(t, views.NotFoundMessage, m.status)
	assert.Equal(t, "bulbasaur", m.Pokemon().Name)
}

func TestSearchShowsPokemon(t *testing.T) {
	m := search(t, newTestModel(t), "Pikachu")

	assert.Equal(t, "pikachu", m.Pokemon().Name)
	assert.Equal(t, 25, m.currentID)
	assert.Empty(t, m.status)

	require.NotNil(t, m.matchup)
	assert.Equal(t, []string{"flying", "water"}, m.matchup.Strengths)
	assert.Equal(t, []string{"ground"}, m.matchup.Weaknesses)
	assert.Equal(t, []string{"Viridian Forest"}, m.locations)
}

func TestFailedSearchKeepsPreviousPokemon(t *testing.T) {
	m := search(t, newTestModel(t), "pikachu")

	m.search.SetValue("")
	m = search(t, m, "missingno")

	assert.Equal(t, views.NotFoundMessage, m.status)
	assert.Equal(t, "pikachu", m.Pokemon().Name)
	assert.Equal(t, []string{"Viridian Forest"}, m.locations)
}

func TestPartialMatchupFailure(t *testing.T) {
	m := search(t, newTestModel(t), "pecharunt")

	require.NotNil(t, m.matchup)
	assert.Empty(t, m.matchup.Strengths)
	assert.Equal(t, []string{"ghost", "poison"}, m.matchup.Failed)
}

func TestNextAndPrevious(t *testing.T) {
	m := search(t, newTestModel(t), "pikachu")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	// id moves before the fetch finishes
	assert.Equal(t, 26, m.currentID)

	m = feed(t, m, cmd)
	assert.Equal(t, "raichu", m.Pokemon().Name)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = feed(t, m, cmd)
	assert.Equal(t, "pikachu", m.Pokemon().Name)
}

func TestNavigationWraps(t *testing.T) {
	m := search(t, newTestModel(t), "pecharunt")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, dex.FirstPokemonID, m.currentID)
	m = feed(t, m, cmd)
	assert.Equal(t, "bulbasaur", m.Pokemon().Name)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, dex.LastPokemonID, m.currentID)
	m = feed(t, m, cmd)
	assert.Equal(t, "pecharunt", m.Pokemon().Name)
}

func TestLastCompletedFetchWins(t *testing.T) {
	m := newTestModel(t)

	raichu, _ := m.ctx.Client.FetchPokemon(context.Background(), "raichu")
	pikachu, _ := m.ctx.Client.FetchPokemon(context.Background(), "pikachu")

	// raichu's request was sent last but pikachu's answer arrives last
	m, _ = update(t, m, pokemonLoadedMsg{cycle: "second", pokemon: raichu})
	m, _ = update(t, m, pokemonLoadedMsg{cycle: "first", pokemon: pikachu})

	assert.Equal(t, "pikachu", m.Pokemon().Name)
}

func TestOpenMovesSavesSelection(t *testing.T) {
	m := search(t, newTestModel(t), "pikachu")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	_, ok := newModel.(moveview.Model)
	require.True(t, ok, "expected the moves screen, got %T", newModel)
	assert.NotNil(t, cmd)

	selected, err := prefs.LoadSelectedPokemon(m.ctx.PrefsPath)
	require.NoError(t, err)
	assert.Equal(t, "pikachu", selected)

	// going back lands on the same dex screen
	back, _ := newModel.Update(tea.KeyMsg{Type: tea.KeyEsc})
	dexModel, ok := back.(Model)
	require.True(t, ok)
	assert.Equal(t, "pikachu", dexModel.Pokemon().Name)
}

func TestOpenMovesWithoutPokemon(t *testing.T) {
	m, cmd := update(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyCtrlO})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.status)

	_, err := prefs.LoadSelectedPokemon(m.ctx.PrefsPath)
	assert.ErrorIs(t, err, prefs.ErrNoSuchKey)
}
