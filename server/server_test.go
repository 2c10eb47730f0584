package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/pokeapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	log.Logger = zerolog.Nop()
}

type fakeAPI struct{}

func (fakeAPI) ListNames(context.Context) ([]string, error) {
	return []string{"bulbasaur", "charmander", "charizard"}, nil
}

func (fakeAPI) FetchType(_ context.Context, name string) (dex.TypeRelations, error) {
	switch name {
	case "fire":
		return dex.NewTypeRelations("fire", []string{"grass", "ice", "bug", "steel"}, []string{"water", "ground", "rock"}), nil
	case "flying":
		return dex.NewTypeRelations("flying", []string{"grass", "fighting", "bug"}, []string{"electric", "ice", "rock"}), nil
	}
	return dex.TypeRelations{}, errors.New("boom")
}

func (fakeAPI) FetchPokemon(_ context.Context, name string) (dex.Pokemon, error) {
	switch name {
	case "charizard":
		return dex.Pokemon{ID: 6, Name: "charizard", Height: 17, Weight: 905, Types: []string{"fire", "flying"}}, nil
	case "broken":
		return dex.Pokemon{}, errors.New("connection reset")
	}
	return dex.Pokemon{}, fmt.Errorf("requesting %s: %w", name, pokeapi.ErrNotFound)
}

func (fakeAPI) FetchEncounters(context.Context, int) ([]string, error) {
	return []string{"Route 210"}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	corpus := dex.NewCorpusCache()
	require.NoError(t, corpus.Load(context.Background(), fakeAPI{}))

	return NewRouter(NewHandler(fakeAPI{}, corpus))
}

func get(t *testing.T, router *gin.Engine, url string, out any) int {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}

	return w.Code
}

func TestSuggestRoute(t *testing.T) {
	router := newTestRouter(t)

	var suggestions dex.Suggestions
	assert.Equal(t, http.StatusOK, get(t, router, "/suggest?q=CHAR", &suggestions))
	assert.Equal(t, dex.Suggestions{Options: []string{"charmander", "charizard"}, Visible: true}, suggestions)

	assert.Equal(t, http.StatusOK, get(t, router, "/suggest?q=", &suggestions))
	assert.Equal(t, dex.Suggestions{Options: []string{}, Visible: true}, suggestions)
}

func TestMatchupRoute(t *testing.T) {
	router := newTestRouter(t)

	var matchup dex.Matchup
	assert.Equal(t, http.StatusOK, get(t, router, "/matchup?types=fire,flying", &matchup))
	assert.Equal(t, []string{"bug", "fighting", "grass", "ice", "steel"}, matchup.Strengths)
	assert.Equal(t, []string{"electric", "ground", "ice", "rock", "water"}, matchup.Weaknesses)

	assert.Equal(t, http.StatusOK, get(t, router, "/matchup?types=fire&types=shadow", &matchup))
	assert.Equal(t, []string{"shadow"}, matchup.Failed)

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/matchup", nil))
}

func TestPokemonRoutes(t *testing.T) {
	router := newTestRouter(t)

	var body struct {
		Pokemon dex.Pokemon `json:"pokemon"`
		Height  string      `json:"height"`
		Weight  string      `json:"weight"`
	}
	assert.Equal(t, http.StatusOK, get(t, router, "/pokemon/charizard", &body))
	assert.Equal(t, 6, body.Pokemon.ID)
	assert.Equal(t, "1.7m", body.Height)
	assert.Equal(t, "90.5kg", body.Weight)

	var matchup dex.Matchup
	assert.Equal(t, http.StatusOK, get(t, router, "/pokemon/charizard/matchup", &matchup))
	assert.Contains(t, matchup.Weaknesses, "rock")

	var encounters struct {
		Locations []string `json:"locations"`
	}
	assert.Equal(t, http.StatusOK, get(t, router, "/pokemon/charizard/encounters", &encounters))
	assert.Equal(t, []string{"Route 210"}, encounters.Locations)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/pokemon/missingno", nil))
	assert.Equal(t, http.StatusBadGateway, get(t, router, "/pokemon/broken", nil))
}

func TestNormalizeRoute(t *testing.T) {
	router := newTestRouter(t)

	var body struct {
		Percent float64 `json:"percent"`
	}
	assert.Equal(t, http.StatusOK, get(t, router, "/normalize/255", &body))
	assert.Equal(t, 100.0, body.Percent)

	assert.Equal(t, http.StatusOK, get(t, router, "/normalize/50?max=100", &body))
	assert.Equal(t, 50.0, body.Percent)

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/normalize/abc", nil))
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)

	var body struct {
		CorpusLoaded bool `json:"corpus_loaded"`
		CorpusSize   int  `json:"corpus_size"`
	}
	assert.Equal(t, http.StatusOK, get(t, router, "/health", &body))
	assert.True(t, body.CorpusLoaded)
	assert.Equal(t, 3, body.CorpusSize)
}
