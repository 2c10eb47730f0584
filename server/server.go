// Package server exposes the dex over a small read-only JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/pokeapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const DefaultPort uint16 = 8080

var serverLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "server").Logger()
	return &logger
}

// API is the part of the pokeapi client the server needs
type API interface {
	dex.NameLoader
	dex.TypeFetcher
	FetchPokemon(ctx context.Context, nameOrID string) (dex.Pokemon, error)
	FetchEncounters(ctx context.Context, id int) ([]string, error)
}

type Handler struct {
	API    API
	Corpus *dex.CorpusCache
}

func NewHandler(api API, corpus *dex.CorpusCache) *Handler {
	return &Handler{API: api, Corpus: corpus}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)                        // GET /health
	rg.GET("/suggest", h.suggest)                      // GET /suggest?q=char
	rg.GET("/pokemon/:name", h.pokemon)                // GET /pokemon/pikachu
	rg.GET("/pokemon/:name/encounters", h.encounters)  // GET /pokemon/pikachu/encounters
	rg.GET("/pokemon/:name/matchup", h.pokemonMatchup) // GET /pokemon/pikachu/matchup
	rg.GET("/matchup", h.matchup)                      // GET /matchup?types=fire,flying
	rg.GET("/normalize/:value", h.normalize)           // GET /normalize/128
}

// NewRouter builds the gin engine with logging through zerolog
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	h.RegisterRoutes(&router.RouterGroup)
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		serverLogger().Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"corpus_loaded": h.Corpus.Loaded(),
		"corpus_size":   h.Corpus.Snapshot().Len(),
	})
}

func (h *Handler) suggest(c *gin.Context) {
	c.JSON(http.StatusOK, dex.Suggest(c.Query("q"), h.Corpus.Snapshot()))
}

func (h *Handler) pokemon(c *gin.Context) {
	pokemon, ok := h.fetchPokemon(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pokemon": pokemon,
		"height":  dex.FormatHeight(pokemon.Height),
		"weight":  dex.FormatWeight(pokemon.Weight),
		"bars":    dex.StatBars(pokemon),
	})
}

func (h *Handler) encounters(c *gin.Context) {
	pokemon, ok := h.fetchPokemon(c)
	if !ok {
		return
	}

	locations, err := h.API.FetchEncounters(c.Request.Context(), pokemon.ID)
	if err != nil {
		serverLogger().Err(err).Int("id", pokemon.ID).Msg("error fetching encounters")
		locations = []string{dex.UnknownLocation}
	}

	c.JSON(http.StatusOK, gin.H{"name": pokemon.Name, "locations": locations})
}

func (h *Handler) pokemonMatchup(c *gin.Context) {
	pokemon, ok := h.fetchPokemon(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dex.Aggregate(c.Request.Context(), pokemon.Types, h.API))
}

func (h *Handler) matchup(c *gin.Context) {
	// types=fire,flying OR types=fire&types=flying
	types := c.QueryArray("types")
	if len(types) == 1 {
		types = strings.Split(types[0], ",")
	}
	types = lo.Compact(lo.Map(types, func(t string, _ int) string {
		return dex.CanonicalName(t)
	}))

	if len(types) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "types is required"})
		return
	}

	c.JSON(http.StatusOK, dex.Aggregate(c.Request.Context(), types, h.API))
}

func (h *Handler) normalize(c *gin.Context) {
	value, err := strconv.Atoi(c.Param("value"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be an integer"})
		return
	}

	maxValue := dex.MaxStatValue
	if s := c.Query("max"); s != "" {
		if maxValue, err = strconv.Atoi(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max must be an integer"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"value": value, "max": maxValue, "percent": dex.NormalizeStat(value, maxValue)})
}

func (h *Handler) fetchPokemon(c *gin.Context) (dex.Pokemon, bool) {
	name := c.Param("name")

	pokemon, err := h.API.FetchPokemon(c.Request.Context(), name)
	if errors.Is(err, pokeapi.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return pokemon, false
	}
	if err != nil {
		serverLogger().Err(err).Str("name", name).Msg("error fetching pokemon")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
		return pokemon, false
	}

	return pokemon, true
}

// Run serves the api on addr until ctx is cancelled.
// The name list is loaded in the background; suggestions are empty until it arrives.
func Run(ctx context.Context, addr string, api API) error {
	gin.SetMode(gin.ReleaseMode)

	corpus := dex.NewCorpusCache()
	go func() {
		if err := corpus.Load(ctx, api); err != nil {
			serverLogger().Err(err).Msg("couldn't load pokemon names")
		}
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(NewHandler(api, corpus)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		serverLogger().Info().Str("addr", addr).Msg("server is now listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverLogger().Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}
