// Package pokeapi is a small client for the PokeAPI REST endpoints the dex uses.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nathanieltooley/pokedex/dex"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrNotFound is returned when the api has nothing under the requested name or id
var ErrNotFound = errors.New("not found")

var apiLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokeapi").Logger()
	return &logger
}

type Client struct {
	BaseURL   string
	HTTP      *http.Client
	NameLimit int
}

// NewClient creates a client for baseURL. A zero timeout leaves the transport default in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		HTTP:      &http.Client{Timeout: timeout},
		NameLimit: dex.NameListLimit,
	}
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTP.Do(request)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer response.Body.Close()

	apiLogger().Debug().Str("url", endpoint).Int("status", response.StatusCode).Msg("api response")

	if response.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, ErrNotFound)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("requesting %s: unexpected status %s", endpoint, response.Status)
	}

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", endpoint, err)
	}

	return bytes, nil
}

func getJSON[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var value T

	bytes, err := c.get(ctx, endpoint)
	if err != nil {
		return value, err
	}

	if err := json.Unmarshal(bytes, &value); err != nil {
		return value, fmt.Errorf("decoding %s: %w", endpoint, err)
	}

	return value, nil
}

// FollowNamedResource fetches whatever a NamedResource's url points to
func FollowNamedResource[T any](ctx context.Context, c *Client, n dex.NamedResource) (T, error) {
	return getJSON[T](ctx, c, n.Url)
}

// FetchPokemon looks a pokemon up by name or pokedex number
func (c *Client) FetchPokemon(ctx context.Context, nameOrID string) (dex.Pokemon, error) {
	query := dex.CanonicalName(nameOrID)
	if query == "" {
		return dex.Pokemon{}, fmt.Errorf("empty pokemon name: %w", ErrNotFound)
	}

	pre, err := getJSON[PokemonPre](ctx, c, c.BaseURL+"/pokemon/"+url.PathEscape(query))
	if err != nil {
		return dex.Pokemon{}, err
	}

	return pre.ToPokemon(), nil
}

func (c *Client) FetchPokemonByID(ctx context.Context, id int) (dex.Pokemon, error) {
	return c.FetchPokemon(ctx, strconv.Itoa(id))
}

// FetchType gets the damage relations of a type
func (c *Client) FetchType(ctx context.Context, name string) (dex.TypeRelations, error) {
	query := dex.CanonicalName(name)
	if query == "" {
		return dex.TypeRelations{}, fmt.Errorf("empty type name: %w", ErrNotFound)
	}

	pre, err := getJSON[TypePre](ctx, c, c.BaseURL+"/type/"+url.PathEscape(query))
	if err != nil {
		return dex.TypeRelations{}, err
	}

	relations := pre.ToRelations()
	if relations.Name == "" {
		relations.Name = query
	}

	return relations, nil
}

// ListNames gets every pokemon name in a single capped request
func (c *Client) ListNames(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.BaseURL, c.NameLimit)

	response, err := getJSON[NameListResponse](ctx, c, url)
	if err != nil {
		return nil, err
	}

	return lo.Map(response.Results, func(r dex.NamedResource, _ int) string {
		return r.Name
	}), nil
}

// FetchEncounters returns the display names of the areas a pokemon can be found in.
// A response the dex can't read gives the unknown location placeholder, not an error.
func (c *Client) FetchEncounters(ctx context.Context, id int) ([]string, error) {
	bytes, err := c.get(ctx, fmt.Sprintf("%s/pokemon/%d/encounters", c.BaseURL, id))
	if err != nil {
		return nil, err
	}

	return dex.ParseEncounters(bytes), nil
}

func (c *Client) FetchMove(ctx context.Context, move dex.NamedResource) (dex.MoveDetail, error) {
	if move.Url == "" {
		move.Url = c.BaseURL + "/move/" + dex.CanonicalName(move.Name)
	}

	pre, err := FollowNamedResource[MovePre](ctx, c, move)
	if err != nil {
		return dex.MoveDetail{}, err
	}

	return pre.ToMoveDetail(), nil
}
