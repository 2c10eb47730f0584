package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/errorutils"
	"github.com/rs/zerolog/log"
)

// NotFoundMessage is shown for any failed lookup, missing or otherwise
const NotFoundMessage = "Error: Pokemon Not Found!"

// DexClient is everything the screens need from the api
type DexClient interface {
	dex.NameLoader
	dex.TypeFetcher
	FetchPokemon(ctx context.Context, nameOrID string) (dex.Pokemon, error)
	FetchPokemonByID(ctx context.Context, id int) (dex.Pokemon, error)
	FetchEncounters(ctx context.Context, id int) ([]string, error)
	FetchMove(ctx context.Context, move dex.NamedResource) (dex.MoveDetail, error)
}

// Context is shared by every screen for the lifetime of the program
type Context struct {
	Client    DexClient
	Corpus    *dex.CorpusCache
	PrefsPath string
}

// CorpusLoadedMsg is sent once the name list is available
type CorpusLoadedMsg struct {
	Corpus dex.Corpus
	Err    error
}

// LoadCorpus fetches the name list unless this session already has it
func LoadCorpus(ctx Context) tea.Cmd {
	return func() tea.Msg {
		if ctx.Corpus.Loaded() {
			return CorpusLoadedMsg{Corpus: ctx.Corpus.Snapshot()}
		}

		err := ctx.Corpus.Load(context.Background(), ctx.Client)
		if err != nil {
			log.Err(err).Msg("couldn't load pokemon names, suggestions are disabled")
		}

		return CorpusLoadedMsg{Corpus: ctx.Corpus.Snapshot(), Err: err}
	}
}

// NewCycleID tags one round of fetches so their log lines can be matched up
func NewCycleID() string {
	return errorutils.Must(uuid.NewRandom()).String()
}
