package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/shared/prefs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves [name-or-id]",
		Short: "List a pokemon's moves, defaulting to the selected pokemon",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMoves(cmd, args)
		},
	}
}

func runMoves(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := global.NewClient()

	var query string
	if len(args) == 1 {
		query = args[0]
	} else {
		selected, err := prefs.LoadSelectedPokemon(global.Opt.PrefsLocation)
		if errors.Is(err, prefs.ErrNoSuchKey) {
			return errors.New("no pokemon selected, pass a name or use lookup --select first")
		}
		if err != nil {
			return fmt.Errorf("reading selected pokemon: %w", err)
		}
		query = selected
	}

	pokemon, err := client.FetchPokemon(ctx, query)
	if err != nil {
		return fmt.Errorf("looking up %q: %w", query, err)
	}

	moves := make([]*dex.MoveDetail, len(pokemon.Moves))

	var wg sync.WaitGroup
	for i, move := range pokemon.Moves {
		wg.Add(1)
		go func() {
			defer wg.Done()

			detail, err := client.FetchMove(ctx, move)
			if err != nil {
				log.Err(err).Str("move", move.Name).Msg("error fetching move")
				return
			}
			moves[i] = &detail
		}()
	}
	wg.Wait()

	for _, move := range moves {
		if move != nil {
			fmt.Fprintln(cmd.OutOrStdout(), dex.FormatMove(*move))
		}
	}

	return nil
}
