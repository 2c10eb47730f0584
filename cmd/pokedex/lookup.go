package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/shared/prefs"
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	var (
		withLocations bool
		selectIt      bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <name-or-id>",
		Short: "Show a pokemon's details and type matchup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], withLocations, selectIt)
		},
	}

	cmd.Flags().BoolVarP(&withLocations, "locations", "l", false, "Also list where it can be encountered")
	cmd.Flags().BoolVarP(&selectIt, "select", "s", false, "Remember it as the selected pokemon for the moves command")

	return cmd
}

func runLookup(cmd *cobra.Command, query string, withLocations bool, selectIt bool) error {
	ctx := cmd.Context()
	client := global.NewClient()
	out := cmd.OutOrStdout()

	pokemon, err := client.FetchPokemon(ctx, query)
	if err != nil {
		return fmt.Errorf("looking up %q: %w", query, err)
	}

	if selectIt {
		if err := prefs.SaveSelectedPokemon(global.Opt.PrefsLocation, pokemon.Name); err != nil {
			return fmt.Errorf("saving selection: %w", err)
		}
	}

	displayPokemon(out, pokemon)

	fmt.Fprintln(out)
	displayMatchup(out, dex.Aggregate(ctx, pokemon.Types, client))

	if withLocations {
		locations, err := client.FetchEncounters(ctx, pokemon.ID)
		if err != nil {
			return fmt.Errorf("fetching encounters: %w", err)
		}
		displayLocations(out, locations)
	}

	return nil
}

func displayPokemon(out io.Writer, pokemon dex.Pokemon) {
	fmt.Fprintf(out, "#%04d %s\n", pokemon.ID, strings.ToUpper(pokemon.Name))
	fmt.Fprintf(out, "Types: %s\n", dex.FormatTypes(pokemon.Types))
	fmt.Fprintf(out, "Height: %s  Weight: %s\n", dex.FormatHeight(pokemon.Height), dex.FormatWeight(pokemon.Weight))
	if pokemon.SpriteURL != "" {
		fmt.Fprintf(out, "Sprite: %s\n", pokemon.SpriteURL)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, dex.FormatStats(pokemon.Stats))
}

func displayMatchup(out io.Writer, matchup dex.Matchup) {
	fmt.Fprintf(out, "Strong against: %s\n", orNone(dex.FormatTypeList(matchup.Strengths)))
	fmt.Fprintf(out, "Weak against: %s\n", orNone(dex.FormatTypeList(matchup.Weaknesses)))
	if len(matchup.Failed) > 0 {
		fmt.Fprintf(out, "(no data for: %s)\n", strings.Join(matchup.Failed, ", "))
	}
}

func displayLocations(out io.Writer, locations []string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Locations:")
	for _, location := range locations {
		fmt.Fprintf(out, "  %s\n", location)
	}
}

func orNone(list string) string {
	if list == "" {
		return "None"
	}

	return list
}

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations <name-or-id>",
		Short: "List the areas a pokemon can be encountered in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocations(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runLocations(ctx context.Context, out io.Writer, query string) error {
	client := global.NewClient()

	pokemon, err := client.FetchPokemon(ctx, query)
	if err != nil {
		return fmt.Errorf("looking up %q: %w", query, err)
	}

	locations, err := client.FetchEncounters(ctx, pokemon.ID)
	if err != nil {
		return fmt.Errorf("fetching encounters: %w", err)
	}

	for _, location := range locations {
		fmt.Fprintln(out, location)
	}

	return nil
}
