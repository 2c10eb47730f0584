package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errMissingNames = errors.New("both pokemon names must be entered")

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Show two pokemon side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1])
		},
	}
}

func runCompare(cmd *cobra.Command, first string, second string) error {
	names := [2]string{dex.CanonicalName(first), dex.CanonicalName(second)}
	if names[0] == "" || names[1] == "" {
		log.Error().Strs("names", names[:]).Msg("comparison needs two names")
		return errMissingNames
	}

	ctx := cmd.Context()
	client := global.NewClient()

	var (
		columns [2]string
		wg      sync.WaitGroup
	)

	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()

			pokemon, err := client.FetchPokemon(ctx, name)
			if err != nil {
				log.Err(err).Str("name", name).Msg("error fetching pokemon to compare")
				columns[i] = fmt.Sprintf("%s: not found", name)
				return
			}
			columns[i] = dex.FormatComparison(pokemon)
		}()
	}
	wg.Wait()

	column := lipgloss.NewStyle().Width(compareColumnWidth)
	fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinHorizontal(lipgloss.Top, column.Render(columns[0]), column.Render(columns[1])))

	return nil
}
