package main

import (
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/spf13/cobra"
)

func newMatchupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matchup <type>...",
		Short: "Combine the strengths and weaknesses of one or more types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matchup := dex.Aggregate(cmd.Context(), args, global.NewClient())
			displayMatchup(cmd.OutOrStdout(), matchup)

			return nil
		},
	}
}
