package main

import (
	"fmt"

	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [prefix]",
		Short: "Print the names starting with prefix, as the search box would suggest them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			corpus := dex.NewCorpusCache()
			if err := corpus.Load(cmd.Context(), global.NewClient()); err != nil {
				return fmt.Errorf("loading names: %w", err)
			}

			for _, option := range dex.Suggest(prefix, corpus.Snapshot()).Options {
				fmt.Fprintln(cmd.OutOrStdout(), option)
			}

			return nil
		},
	}
}
