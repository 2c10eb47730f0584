// Package main is the pokedex command line: the terminal ui plus scriptable lookups.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanieltooley/pokedex/global"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	apiURL string
	debug  bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "A terminal Pokedex backed by PokeAPI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			global.GlobalInit(true)

			if apiURL != "" {
				global.Opt.API.BaseURL = apiURL
			}
			if debug {
				global.Opt.Debug = true
				global.UpdateLogLevel(debugLevel)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "PokeAPI base url (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(
		newTUICmd(),
		newLookupCmd(),
		newSuggestCmd(),
		newMatchupCmd(),
		newMovesCmd(),
		newCompareCmd(),
		newLocationsCmd(),
		newServeCmd(),
	)

	return rootCmd
}
