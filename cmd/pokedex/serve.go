package main

import (
	"fmt"

	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port uint16

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve suggestions, lookups and matchups as a JSON api",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(cmd.Context(), fmt.Sprintf(":%d", port), global.NewClient())
		},
	}

	cmd.Flags().Uint16VarP(&port, "port", "p", server.DefaultPort, "Port to listen on")

	return cmd
}
