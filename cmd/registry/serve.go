package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/inspection-registry/internal/app"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.resolvedConfigPath())
		},
	}
}
