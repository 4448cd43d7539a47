package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/keep-objectives/internal/orchestrators/objectives"
)

func newGamesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the supported titles and their options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				out, err := a.service.ListGames(ctx, &objectives.ListGamesInput{})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out.Games)
			})
		},
	}
}
