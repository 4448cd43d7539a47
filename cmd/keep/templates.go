package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/orchestrators/objectives"
)

// selection holds the flags shared by commands that pick a game's templates
type selection struct {
	gameID    string
	profileID string
}

func (s *selection) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.gameID, "game", "", "Game ID, e.g. gran_turismo_4")
	cmd.Flags().StringVar(&s.profileID, "profile", "", "Saved profile to apply before the configured values")
	_ = cmd.MarkFlagRequired("game") // nolint:errcheck // flag is registered above
}

type templatesOutput struct {
	GameID     string                       `json:"game_id"`
	Settings   map[string]any               `json:"settings"`
	Categories []objectives.CategorySummary `json:"categories"`
	Templates  []objective.Shape            `json:"templates"`
	Warnings   []string                     `json:"warnings,omitempty"`
}

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	sel := &selection{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the objective templates a game enables",
		Long: `List the objective templates enabled for a game under the values configured
in the games section of the config file, optionally on top of a saved profile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				out, err := a.service.ListTemplates(ctx, &objectives.ListTemplatesInput{
					GameID:    sel.gameID,
					ProfileID: sel.profileID,
					Values:    a.cfg.GameValues(sel.gameID),
				})
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), templatesOutput{
					GameID:     out.GameID,
					Settings:   out.Settings,
					Categories: out.Categories,
					Templates:  objective.Describe(out.Templates),
					Warnings:   warningStrings(out.Warnings),
				})
			})
		},
	}
	sel.register(cmd)
	return cmd
}
