package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/keep-objectives/internal/orchestrators/objectives"
	"github.com/KirkDiggler/keep-objectives/internal/repositories/profiles"
)

type profileOutput struct {
	Profile  *profiles.Profile `json:"profile"`
	Warnings []string          `json:"warnings,omitempty"`
}

func newProfileCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved option profiles",
		Long:  `Profiles store a validated set of option values for one game in Redis.`,
	}

	cmd.AddCommand(
		newProfileSaveCmd(flags),
		newProfileShowCmd(flags),
		newProfileDeleteCmd(flags),
		newProfileListCmd(flags),
	)
	return cmd
}

func newProfileSaveCmd(flags *rootFlags) *cobra.Command {
	var id, gameID, name string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the configured values of a game as a profile",
		Long: `Save the values configured for a game as a profile. Without --id a new
profile is created; with --id the existing profile is replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				out, err := a.service.SaveProfile(ctx, &objectives.SaveProfileInput{
					ID:     id,
					GameID: gameID,
					Name:   name,
					Values: a.cfg.GameValues(gameID),
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), profileOutput{
					Profile:  out.Profile,
					Warnings: warningStrings(out.Warnings),
				})
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Profile to replace")
	cmd.Flags().StringVar(&gameID, "game", "", "Game ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("game") // nolint:errcheck // flag is registered above
	return cmd
}

func newProfileShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				out, err := a.service.GetProfile(ctx, &objectives.GetProfileInput{ID: args[0]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), profileOutput{Profile: out.Profile})
			})
		},
	}
}

func newProfileDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				_, err := a.service.DeleteProfile(ctx, &objectives.DeleteProfileInput{ID: args[0]})
				return err
			})
		},
	}
}

func newProfileListCmd(flags *rootFlags) *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the profiles saved for a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				out, err := a.service.ListProfiles(ctx, &objectives.ListProfilesInput{GameID: gameID})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out.Profiles)
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID")
	_ = cmd.MarkFlagRequired("game") // nolint:errcheck // flag is registered above
	return cmd
}
