package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

type rootFlags struct {
	configPath string
	logMode    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "keep",
		Short: "Objective templates for Gran Turismo titles",
		Long: `keep lists the objective templates each Gran Turismo title enables under a
configuration, resolves them into concrete objectives and stores reusable
option profiles in Redis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logMode, "log-mode", "", "Override the configured log mode (production, development, nop)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(
		newGamesCmd(flags),
		newTemplatesCmd(flags),
		newResolveCmd(flags),
		newProfileCmd(flags),
	)
	return cmd
}
