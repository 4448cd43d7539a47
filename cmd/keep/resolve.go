package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/orchestrators/objectives"
)

type resolveOutput struct {
	Objectives []*objective.Objective `json:"objectives"`
	Warnings   []string               `json:"warnings,omitempty"`
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	sel := &selection{}
	var (
		index int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve enabled templates into concrete objectives",
		Long: `Resolve one enabled template, chosen by its position in the templates
listing, or every enabled template with --all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				values := a.cfg.GameValues(sel.gameID)

				if all {
					out, err := a.service.ResolveAll(ctx, &objectives.ResolveAllInput{
						GameID:    sel.gameID,
						ProfileID: sel.profileID,
						Values:    values,
					})
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), resolveOutput{
						Objectives: out.Objectives,
						Warnings:   warningStrings(out.Warnings),
					})
				}

				listed, err := a.service.ListTemplates(ctx, &objectives.ListTemplatesInput{
					GameID:    sel.gameID,
					ProfileID: sel.profileID,
					Values:    values,
				})
				if err != nil {
					return err
				}
				if index < 0 || index >= len(listed.Templates) {
					return errors.OutOfRangef("index %d is outside the %d enabled templates", index, len(listed.Templates))
				}

				out, err := a.service.ResolveTemplate(ctx, &objectives.ResolveTemplateInput{
					GameID:   sel.gameID,
					Template: listed.Templates[index],
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resolveOutput{
					Objectives: []*objective.Objective{out.Objective},
					Warnings:   warningStrings(listed.Warnings),
				})
			})
		},
	}

	sel.register(cmd)
	cmd.Flags().IntVar(&index, "index", 0, "Position of the template to resolve")
	cmd.Flags().BoolVar(&all, "all", false, "Resolve every enabled template")
	cmd.MarkFlagsOneRequired("index", "all")
	cmd.MarkFlagsMutuallyExclusive("index", "all")
	return cmd
}
