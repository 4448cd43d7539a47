// Package objectives implements the orchestrator that turns host
// configuration into objective templates and resolved objectives
package objectives

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/games"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/idgen"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/logger"
	"github.com/KirkDiggler/keep-objectives/internal/repositories/profiles"
)

const (
	objectiveIDPrefix = "obj"
	profileIDPrefix   = "profile"

	// DefaultConcurrency bounds ResolveAll's parallelism
	DefaultConcurrency = 8
)

// Service defines the interface for objective operations
type Service interface {
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)

	ResolveTemplate(ctx context.Context, input *ResolveTemplateInput) (*ResolveTemplateOutput, error)
	ResolveAll(ctx context.Context, input *ResolveAllInput) (*ResolveAllOutput, error)

	// Saved profiles; these fail with FailedPrecondition when no
	// repository is configured
	SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error)
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)
	DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error)
	ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error)
}

// Config holds the dependencies for the objectives orchestrator
type Config struct {
	Registry *games.Registry

	// Optional; defaults are filled in by New
	Roller             dice.Roller
	IDGenerator        idgen.Generator
	ProfileIDGenerator idgen.Generator
	ProfileRepo        profiles.Repository
	Logger             *zap.Logger
	Concurrency        int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Concurrency < 0 {
		vb.Field("Concurrency", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	registry    *games.Registry
	picker      objective.Picker
	idGen       idgen.Generator
	profileIDs  idgen.Generator
	profileRepo profiles.Repository
	log         *zap.Logger
	concurrency int
}

// New creates a new objectives orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID(objectiveIDPrefix)
	}
	profileIDs := cfg.ProfileIDGenerator
	if profileIDs == nil {
		profileIDs = idgen.NewUUID(profileIDPrefix)
	}
	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}

	return &orchestrator{
		registry:    cfg.Registry,
		picker:      objective.NewDicePicker(cfg.Roller),
		idGen:       idGen,
		profileIDs:  profileIDs,
		profileRepo: cfg.ProfileRepo,
		log:         logger.OrNop(cfg.Logger),
		concurrency: concurrency,
	}, nil
}

func (o *orchestrator) ListGames(_ context.Context, _ *ListGamesInput) (*ListGamesOutput, error) {
	titles := o.registry.List()

	out := &ListGamesOutput{Games: make([]GameSummary, 0, len(titles))}
	for _, t := range titles {
		out.Games = append(out.Games, GameSummary{
			ID:                 t.ID,
			Name:               t.Name,
			Platform:           t.Platform,
			AdultOnlyOrUnrated: t.AdultOnlyOrUnrated,
			Options:            t.Definitions,
		})
	}
	return out, nil
}

func (o *orchestrator) ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p, warnings, err := o.provider(ctx, input.GameID, input.ProfileID, input.Values)
	if err != nil {
		return nil, err
	}

	out := &ListTemplatesOutput{
		GameID:    p.provider.GetID(),
		Templates: p.provider.ListEnabledObjectiveTemplates(),
		Settings:  p.settings.Raw(),
		Warnings:  warnings,
	}
	for _, c := range p.provider.Categories() {
		out.Categories = append(out.Categories, CategorySummary{
			Name:      c.Name(),
			Enabled:   c.Enabled(),
			Templates: len(c.Templates()),
		})
	}

	o.log.Debug("listed templates",
		zap.String("game_id", out.GameID),
		zap.Int("templates", len(out.Templates)),
		zap.Int("warnings", len(warnings)))

	return out, nil
}

func (o *orchestrator) ResolveTemplate(ctx context.Context, input *ResolveTemplateInput) (*ResolveTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.registry.Get(input.GameID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled(err.Error())
	}

	obj, err := o.resolve(input.GameID, input.Template)
	if err != nil {
		return nil, err
	}
	return &ResolveTemplateOutput{Objective: obj}, nil
}

func (o *orchestrator) ResolveAll(ctx context.Context, input *ResolveAllInput) (*ResolveAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p, warnings, err := o.provider(ctx, input.GameID, input.ProfileID, input.Values)
	if err != nil {
		return nil, err
	}

	templates := p.provider.ListEnabledObjectiveTemplates()
	objectives := make([]*objective.Objective, len(templates))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)
	for i, t := range templates {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return errors.Canceled(err.Error())
			}
			obj, err := o.resolve(input.GameID, t)
			if err != nil {
				return err
			}
			// Each goroutine owns one slot.
			objectives[i] = obj
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &ResolveAllOutput{Objectives: objectives, Warnings: warnings}, nil
}

func (o *orchestrator) resolve(gameID string, t objective.Template) (*objective.Objective, error) {
	res, err := objective.Resolve(t, o.picker)
	if err != nil {
		o.log.Warn("failed to resolve template",
			zap.String("game_id", gameID),
			zap.String("label", t.Label),
			zap.Error(err))
		return nil, errors.Wrapf(err, "failed to resolve %q", t.Label)
	}

	return &objective.Objective{
		ID:              o.idGen.Generate(),
		GameID:          gameID,
		Label:           t.Label,
		Text:            res.Text,
		Picks:           res.Picks,
		IsTimeConsuming: t.IsTimeConsuming,
		IsDifficult:     t.IsDifficult,
		Weight:          t.Weight,
	}, nil
}

type boundProvider struct {
	provider games.Provider
	settings *option.Settings
}

// provider loads the title, merges profile and explicit values, and
// validates the result at the load boundary.
func (o *orchestrator) provider(ctx context.Context, gameID, profileID string, values map[string]any) (*boundProvider, []option.Warning, error) {
	if gameID == "" {
		return nil, nil, errors.InvalidArgument("game ID is required")
	}

	title, err := o.registry.Get(gameID)
	if err != nil {
		return nil, nil, err
	}

	raw := make(map[string]any, len(values))
	if profileID != "" {
		profile, err := o.loadProfile(ctx, profileID)
		if err != nil {
			return nil, nil, err
		}
		if profile.GameID != gameID {
			return nil, nil, errors.InvalidArgumentf("profile %s belongs to game %s", profileID, profile.GameID).
				WithMeta("profile_id", profileID)
		}
		for k, v := range profile.Values {
			raw[k] = v
		}
	}
	for k, v := range values {
		raw[k] = v
	}

	settings, warnings, err := option.Resolve(title.Definitions, raw)
	if err != nil {
		return nil, warnings, errors.Wrapf(err, "invalid options for %s", gameID)
	}
	for _, w := range warnings {
		o.log.Warn("ignored option input",
			zap.String("game_id", gameID),
			zap.String("option", w.Option),
			zap.String("member", w.Member),
			zap.String("reason", w.Message))
	}

	p, err := games.NewProvider(&games.ProviderConfig{Title: title, Settings: settings})
	if err != nil {
		return nil, warnings, err
	}
	return &boundProvider{provider: p, settings: settings}, warnings, nil
}

func (o *orchestrator) loadProfile(ctx context.Context, id string) (*profiles.Profile, error) {
	if err := o.requireProfiles(); err != nil {
		return nil, err
	}
	out, err := o.profileRepo.Get(ctx, profiles.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load profile %s", id)
	}
	return out.Profile, nil
}
