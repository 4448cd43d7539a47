package games

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

// EntityType is reported by every provider through core.Entity.
const EntityType = "game"

// Provider exposes one title's objective templates under a fixed set of
// validated settings. Providers are immutable and safe for concurrent use.
type Provider interface {
	core.Entity

	Name() string
	Platform() Platform
	IsAdultOnlyOrUnrated() bool

	// Categories returns every category of the title, enabled or not.
	Categories() []*Category

	// ListEnabledObjectiveTemplates concatenates the templates of every
	// enabled category in declaration order.
	ListEnabledObjectiveTemplates() []objective.Template

	// ListOptionalConstraints returns the optional constraint templates.
	ListOptionalConstraints() []objective.Template
}

// ProviderConfig holds the inputs of NewProvider.
type ProviderConfig struct {
	Title    *Title
	Settings *option.Settings
}

// Validate ensures all required inputs are provided
func (c *ProviderConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Title == nil {
		vb.RequiredField("Title")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}

	return vb.Build()
}

type provider struct {
	title      *Title
	categories []*Category
}

// NewProvider binds a title to settings.
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	categories := make([]*Category, 0, len(cfg.Title.Categories))
	for _, spec := range cfg.Title.Categories {
		categories = append(categories, &Category{
			name:     spec.Name,
			requires: spec.Requires,
			build:    spec.Build,
			settings: cfg.Settings,
		})
	}

	return &provider{
		title:      cfg.Title,
		categories: categories,
	}, nil
}

func (p *provider) GetID() string              { return p.title.ID }
func (p *provider) GetType() string            { return EntityType }
func (p *provider) Name() string               { return p.title.Name }
func (p *provider) Platform() Platform         { return p.title.Platform }
func (p *provider) IsAdultOnlyOrUnrated() bool { return p.title.AdultOnlyOrUnrated }

func (p *provider) Categories() []*Category {
	out := make([]*Category, len(p.categories))
	copy(out, p.categories)
	return out
}

func (p *provider) ListEnabledObjectiveTemplates() []objective.Template {
	templates := []objective.Template{}
	for _, c := range p.categories {
		templates = append(templates, c.Templates()...)
	}
	return templates
}

func (p *provider) ListOptionalConstraints() []objective.Template {
	return []objective.Template{}
}
