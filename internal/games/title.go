package games

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

// Platform is the console a title runs on.
type Platform string

const (
	PlatformPS1 Platform = "PS1"
	PlatformPS2 Platform = "PS2"
)

// Requirement is one gating condition of a category. An empty Member reads
// the option as a toggle, otherwise it tests set membership.
type Requirement struct {
	Option string `json:"option"`
	Member string `json:"member,omitempty"`
}

// Requires builds a toggle requirement.
func Requires(key string) Requirement {
	return Requirement{Option: key}
}

// RequiresMember builds a set membership requirement.
func RequiresMember(key, member string) Requirement {
	return Requirement{Option: key, Member: member}
}

// Holds evaluates the requirement against settings.
func (r Requirement) Holds(settings *option.Settings) bool {
	if r.Member == "" {
		return settings.Enabled(r.Option)
	}
	return settings.Has(r.Option, r.Member)
}

// CategorySpec is the static description of one category.
type CategorySpec struct {
	Name     string
	Requires []Requirement

	// Build returns every template of the category, unfiltered.
	Build func() []objective.Template
}

// Title is the static table describing one game.
type Title struct {
	ID                 string
	Name               string
	Platform           Platform
	AdultOnlyOrUnrated bool

	Definitions []option.Definition

	// Categories are listed in output order.
	Categories []CategorySpec
}

// Definition looks up an option definition by key.
func (t *Title) Definition(key string) (option.Definition, bool) {
	for _, d := range t.Definitions {
		if d.Key == key {
			return d, true
		}
	}
	return option.Definition{}, false
}

// Validate checks the table once at construction time. Problems found here
// are authoring defects in the title, not host errors.
func (t *Title) Validate() error {
	if t == nil {
		return errors.InvalidArgument("title is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", t.ID, vb)
	errors.ValidateRequired("name", t.Name, vb)
	errors.ValidateRequired("platform", string(t.Platform), vb)

	keys := make(map[string]bool, len(t.Definitions))
	for _, d := range t.Definitions {
		if keys[d.Key] {
			vb.Fieldf("definitions", "duplicate option %s", d.Key)
		}
		keys[d.Key] = true
		if err := d.Validate(); err != nil {
			vb.Field("definitions", err.Error())
		}
	}

	checked := make(map[string]bool)
	names := make(map[string]bool, len(t.Categories))
	for _, c := range t.Categories {
		if c.Name == "" {
			vb.RequiredField("categories.name")
			continue
		}
		if names[c.Name] {
			vb.Fieldf("categories", "duplicate category %s", c.Name)
		}
		names[c.Name] = true

		for _, r := range c.Requires {
			t.validateRequirement(c.Name, r, vb)
		}

		if c.Build == nil {
			vb.Fieldf("categories", "category %s has no builder", c.Name)
			continue
		}
		// Builders return every template, including those Category.Build
		// later drops for an empty optional source.
		for _, tmpl := range c.Build() {
			if err := tmpl.Validate(); err != nil {
				vb.Fieldf("categories", "category %s: %s", c.Name, err.Error())
			}
			for _, b := range tmpl.Data {
				validateSource(c.Name, b.Source, checked, vb)
			}
		}
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid title %s", t.ID)
	}
	return nil
}

func (t *Title) validateRequirement(category string, r Requirement, vb *errors.ValidationBuilder) {
	def, ok := t.Definition(r.Option)
	if !ok {
		vb.Fieldf("categories", "category %s requires unknown option %s", category, r.Option)
		return
	}

	switch {
	case r.Member == "" && def.Kind != option.KindToggle:
		vb.Fieldf("categories", "category %s reads set option %s as a toggle", category, r.Option)
	case r.Member != "" && !def.Allows(r.Member):
		vb.Fieldf("categories", "category %s requires %q which is not a key of %s", category, r.Member, r.Option)
	}
}

// validateSource fails a required source that yields no candidates. Each
// source name is reported once per title.
func validateSource(category string, src objective.Source, checked map[string]bool, vb *errors.ValidationBuilder) {
	if src.Values == nil || checked[src.Name] {
		return
	}
	checked[src.Name] = true

	if !src.Optional && len(src.Values()) == 0 {
		vb.Fieldf("sources", "category %s binds empty source %s", category, src.Name)
	}
}
