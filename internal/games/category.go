package games

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
)

// Category is one gated grouping of a provider's templates.
type Category struct {
	name     string
	requires []Requirement
	build    func() []objective.Template
	settings *option.Settings
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Requirements returns a copy of the gating requirements.
func (c *Category) Requirements() []Requirement {
	out := make([]Requirement, len(c.requires))
	copy(out, c.requires)
	return out
}

// Enabled reports whether every requirement holds.
func (c *Category) Enabled() bool {
	for _, r := range c.requires {
		if !r.Holds(c.settings) {
			return false
		}
	}
	return true
}

// Build assembles the category's templates regardless of gating. Templates
// bound to a source with no candidates are omitted.
func (c *Category) Build() []objective.Template {
	if c.build == nil {
		return []objective.Template{}
	}
	return objective.Assemble(c.build()...)
}

// Templates returns Build when the category is enabled, otherwise an empty
// list.
func (c *Category) Templates() []objective.Template {
	if !c.Enabled() {
		return []objective.Template{}
	}
	return c.Build()
}
