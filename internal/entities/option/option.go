// Package option models the inclusion options a player sets for a title and
// validates host-supplied values against their declared domains.
package option

import (
	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

// Kind is the value domain of an option.
type Kind string

const (
	// KindToggle options hold a single boolean.
	KindToggle Kind = "toggle"
	// KindSet options hold a subset of their valid keys.
	KindSet Kind = "set"
)

// Definition declares one inclusion option of a title.
type Definition struct {
	// Key is namespaced per title, e.g. "gran_turismo_4_career_sections".
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Kind        Kind   `json:"kind"`

	// DefaultOn is the toggle value used when the host supplies none.
	DefaultOn bool `json:"default_on,omitempty"`

	// ValidKeys is the ordered domain of a set option.
	ValidKeys []string `json:"valid_keys,omitempty"`

	// DefaultKeys is the set value used when the host supplies none. Nil
	// means every valid key.
	DefaultKeys []string `json:"default_keys,omitempty"`
}

// Toggle declares a boolean option.
func Toggle(key, displayName, description string, defaultOn bool) Definition {
	return Definition{
		Key:         key,
		DisplayName: displayName,
		Description: description,
		Kind:        KindToggle,
		DefaultOn:   defaultOn,
	}
}

// Set declares a set option that defaults to every valid key.
func Set(key, displayName, description string, validKeys ...string) Definition {
	return Definition{
		Key:         key,
		DisplayName: displayName,
		Description: description,
		Kind:        KindSet,
		ValidKeys:   validKeys,
	}
}

// Allows reports whether member is in the declared domain of a set option.
func (d Definition) Allows(member string) bool {
	if d.Kind != KindSet {
		return false
	}
	for _, k := range d.ValidKeys {
		if k == member {
			return true
		}
	}
	return false
}

// Validate checks that the definition is internally consistent.
func (d Definition) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("key", d.Key, vb)
	errors.ValidateEnum("kind", string(d.Kind), []string{string(KindToggle), string(KindSet)}, vb)

	switch d.Kind {
	case KindToggle:
		if len(d.ValidKeys) > 0 || len(d.DefaultKeys) > 0 {
			vb.Field("valid_keys", "toggle options cannot declare keys")
		}
	case KindSet:
		if len(d.ValidKeys) == 0 {
			vb.RequiredField("valid_keys")
		}
		seen := make(map[string]bool, len(d.ValidKeys))
		for _, k := range d.ValidKeys {
			if seen[k] {
				vb.Fieldf("valid_keys", "duplicate key %q", k)
			}
			seen[k] = true
		}
		for _, k := range d.DefaultKeys {
			if !seen[k] {
				vb.Fieldf("default_keys", "%q is not a valid key", k)
			}
		}
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid option %s", d.Key)
	}
	return nil
}

func (d Definition) defaultValue() Value {
	if d.Kind == KindToggle {
		return Value{kind: KindToggle, on: d.DefaultOn}
	}
	keys := d.DefaultKeys
	if keys == nil {
		keys = d.ValidKeys
	}
	return newSetValue(d, keys)
}
