package option

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

// Warning describes host input that was ignored while resolving settings.
type Warning struct {
	Option  string `json:"option"`
	Member  string `json:"member,omitempty"`
	Message string `json:"message"`
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	if w.Member != "" {
		return fmt.Sprintf("%s: %q %s", w.Option, w.Member, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Option, w.Message)
}

// Settings is the validated, immutable set of option values for one title.
type Settings struct {
	defs   map[string]Definition
	order  []string
	values map[string]Value
}

// Defaults returns settings holding every option's declared default.
func Defaults(defs []Definition) *Settings {
	s := newSettings(defs)
	for _, d := range defs {
		s.values[d.Key] = d.defaultValue()
	}
	return s
}

// Resolve validates raw host values against defs. It is the single place
// where host input is checked:
//   - options missing from raw take their declared default;
//   - set members outside the declared domain are dropped with a warning;
//   - keys that match no definition are ignored with a warning;
//   - values of the wrong type are an InvalidArgument error.
func Resolve(defs []Definition, raw map[string]any) (*Settings, []Warning, error) {
	s := Defaults(defs)
	var warnings []Warning

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vb := errors.NewValidationBuilder()
	for _, key := range keys {
		def, ok := s.defs[key]
		if !ok {
			warnings = append(warnings, Warning{Option: key, Message: "is not an option of this game"})
			continue
		}

		switch def.Kind {
		case KindToggle:
			on, ok := raw[key].(bool)
			if !ok {
				vb.Fieldf(key, "must be a boolean, got %T", raw[key])
				continue
			}
			s.values[key] = ToggleValue(on)

		case KindSet:
			members, err := setMembers(raw[key])
			if err != nil {
				vb.Field(key, err.Error())
				continue
			}
			for _, m := range members {
				if !def.Allows(m) {
					warnings = append(warnings, Warning{Option: key, Member: m, Message: "is not a recognized key"})
				}
			}
			s.values[key] = newSetValue(def, members)
		}
	}

	if err := vb.Build(); err != nil {
		return nil, warnings, err
	}
	return s, warnings, nil
}

func setMembers(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("members must be strings, got %T", item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a list of strings, got %T", raw)
	}
}

func newSettings(defs []Definition) *Settings {
	s := &Settings{
		defs:   make(map[string]Definition, len(defs)),
		order:  make([]string, 0, len(defs)),
		values: make(map[string]Value, len(defs)),
	}
	for _, d := range defs {
		s.defs[d.Key] = d
		s.order = append(s.order, d.Key)
	}
	return s
}

// Enabled reads a toggle. Unknown keys and set options read as false.
func (s *Settings) Enabled(key string) bool {
	if s == nil {
		return false
	}
	return s.values[key].Bool()
}

// Has tests set membership. It fails closed: an unknown option, a toggle,
// or a member outside the declared domain all read as false.
func (s *Settings) Has(key, member string) bool {
	if s == nil {
		return false
	}
	return s.values[key].Has(member)
}

// Value returns the value of key.
func (s *Settings) Value(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Raw returns every value in host configuration shape, keyed by option.
func (s *Settings) Raw() map[string]any {
	out := make(map[string]any, len(s.order))
	for _, k := range s.order {
		out[k] = s.values[k].Raw()
	}
	return out
}
