// Package objective defines objective templates and their resolution into
// concrete objective text.
package objective

import (
	"regexp"
	"sort"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

// DefaultWeight is the selection weight every Gran Turismo template carries.
const DefaultWeight = 3

// tokenPattern matches a whole word of two or more uppercase ASCII letters.
// Single capitals ("Class R") are literal text.
var tokenPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// Source is a named, side-effect free producer of placeholder candidates.
type Source struct {
	// Name identifies the source inside its title, e.g. "arcade_tracks".
	Name string

	// Values returns a fresh copy of the candidates on every call.
	Values func() []string

	// Optional sources may legitimately be empty for a title. Required
	// sources must yield at least one candidate.
	Optional bool
}

// Binding ties a placeholder token to a source and the number of distinct
// candidates to draw from it.
type Binding struct {
	Source Source
	Count  int
}

// Bind draws a single candidate from src.
func Bind(src Source) Binding {
	return Binding{Source: src, Count: 1}
}

// Template is one parametrized objective a player could be assigned.
type Template struct {
	Label           string
	Data            map[string]Binding
	IsTimeConsuming bool
	IsDifficult     bool
	Weight          int
}

// Tokens returns the distinct placeholder tokens of the label in the order
// they first appear.
func (t Template) Tokens() []string {
	return labelTokens(t.Label)
}

func labelTokens(label string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(label, -1) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Validate checks the structural invariants of the template: every label
// token is bound, every binding appears in the label, tokens come from the
// reserved vocabulary, counts and weight are positive.
func (t Template) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("label", t.Label, vb)
	if t.Weight <= 0 {
		vb.Fieldf("weight", "must be positive, got %d", t.Weight)
	}

	inLabel := make(map[string]bool)
	for _, tok := range t.Tokens() {
		inLabel[tok] = true
		if !IsReserved(tok) {
			vb.Fieldf("label", "token %s is not a reserved placeholder", tok)
		}
		if _, ok := t.Data[tok]; !ok {
			vb.Fieldf("data", "token %s has no binding", tok)
		}
	}

	for _, key := range t.keys() {
		b := t.Data[key]
		if !inLabel[key] {
			vb.Fieldf("data", "binding %s does not appear in label", key)
		}
		if b.Count < 1 {
			vb.Fieldf("data", "binding %s count must be at least 1, got %d", key, b.Count)
		}
		if b.Source.Name == "" || b.Source.Values == nil {
			vb.Fieldf("data", "binding %s has an incomplete source", key)
		}
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid template %q", t.Label)
	}
	return nil
}

// keys returns the binding tokens sorted alphabetically.
func (t Template) keys() []string {
	keys := make([]string, 0, len(t.Data))
	for k := range t.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Empty reports whether any bound source yields no candidates at all.
func (t Template) Empty() bool {
	for _, b := range t.Data {
		if b.Source.Values == nil || len(b.Source.Values()) == 0 {
			return true
		}
	}
	return false
}

// Assemble returns the templates whose sources all have candidates. A
// template bound to a structurally absent source is omitted instead of
// being handed to the host to fail at resolution time.
func Assemble(templates ...Template) []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		if t.Empty() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BindingShape is the comparable description of a Binding.
type BindingShape struct {
	Source string `json:"source" yaml:"source"`
	Count  int    `json:"count" yaml:"count"`
}

// Shape is the comparable description of a Template. Two templates with
// equal shapes have the same label, bindings and flags.
type Shape struct {
	Label           string                  `json:"label" yaml:"label"`
	Bindings        map[string]BindingShape `json:"bindings" yaml:"bindings"`
	IsTimeConsuming bool                    `json:"is_time_consuming" yaml:"is_time_consuming"`
	IsDifficult     bool                    `json:"is_difficult" yaml:"is_difficult"`
	Weight          int                     `json:"weight" yaml:"weight"`
}

// Describe returns the shape of the template.
func (t Template) Describe() Shape {
	bindings := make(map[string]BindingShape, len(t.Data))
	for k, b := range t.Data {
		bindings[k] = BindingShape{Source: b.Source.Name, Count: b.Count}
	}
	return Shape{
		Label:           t.Label,
		Bindings:        bindings,
		IsTimeConsuming: t.IsTimeConsuming,
		IsDifficult:     t.IsDifficult,
		Weight:          t.Weight,
	}
}

// Describe returns the shapes of all templates, preserving order.
func Describe(templates []Template) []Shape {
	shapes := make([]Shape, len(templates))
	for i, t := range templates {
		shapes[i] = t.Describe()
	}
	return shapes
}
