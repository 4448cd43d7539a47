package objective

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

const (
	// reasonInsufficientCandidates tags OutOfRange errors raised when a
	// source cannot satisfy its binding count.
	reasonInsufficientCandidates = "insufficient_candidates"

	pickSeparator = ", "
)

// Picker draws count distinct values from candidates. Candidates never
// contain duplicates and always hold at least count values.
type Picker interface {
	Pick(candidates []string, count int) ([]string, error)
}

// DicePicker draws uniformly without replacement using a dice roller.
type DicePicker struct {
	Roller dice.Roller
}

// NewDicePicker returns a picker backed by roller, or by the toolkit's
// default roller when roller is nil.
func NewDicePicker(roller dice.Roller) *DicePicker {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &DicePicker{Roller: roller}
}

// Pick performs a partial Fisher-Yates shuffle driven by die rolls.
func (p *DicePicker) Pick(candidates []string, count int) ([]string, error) {
	if count > len(candidates) {
		return nil, errors.OutOfRangef("cannot pick %d of %d candidates", count, len(candidates))
	}

	pool := make([]string, len(candidates))
	copy(pool, candidates)

	for i := 0; i < count; i++ {
		remaining := len(pool) - i
		roll, err := p.Roller.Roll(remaining)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll for candidate")
		}
		if roll < 1 || roll > remaining {
			return nil, errors.Internalf("roller returned %d for a d%d", roll, remaining)
		}
		j := i + roll - 1
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count], nil
}

// Resolution is a template with every placeholder substituted.
type Resolution struct {
	Text  string
	Picks map[string][]string
}

// Resolve draws candidates for every token of t and substitutes them into
// the label. A source with fewer distinct candidates than its binding count
// fails the whole resolution; nothing is under-filled.
func Resolve(t Template, picker Picker) (*Resolution, error) {
	if picker == nil {
		return nil, errors.InvalidArgument("picker is required")
	}

	for _, tok := range t.Tokens() {
		if _, ok := t.Data[tok]; !ok {
			return nil, errors.Internalf("token %s in %q has no binding", tok, t.Label)
		}
	}

	picks := make(map[string][]string, len(t.Data))
	for _, tok := range t.keys() {
		b := t.Data[tok]
		if b.Source.Values == nil {
			return nil, errors.Internalf("binding %s in %q has no source", tok, t.Label)
		}

		candidates := distinct(b.Source.Values())
		if len(candidates) < b.Count {
			return nil, insufficientCandidates(tok, b, len(candidates))
		}

		drawn, err := picker.Pick(candidates, b.Count)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to draw %s", tok)
		}
		picks[tok] = drawn
	}

	return &Resolution{
		Text:  Substitute(t.Label, picks),
		Picks: picks,
	}, nil
}

// Substitute replaces every whole-word token of label that has picks. The
// label is scanned once, so substituted text is never treated as a token.
func Substitute(label string, picks map[string][]string) string {
	return tokenPattern.ReplaceAllStringFunc(label, func(word string) string {
		values, ok := picks[word]
		if !ok {
			return word
		}
		return strings.Join(values, pickSeparator)
	})
}

// IsInsufficientCandidates reports whether err was raised because a source
// could not satisfy its binding count.
func IsInsufficientCandidates(err error) bool {
	return errors.IsOutOfRange(err) && errors.GetMeta(err)["reason"] == reasonInsufficientCandidates
}

func insufficientCandidates(token string, b Binding, available int) error {
	return errors.OutOfRangef("token %s needs %d candidates from %s, only %d available",
		token, b.Count, b.Source.Name, available).
		WithMeta("reason", reasonInsufficientCandidates).
		WithMeta("token", token).
		WithMeta("source", b.Source.Name).
		WithMeta("required", b.Count).
		WithMeta("available", available)
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
