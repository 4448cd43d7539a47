package games

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
)

// List is a source over a fixed list. Every call returns a fresh copy.
func List(name string, values ...string) objective.Source {
	return objective.Source{
		Name: name,
		Values: func() []string {
			out := make([]string, len(values))
			copy(out, values)
			return out
		},
	}
}

// OptionalList is a List that may legitimately be empty.
func OptionalList(name string, values ...string) objective.Source {
	src := List(name, values...)
	src.Optional = true
	return src
}

// IntRange is a source of the decimal numbers low through high.
func IntRange(name string, low, high int) objective.Source {
	return objective.Source{
		Name: name,
		Values: func() []string {
			if high < low {
				return []string{}
			}
			out := make([]string, 0, high-low+1)
			for n := low; n <= high; n++ {
				out = append(out, strconv.Itoa(n))
			}
			return out
		},
	}
}

// Series names one numbered race series, e.g. "Sunday Cup" with 3 races.
type Series struct {
	Name  string
	Races int
}

// Numbered expands series into "<name> <label> <n>" entries in order, e.g.
// Numbered("Race", {"Sunday Cup", 2}) gives "Sunday Cup Race 1", "Sunday Cup Race 2".
func Numbered(label string, series ...Series) []string {
	var out []string
	for _, s := range series {
		for n := 1; n <= s.Races; n++ {
			out = append(out, fmt.Sprintf("%s %s %d", s.Name, label, n))
		}
	}
	return out
}

// LicenceTests expands licence grades into "<grade>-<n>" tests 1 through
// perGrade.
func LicenceTests(perGrade int, grades ...string) []string {
	out := make([]string, 0, perGrade*len(grades))
	for _, g := range grades {
		for n := 1; n <= perGrade; n++ {
			out = append(out, fmt.Sprintf("%s-%d", g, n))
		}
	}
	return out
}
