// Package granturismo describes Gran Turismo (PS1).
package granturismo

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

// ID is the title's namespace.
const ID = "gran_turismo"

const (
	OptionArcadeMode     = ID + "_include_arcade_mode"
	OptionCareerMode     = ID + "_include_career_mode"
	OptionCareerSections = ID + "_career_sections"
)

// Gran Turismo Mode sections.
const (
	SectionLicenses      = "Licenses"
	SectionGTLeague      = "GT League"
	SectionSpecialEvents = "Special Events"
	SectionSpotRaces     = "Spot Races"
	SectionEndurance     = "Endurance"
)

// CategoryArcade is the only category not tied to a career section.
const CategoryArcade = "Arcade Mode"

// Title returns the static description of Gran Turismo.
func Title() *games.Title {
	return &games.Title{
		ID:       ID,
		Name:     "Gran Turismo",
		Platform: games.PlatformPS1,
		Definitions: []option.Definition{
			option.Toggle(OptionArcadeMode, "Include Arcade Mode",
				"Allow Arcade Mode races as objectives", true),
			option.Toggle(OptionCareerMode, "Include Gran Turismo Mode",
				"Allow Gran Turismo Mode races as objectives", true),
			option.Set(OptionCareerSections, "Gran Turismo Mode Objective Areas",
				"Which parts of Gran Turismo Mode are allowed for objectives",
				SectionLicenses, SectionGTLeague, SectionSpecialEvents, SectionSpotRaces, SectionEndurance),
		},
		Categories: []games.CategorySpec{
			{
				Name:     CategoryArcade,
				Requires: []games.Requirement{games.Requires(OptionArcadeMode)},
				Build:    arcadeObjectives,
			},
			career(SectionLicenses, licenceObjectives),
			career(SectionGTLeague, leagueObjectives),
			career(SectionSpecialEvents, eventObjectives),
			career(SectionSpotRaces, spotRaceObjectives),
			career(SectionEndurance, enduranceObjectives),
		},
	}
}

func career(section string, build func() []objective.Template) games.CategorySpec {
	return games.CategorySpec{
		Name: section,
		Requires: []games.Requirement{
			games.Requires(OptionCareerMode),
			games.RequiresMember(OptionCareerSections, section),
		},
		Build: build,
	}
}
