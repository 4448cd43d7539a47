// Package granturismo2 describes Gran Turismo 2 (PS1).
package granturismo2

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

const ID = "gran_turismo_2"

const (
	OptionArcadeMode     = ID + "_include_arcade_mode"
	OptionCareerMode     = ID + "_include_career_mode"
	OptionCareerSections = ID + "_career_sections"
)

const (
	SectionLicenses           = "Licenses"
	SectionGTLeague           = "Gran Turismo League"
	SectionSpecialEvents      = "Special Events"
	SectionDirtEvents         = "Dirt Events"
	SectionManufacturerEvents = "Manufacturer Events"
	SectionEventGenerator     = "Event Generator"
	SectionEndurance          = "Endurance"
)

const CategoryArcade = "Arcade Mode"

// Title returns the static description of Gran Turismo 2. Both modes are
// off until the player opts in.
func Title() *games.Title {
	return &games.Title{
		ID:       ID,
		Name:     "Gran Turismo 2",
		Platform: games.PlatformPS1,
		Definitions: []option.Definition{
			option.Toggle(OptionArcadeMode, "Include Arcade Mode",
				"Allow Arcade Mode races as objectives", false),
			option.Toggle(OptionCareerMode, "Include Gran Turismo Mode",
				"Allow Gran Turismo Mode races as objectives", false),
			option.Set(OptionCareerSections, "Gran Turismo Mode Objective Areas",
				"Which parts of Gran Turismo Mode are allowed for objectives. "+
					"The Event Generator is also known as the Event Synthesizer",
				SectionLicenses, SectionGTLeague, SectionSpecialEvents, SectionDirtEvents,
				SectionManufacturerEvents, SectionEventGenerator, SectionEndurance),
		},
		Categories: []games.CategorySpec{
			{
				Name:     CategoryArcade,
				Requires: []games.Requirement{games.Requires(OptionArcadeMode)},
				Build:    arcadeObjectives,
			},
			career(SectionLicenses, licenceObjectives),
			career(SectionGTLeague, leagueObjectives),
			career(SectionSpecialEvents, specialEventObjectives),
			career(SectionDirtEvents, rallyObjectives),
			career(SectionManufacturerEvents, makerObjectives),
			career(SectionEventGenerator, eventGeneratorObjectives),
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
