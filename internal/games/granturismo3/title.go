// Package granturismo3 describes Gran Turismo 3: A-Spec (PS2).
package granturismo3

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

const ID = "gran_turismo_3"

const (
	OptionArcadeMode     = ID + "_include_arcade_mode"
	OptionCareerMode     = ID + "_include_career_mode"
	OptionCareerSections = ID + "_career_sections"
)

const (
	SectionLicenses           = "Licenses"
	SectionBeginnerLeague     = "Beginner League"
	SectionAmateurLeague      = "Amateur League"
	SectionProfessionalLeague = "Professional League"
	SectionEnduranceLeague    = "Endurance League"
	SectionRallyEvents        = "Rally Events"
)

const CategoryArcade = "Arcade Mode"

func Title() *games.Title {
	return &games.Title{
		ID:       ID,
		Name:     "Gran Turismo 3: A-Spec",
		Platform: games.PlatformPS2,
		Definitions: []option.Definition{
			option.Toggle(OptionArcadeMode, "Include Arcade Mode",
				"Allow Arcade Mode races as objectives", false),
			option.Toggle(OptionCareerMode, "Include Gran Turismo Mode",
				"Allow Gran Turismo Mode races as objectives", false),
			option.Set(OptionCareerSections, "Gran Turismo Mode Objective Areas",
				"Which parts of Gran Turismo Mode are allowed for objectives",
				SectionLicenses, SectionBeginnerLeague, SectionAmateurLeague,
				SectionProfessionalLeague, SectionEnduranceLeague, SectionRallyEvents),
		},
		Categories: []games.CategorySpec{
			{
				Name:     CategoryArcade,
				Requires: []games.Requirement{games.Requires(OptionArcadeMode)},
				Build:    arcadeObjectives,
			},
			career(SectionLicenses, licenceObjectives),
			career(SectionBeginnerLeague, beginnerObjectives),
			career(SectionAmateurLeague, amateurObjectives),
			career(SectionProfessionalLeague, professionalObjectives),
			career(SectionEnduranceLeague, enduranceObjectives),
			career(SectionRallyEvents, rallyObjectives),
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
