// Package granturismo4 describes Gran Turismo 4 (PS2).
//
// Beyond the arcade and career toggles, Gran Turismo 4 filters arcade
// objectives by track type and driving missions by mission type. A mission
// category needs the career toggle, the Driving Missions section and its
// own mission type all at once.
package granturismo4

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

const ID = "gran_turismo_4"

const (
	OptionArcadeMode       = ID + "_include_arcade_mode"
	OptionCareerMode       = ID + "_include_career_mode"
	OptionArcadeTrackTypes = ID + "_arcade_track_types"
	OptionCareerSections   = ID + "_career_sections"
	OptionMissionTypes     = ID + "_driving_mission_types"
)

// Arcade Mode track types.
const (
	TrackWorldCircuits    = "World Circuits"
	TrackOriginalCircuits = "Original Circuits"
	TrackCityCourses      = "City Courses"
	TrackDirtAndSnow      = "Dirt & Snow"
)

// Gran Turismo Mode sections.
const (
	SectionLicenses           = "Licenses"
	SectionBeginnerEvents     = "Beginner Events"
	SectionProfessionalEvents = "Professional Events"
	SectionExtremeEvents      = "Extreme Events"
	SectionEnduranceEvents    = "Endurance Events"
	SectionSpecialConditions  = "Special Conditions"
	SectionRegionalEvents     = "Regional Events"
	SectionManufacturerEvents = "Manufacturer Events"
	SectionDrivingMissions    = "Driving Missions"
)

// Driving mission types.
const (
	MissionThePass          = "The Pass"
	MissionThreeLapBattle   = "3 Lap Battle"
	MissionSlipstreamBattle = "Slipstream Battle"
	MissionOneLapMagic      = "1 Lap Magic"
)

func Title() *games.Title {
	return &games.Title{
		ID:       ID,
		Name:     "Gran Turismo 4",
		Platform: games.PlatformPS2,
		Definitions: []option.Definition{
			option.Toggle(OptionArcadeMode, "Include Arcade Mode",
				"Allow Arcade Mode races as objectives", true),
			option.Toggle(OptionCareerMode, "Include Gran Turismo Mode",
				"Allow Gran Turismo Mode races as objectives", true),
			option.Set(OptionArcadeTrackTypes, "Arcade Mode Track Types",
				"Which track types are allowed for Arcade Mode objectives",
				TrackWorldCircuits, TrackOriginalCircuits, TrackCityCourses, TrackDirtAndSnow),
			option.Set(OptionCareerSections, "Gran Turismo Mode Objective Areas",
				"Which parts of Gran Turismo Mode are allowed for objectives",
				SectionLicenses, SectionBeginnerEvents, SectionProfessionalEvents, SectionExtremeEvents,
				SectionEnduranceEvents, SectionSpecialConditions, SectionRegionalEvents,
				SectionManufacturerEvents, SectionDrivingMissions),
			option.Set(OptionMissionTypes, "Driving Mission Types",
				"Which types of driving missions are allowed for objectives",
				MissionThePass, MissionThreeLapBattle, MissionSlipstreamBattle, MissionOneLapMagic),
		},
		Categories: []games.CategorySpec{
			arcade(TrackWorldCircuits, worldCircuitObjectives),
			arcade(TrackOriginalCircuits, originalCircuitObjectives),
			arcade(TrackCityCourses, cityCourseObjectives),
			arcade(TrackDirtAndSnow, dirtAndSnowObjectives),
			career(SectionLicenses, licenceObjectives),
			career(SectionBeginnerEvents, beginnerObjectives),
			career(SectionProfessionalEvents, professionalObjectives),
			career(SectionExtremeEvents, extremeObjectives),
			career(SectionEnduranceEvents, enduranceObjectives),
			career(SectionSpecialConditions, specialConditionObjectives),
			career(SectionRegionalEvents, regionalObjectives),
			career(SectionManufacturerEvents, manufacturerObjectives),
			mission(MissionThePass, missionObjectives(passMissions, false)),
			mission(MissionThreeLapBattle, missionObjectives(threeLapMissions, false)),
			mission(MissionSlipstreamBattle, missionObjectives(slipstreamMissions, true)),
			mission(MissionOneLapMagic, missionObjectives(oneLapMissions, true)),
		},
	}
}

func arcade(trackType string, build func() []objective.Template) games.CategorySpec {
	return games.CategorySpec{
		Name: trackType,
		Requires: []games.Requirement{
			games.Requires(OptionArcadeMode),
			games.RequiresMember(OptionArcadeTrackTypes, trackType),
		},
		Build: build,
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

func mission(missionType string, build func() []objective.Template) games.CategorySpec {
	spec := career(SectionDrivingMissions, build)
	spec.Name = missionType
	spec.Requires = append(spec.Requires, games.RequiresMember(OptionMissionTypes, missionType))
	return spec
}
