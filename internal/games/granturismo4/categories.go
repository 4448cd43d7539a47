package granturismo4

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
)

type template struct {
	label     string
	long      bool
	difficult bool
	data      map[string]objective.Binding
}

func build(templates ...template) []objective.Template {
	out := make([]objective.Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, objective.Template{
			Label:           t.label,
			Data:            t.data,
			IsTimeConsuming: t.long,
			IsDifficult:     t.difficult,
			Weight:          objective.DefaultWeight,
		})
	}
	return out
}

func bind(token string, src objective.Source) map[string]objective.Binding {
	return map[string]objective.Binding{token: objective.Bind(src)}
}

const (
	podiumAtTrack = "Stand on the podium at TRACK in Arcade Mode!"
	winAtTrack    = "Win the race at TRACK in Arcade Mode!"
	podiumInRace  = "Stand on the podium in the RACE!"
	winRace       = "Win the RACE!"
	champion      = "Become the LEAGUE Champion!"
)

func worldCircuitObjectives() []objective.Template {
	return build(
		template{label: podiumAtTrack, data: bind(objective.TokenTrack, worldTracks)},
		template{label: winAtTrack, data: bind(objective.TokenTrack, worldTracks)},
	)
}

func originalCircuitObjectives() []objective.Template {
	return build(
		template{label: podiumAtTrack, data: bind(objective.TokenTrack, originalTracks)},
		template{label: winAtTrack, data: bind(objective.TokenTrack, originalTracks)},
	)
}

func cityCourseObjectives() []objective.Template {
	return build(
		template{label: podiumAtTrack, data: bind(objective.TokenTrack, cityTracks)},
		template{label: winAtTrack, data: bind(objective.TokenTrack, cityTracks)},
		template{label: winAtTrack, difficult: true, data: bind(objective.TokenTrack, cityDuels)},
	)
}

func dirtAndSnowObjectives() []objective.Template {
	return build(
		template{label: winAtTrack, data: bind(objective.TokenTrack, rallyTracks)},
	)
}

func licenceObjectives() []objective.Template {
	return build(
		template{label: "Beat the target time in licence test LICENCE!", data: bind(objective.TokenLicence, licenceTests)},
		template{label: "Get the Gold Medal in licence test LICENCE!", difficult: true, data: bind(objective.TokenLicence, licenceTests)},
	)
}

func beginnerObjectives() []objective.Template {
	return build(
		template{label: podiumInRace, data: bind(objective.TokenRace, beginnerEvents)},
		template{label: winRace, data: bind(objective.TokenRace, beginnerEvents)},
	)
}

func professionalObjectives() []objective.Template {
	return build(
		template{label: podiumInRace, data: bind(objective.TokenRace, professionalEvents)},
		template{label: winRace, data: bind(objective.TokenRace, professionalEvents)},
		template{label: champion, long: true, data: bind(objective.TokenLeague, professionalSeries)},
	)
}

func extremeObjectives() []objective.Template {
	return build(
		template{label: podiumInRace, long: true, difficult: true, data: bind(objective.TokenRace, extremeEvents)},
		template{label: winRace, long: true, difficult: true, data: bind(objective.TokenRace, extremeEvents)},
		template{label: champion, long: true, difficult: true, data: bind(objective.TokenLeague, extremeSeries)},
	)
}

func enduranceObjectives() []objective.Template {
	return build(
		template{label: podiumInRace, long: true, data: bind(objective.TokenRace, enduranceEvents)},
		template{label: winRace, long: true, data: bind(objective.TokenRace, enduranceEvents)},
	)
}

func specialConditionObjectives() []objective.Template {
	return build(template{
		label: "Win the LEVEL RACE!",
		data: map[string]objective.Binding{
			objective.TokenRace:  objective.Bind(specialConditions),
			objective.TokenLevel: objective.Bind(specialLevels),
		},
	})
}

func regionalObjectives() []objective.Template {
	return build(
		template{label: podiumInRace, data: bind(objective.TokenRace, regionalEvents)},
		template{label: winRace, data: bind(objective.TokenRace, regionalEvents)},
		template{label: podiumInRace, long: true, data: bind(objective.TokenRace, regionalLongEvents)},
		template{label: winRace, long: true, data: bind(objective.TokenRace, regionalLongEvents)},
		template{label: champion, long: true, data: bind(objective.TokenLeague, regionalSeries)},
	)
}

func manufacturerObjectives() []objective.Template {
	return build(
		template{label: podiumInRace, data: bind(objective.TokenRace, manufacturerEvents)},
		template{label: winRace, data: bind(objective.TokenRace, manufacturerEvents)},
		template{label: champion, long: true, data: bind(objective.TokenLeague, manufacturerSeries)},
	)
}

func missionObjectives(missions objective.Source, difficult bool) func() []objective.Template {
	return func() []objective.Template {
		return build(template{
			label:     "Beat Mission MISSION!",
			difficult: difficult,
			data:      bind(objective.TokenMission, missions),
		})
	}
}
