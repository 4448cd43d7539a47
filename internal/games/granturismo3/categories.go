package granturismo3

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
)

func arcadeObjectives() []objective.Template {
	tarmac := func(label string, ranks objective.Source, difficult bool) objective.Template {
		return objective.Template{
			Label: label,
			Data: map[string]objective.Binding{
				objective.TokenClass: objective.Bind(arcadeClasses),
				objective.TokenRank:  objective.Bind(ranks),
				objective.TokenTrack: objective.Bind(arcadeTracks),
			},
			IsDifficult: difficult,
			Weight:      objective.DefaultWeight,
		}
	}
	// Rally stages only run in Class R.
	rally := func(label string, ranks objective.Source, difficult bool) objective.Template {
		return objective.Template{
			Label: label,
			Data: map[string]objective.Binding{
				objective.TokenRank:  objective.Bind(ranks),
				objective.TokenTrack: objective.Bind(arcadeRallyTracks),
			},
			IsDifficult: difficult,
			Weight:      objective.DefaultWeight,
		}
	}

	return []objective.Template{
		tarmac("Stand on the podium at TRACK in Class CLASS at RANK level or higher in Arcade Mode!", arcadeRanks, false),
		tarmac("Win the race at TRACK in Class CLASS at RANK level or higher in Arcade Mode!", arcadeRanks, false),
		tarmac("Stand on the podium at TRACK in Class CLASS at RANK level in Arcade Mode!", arcadeHardRanks, true),
		tarmac("Win the race at TRACK in Class CLASS at RANK level in Arcade Mode!", arcadeHardRanks, true),
		rally("Win the race at TRACK in Class R at RANK level or higher in Arcade Mode!", arcadeRanks, false),
		rally("Win the race at TRACK in Class R at RANK level in Arcade Mode!", arcadeHardRanks, true),
	}
}

func licenceObjectives() []objective.Template {
	return []objective.Template{
		objective.Template{
			Label:  "Beat the target time in licence test LICENCE!",
			Data:   map[string]objective.Binding{objective.TokenLicence: objective.Bind(licenceTests)},
			Weight: objective.DefaultWeight,
		},
		objective.Template{
			Label:       "Get the Gold Medal in licence test LICENCE!",
			Data:        map[string]objective.Binding{objective.TokenLicence: objective.Bind(licenceTests)},
			IsDifficult: true,
			Weight:      objective.DefaultWeight,
		},
	}
}

// league builds the podium, win and championship objectives of one league.
func league(races, series objective.Source, difficult bool) []objective.Template {
	return []objective.Template{
		objective.Template{
			Label:       "Stand on the podium in the RACE!",
			Data:        map[string]objective.Binding{objective.TokenRace: objective.Bind(races)},
			IsDifficult: difficult,
			Weight:      objective.DefaultWeight,
		},
		objective.Template{
			Label:       "Win the RACE!",
			Data:        map[string]objective.Binding{objective.TokenRace: objective.Bind(races)},
			IsDifficult: difficult,
			Weight:      objective.DefaultWeight,
		},
		objective.Template{
			Label:           "Become the LEAGUE Champion!",
			Data:            map[string]objective.Binding{objective.TokenLeague: objective.Bind(series)},
			IsTimeConsuming: true,
			IsDifficult:     difficult,
			Weight:          objective.DefaultWeight,
		},
	}
}

func beginnerObjectives() []objective.Template {
	return league(beginnerRaces, beginnerSeries, false)
}

func amateurObjectives() []objective.Template {
	return league(amateurRaces, amateurSeries, false)
}

func professionalObjectives() []objective.Template {
	return league(professionalRaces, professionalSeries, true)
}

func enduranceObjectives() []objective.Template {
	return []objective.Template{{
		Label:           "Win the RACE!",
		Data:            map[string]objective.Binding{objective.TokenRace: objective.Bind(endurances)},
		IsTimeConsuming: true,
		Weight:          objective.DefaultWeight,
	}}
}

func rallyObjectives() []objective.Template {
	return []objective.Template{{
		Label:  "Beat your rival at RALLY!",
		Data:   map[string]objective.Binding{objective.TokenRally: objective.Bind(rallyEvents)},
		Weight: objective.DefaultWeight,
	}}
}
