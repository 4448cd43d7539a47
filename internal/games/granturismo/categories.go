package granturismo

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
)

func arcadeObjectives() []objective.Template {
	return []objective.Template{
		arcade("Stand on the podium at TRACK in Class CLASS at RANK level or higher in Arcade Mode!", arcadeRanks, false),
		arcade("Win the race at TRACK in Class CLASS at RANK level or higher in Arcade Mode!", arcadeRanks, false),
		arcade("Stand on the podium at TRACK in Class CLASS at RANK level in Arcade Mode!", arcadeHardRanks, true),
		arcade("Win the race at TRACK in Class CLASS at RANK level in Arcade Mode!", arcadeHardRanks, true),
	}
}

func arcade(label string, ranks objective.Source, difficult bool) objective.Template {
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

func leagueObjectives() []objective.Template {
	return []objective.Template{{
		Label:           "Become the LEAGUE Champion!",
		Data:            map[string]objective.Binding{objective.TokenLeague: objective.Bind(gtLeague)},
		IsTimeConsuming: true,
		Weight:          objective.DefaultWeight,
	}}
}

func eventObjectives() []objective.Template {
	return []objective.Template{{
		Label:           "Become the EVENT Champion!",
		Data:            map[string]objective.Binding{objective.TokenEvent: objective.Bind(specialEvents)},
		IsTimeConsuming: true,
		Weight:          objective.DefaultWeight,
	}}
}

func spotRaceObjectives() []objective.Template {
	return []objective.Template{
		objective.Template{
			Label:  "Stand on the podium in a Spot Race at TRACK!",
			Data:   map[string]objective.Binding{objective.TokenTrack: objective.Bind(spotRaceTracks)},
			Weight: objective.DefaultWeight,
		},
		objective.Template{
			Label:  "Win a Spot Race at TRACK!",
			Data:   map[string]objective.Binding{objective.TokenTrack: objective.Bind(spotRaceTracks)},
			Weight: objective.DefaultWeight,
		},
	}
}

func enduranceObjectives() []objective.Template {
	return []objective.Template{{
		Label:           "Win the EVENT!",
		Data:            map[string]objective.Binding{objective.TokenEvent: objective.Bind(endurances)},
		IsTimeConsuming: true,
		Weight:          objective.DefaultWeight,
	}}
}
