package granturismo2

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
)

type flags struct {
	timeConsuming bool
	difficult     bool
}

func tmpl(label string, f flags, data map[string]objective.Binding) objective.Template {
	return objective.Template{
		Label:           label,
		Data:            data,
		IsTimeConsuming: f.timeConsuming,
		IsDifficult:     f.difficult,
		Weight:          objective.DefaultWeight,
	}
}

func one(token string, src objective.Source) map[string]objective.Binding {
	return map[string]objective.Binding{token: objective.Bind(src)}
}

var (
	plain    = flags{}
	hard     = flags{difficult: true}
	long     = flags{timeConsuming: true}
	longHard = flags{timeConsuming: true, difficult: true}
)

func arcadeObjectives() []objective.Template {
	data := func(ranks objective.Source) map[string]objective.Binding {
		return map[string]objective.Binding{
			objective.TokenClass: objective.Bind(arcadeClasses),
			objective.TokenRank:  objective.Bind(ranks),
			objective.TokenTrack: objective.Bind(arcadeTracks),
		}
	}
	return []objective.Template{
		tmpl("Stand on the podium at TRACK in Class CLASS at RANK level or higher in Arcade Mode!", plain, data(arcadeRanks)),
		tmpl("Win the race at TRACK in Class CLASS at RANK level or higher in Arcade Mode!", plain, data(arcadeRanks)),
		tmpl("Stand on the podium at TRACK in Class CLASS at RANK level in Arcade Mode!", hard, data(arcadeHardRanks)),
		tmpl("Win the race at TRACK in Class CLASS at RANK level in Arcade Mode!", hard, data(arcadeHardRanks)),
	}
}

func licenceObjectives() []objective.Template {
	return []objective.Template{
		tmpl("Beat the target time in licence test LICENCE!", plain, one(objective.TokenLicence, licenceTests)),
		tmpl("Get the Gold Medal in licence test LICENCE!", hard, one(objective.TokenLicence, licenceTests)),
	}
}

// podiumWinChampion covers the race / series shape shared by the league and
// special events.
func podiumWinChampion(races, series objective.Source) []objective.Template {
	return []objective.Template{
		tmpl("Stand on the podium in the RACE!", plain, one(objective.TokenRace, races)),
		tmpl("Win the RACE!", plain, one(objective.TokenRace, races)),
		tmpl("Become the LEAGUE Champion!", long, one(objective.TokenLeague, series)),
	}
}

func leagueObjectives() []objective.Template {
	return podiumWinChampion(leagueRaces, leagueSeries)
}

func specialEventObjectives() []objective.Template {
	return podiumWinChampion(specialRaces, specialSeries)
}

func rallyObjectives() []objective.Template {
	return []objective.Template{
		tmpl("Win the RALLY!", plain, one(objective.TokenRally, dirtRaces)),
		tmpl("Win the RALLY!", hard, one(objective.TokenRally, dirtHardRaces)),
	}
}

func makerObjectives() []objective.Template {
	return []objective.Template{
		tmpl("Win the RACE in a STYLE car!", plain, map[string]objective.Binding{
			objective.TokenRace:  objective.Bind(makerRaces),
			objective.TokenStyle: objective.Bind(makerStyles),
		}),
		tmpl("Win the RACE in a Normal car!", plain, one(objective.TokenRace, makerNormalOnly)),
	}
}

func eventGeneratorObjectives() []objective.Template {
	return []objective.Template{
		tmpl("Stand on the podium in an Event Generator Race at RANK difficulty or higher!", plain, one(objective.TokenRank, synthRanks)),
		tmpl("Win an Event Generator Race at RANK difficulty or higher!", plain, one(objective.TokenRank, synthRanks)),
		tmpl("Stand on the podium in an Event Generator Race at RANK difficulty!", hard, one(objective.TokenRank, synthHardRanks)),
		tmpl("Win an Event Generator Race at RANK difficulty!", hard, one(objective.TokenRank, synthHardRanks)),
		tmpl("Become the Champion in an Event Generator Championship as RANK difficulty!", longHard, one(objective.TokenRank, synthLongRanks)),
	}
}

func enduranceObjectives() []objective.Template {
	return []objective.Template{
		tmpl("Win the RACE!", long, one(objective.TokenRace, endurances)),
	}
}
