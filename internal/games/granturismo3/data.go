package granturismo3

import (
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

var (
	arcadeClasses   = games.List("arcade_tarmac_classes", "C", "B", "A", "S")
	arcadeRanks     = games.List("arcade_ranks", "Easy", "Normal")
	arcadeHardRanks = games.List("arcade_hard_ranks", "Hard", "Pro")

	arcadeTracks = games.List("arcade_tarmac_tracks",
		"Apricot Hill Raceway", "Cote d'Azur", "Deep Forest Raceway",
		"Grand Valley Speedway", "Mazda Raceway Laguna Seca",
		"Mid-Field Raceway", "Rome Circuit", "Seattle Circuit",
		"Special Stage Route 5", "Special Stage Route 5 Wet",
		"Special Stage Route 11", "Super Speedway", "Test Course",
		"Tokyo R246", "Trial Mountain Circuit",
	)

	arcadeRallyTracks = games.List("arcade_rally_tracks",
		"Smokey Mountain", "Swiss Alps", "Tahiti Circuit", "Tahiti Maze",
	)

	licenceTests = games.List("licence_tests", games.LicenceTests(7, "B", "A", "IB", "IA", "S", "R")...)

	beginnerRaces = games.List("beginner_league_races", games.Numbered("Race",
		games.Series{Name: "Sunday Cup", Races: 3},
		games.Series{Name: "Clubman Cup", Races: 3},
		games.Series{Name: "FF Challenge", Races: 3},
		games.Series{Name: "FR Challenge", Races: 3},
		games.Series{Name: "MR Challenge", Races: 3},
		games.Series{Name: "4WD Challenge", Races: 3},
		games.Series{Name: "Lightweight Sports Car Cup", Races: 3},
		games.Series{Name: "Stars & Stripes", Races: 4},
		games.Series{Name: "Spider & Roadster", Races: 3},
		games.Series{Name: "80's Sports Car Cup", Races: 3},
		games.Series{Name: "Race of NA Sports", Races: 3},
		games.Series{Name: "Race of Turbo Sports", Races: 3},
		games.Series{Name: "Legend of Silver Arrow", Races: 3},
		games.Series{Name: "Evolution Meeting", Races: 3},
	)...)

	beginnerSeries = games.List("beginner_league_series",
		"Tourist Trophy", "Altezza Race", "Vitz/Yaris Race", "Type-R Meeting",
		"Beetle Cup", "Gran Turismo World Championship",
	)

	amateurRaces = games.List("amateur_league_races", games.Numbered("Race",
		games.Series{Name: "FF Challenge", Races: 3},
		games.Series{Name: "FR Challenge", Races: 3},
		games.Series{Name: "MR Challenge", Races: 3},
		games.Series{Name: "4WD Challenge", Races: 3},
		games.Series{Name: "Stars & Stripes", Races: 4},
		games.Series{Name: "Boxer Spirit", Races: 3},
		games.Series{Name: "80's Sports Car Cup", Races: 3},
		games.Series{Name: "Race of NA Sports", Races: 3},
		games.Series{Name: "Race of Turbo Sports", Races: 3},
		games.Series{Name: "Race of Red Emblem", Races: 3},
		games.Series{Name: "Legend of Silver Arrow", Races: 3},
		games.Series{Name: "Evolution Meeting", Races: 3},
	)...)

	amateurSeries = games.List("amateur_league_series",
		"Japanese Championship", "American Championship", "European Championship",
		"Gran Turismo World Championship", "German Touring Car Championship",
		"Gran Turismo All Stars", "All Japan GT Championship", "Tourist Trophy",
		"Altezza Race", "Type-R Meeting", "Dream Car Championship",
	)

	professionalRaces = games.List("professional_league_races", games.Numbered("Race",
		games.Series{Name: "British GT Car Cup", Races: 3},
		games.Series{Name: "FF Challenge", Races: 3},
		games.Series{Name: "FR Challenge", Races: 3},
		games.Series{Name: "4WD Challenge", Races: 3},
		games.Series{Name: "MR Challenge", Races: 3},
		games.Series{Name: "Spider & Roadster", Races: 3},
		games.Series{Name: "Boxer Spirit", Races: 3},
		games.Series{Name: "Race of NA Sports", Races: 3},
		games.Series{Name: "Race of Turbo Sports", Races: 3},
		games.Series{Name: "Italian Avant Garde", Races: 2},
		games.Series{Name: "Race of Red Emblem", Races: 3},
		games.Series{Name: "Elise Trophy", Races: 5},
		games.Series{Name: "Like the Wind", Races: 1},
	)...)

	professionalSeries = games.List("professional_league_series",
		"GT World Championship", "Gran Turismo All Stars", "All Japan GT Championship",
		"Vitz/Yaris Race", "Clio Trophy", "Tuscan Challenge", "Dream Car Championship",
		"Polyphony Digital Cup", "Formula GT",
	)

	endurances = games.List("endurances",
		"Grand Valley 300km", "Seattle 100 Miles", "Laguna Seca 200 Miles", "Passage to Colosseo",
		"Trial Mountain 2 Hours", "Special Stage Route 11 All-Night", "Roadster Endurance",
		"Tokyo R246 Endurance", "Mistral 78 Laps", "Super Speedway 150 Miles",
	)

	rallyEvents = games.List("rally_events",
		"Tahiti Challenge", "Tahiti Challenge II",
		"Tahiti Maze", "Tahiti Maze II",
		"Smokey Mountain Rally", "Smokey Mountain Rally II",
		"Alpine Rally", "Alpine Rally II",
		"Super Special Route 5", "Super Special Route 5 II",
	)
)
