package granturismo2

import (
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

var (
	arcadeClasses   = games.List("arcade_classes", "C", "B", "A", "S")
	arcadeRanks     = games.List("arcade_ranks", "Easy", "Normal")
	arcadeHardRanks = games.List("arcade_hard_ranks", "Difficult")

	arcadeTracks = games.List("arcade_tarmac_tracks",
		"Tahiti Road", "Midfield Raceway", "High Speed Ring",
		"Super Speedway", "Seattle Short Course", "Rome Short Course",
		"Red Rock Valley Speedway", "Seattle Circuit", "Rome Circuit",
		"Grindelwald", "Laguna Seca Raceway", "Apricot Hill Speedway",
		"Trial Mountain Circuit", "Clubman Stage Route 5", "Grand Valley East Section",
		"Grand Valley Speedway", "Special Stage Route 5", "Autumn Ring",
		"Test Course", "Deep Forest Raceway", "Rome Night",
	)

	licenceTests = games.List("licence_tests", games.LicenceTests(9, "B", "A", "IC", "IB", "IA", "S")...)

	leagueRaces = games.List("gt_league_races", games.Numbered("Race",
		games.Series{Name: "French Nationals", Races: 2},
		games.Series{Name: "German Nationals", Races: 3},
		games.Series{Name: "Italian Nationals", Races: 2},
		games.Series{Name: "Japan Nationals", Races: 3},
		games.Series{Name: "UK Nationals", Races: 3},
		games.Series{Name: "US Nationals", Races: 3},
		games.Series{Name: "Euro League", Races: 3},
		games.Series{Name: "Pacific League", Races: 3},
	)...)

	leagueSeries = games.List("gt_league_series", "World League")

	specialRaces = games.List("special_events_races", games.Numbered("Race",
		games.Series{Name: "Sunday Cup", Races: 3},
		games.Series{Name: "Clubman Cup", Races: 3},
		games.Series{Name: "FF Challenge", Races: 3},
		games.Series{Name: "FR Challenge", Races: 3},
		games.Series{Name: "Mid-engine Challenge", Races: 3},
		games.Series{Name: "4WD Challenge", Races: 3},
		games.Series{Name: `Lightweight "K" Cup`, Races: 3},
		games.Series{Name: "Compact Car World Cup", Races: 3},
		games.Series{Name: "Luxury Sedan Cup", Races: 3},
		games.Series{Name: "Muscle Car Cup", Races: 3},
		games.Series{Name: "Convertible Car World Cup", Races: 3},
		games.Series{Name: "Historic Car Cup", Races: 3},
		games.Series{Name: "Station Wagon Cup", Races: 3},
		games.Series{Name: "80's Sports Car Cup", Races: 5},
		games.Series{Name: "Grand Touring Car Trophy", Races: 3},
		games.Series{Name: "Pure Sports Car Cup", Races: 3},
		games.Series{Name: "Tuned NA Car No.1 Cup", Races: 3},
		games.Series{Name: "Tuned Turbo Car No.1 Cup", Races: 3},
		games.Series{Name: "Gran Turismo All-Stars", Races: 5},
		games.Series{Name: "Super Touring Trophy", Races: 5},
	)...)

	specialSeries = games.List("special_events_series", "GT300 Championship", "GT500 Championship")

	dirtRaces = games.List("dirt_events_races", games.Numbered("Race",
		games.Series{Name: "Smokey Mountain South", Races: 3},
		games.Series{Name: "Smokey Mountain North", Races: 3},
		games.Series{Name: "Green Forest Roadway", Races: 3},
		games.Series{Name: "Tahiti Maze", Races: 3},
		games.Series{Name: "Tahiti Dirt Route 3", Races: 3},
		games.Series{Name: "Smokey Mountain North Reverse", Races: 3},
		games.Series{Name: "Tahiti Dirt Route 3 Reverse", Races: 3},
	)...)

	dirtHardRaces = games.List("dirt_events_hard_races", games.Numbered("Race",
		games.Series{Name: "Pikes Peak Downhill", Races: 3},
		games.Series{Name: "Pikes Peak Hill Climb", Races: 3},
	)...)

	makerRaces = games.List("maker_events_races",
		"106 Challenge", "155 & 156 Race", "500 Meeting", "Altezza Cup", "Alto Works Cup",
		"Cappuccino Cup", "Celica Meeting", "Challenge S2000", "Civic Race", "Clio Cup",
		"Corvette Meeting", "Cuore Challenge", "DB-7 Trophy", "Delta Cup", "Demio Race",
		"Elan Trophy", "Elise Trophy", "Golf Cup", "GT-R Meeting", "Ka Challenge",
		"March Trophy", "MGF Challenge", "Mini Challenge", "Mirage Cup", "MX-5 Trophy",
		"Neon Trophy", "New Beetle Challenge", "Saxo Challenge", "Silvia & 180SX Club",
		"Sirion Challenge", "SLK Trophy", "SVX Challenge", "Tigra Cup", "TT Challenge",
		"Tuscan Speed Challenge", "Viper Festival of Speed", "Yaris Trophy", "ZZ Challenge",
	)

	makerStyles = games.List("maker_events_styles", "Normal", "Racing")

	// Events that only admit normal cars.
	makerNormalOnly = games.List("maker_events_normal_only",
		"3 Series Cup", "AZ-1 Challenge", "Beat the Beat", "Evolution Meeting", "Focus Challenge",
		"Impreza Challenge", "Midget Contest", "MR-S Trophy", "NSX Trophy", "Pulsar Cup",
		"RX-7 Meeting", "Skyline R34 Challenge", "Starlet Meeting", "Type R Meeting",
	)

	synthRanks     = games.List("event_synth_ranks", "Easy/Beginner", "Normal/Intermediate")
	synthHardRanks = games.List("event_synth_hard_ranks", "Hard/Advanced")
	synthLongRanks = games.List("event_synth_long_ranks", "Expert/Pro")

	endurances = games.List("endurances",
		"Grand Valley 300km", "Apricot Hill 200km", "Seattle 100 Miles", "Laguna Seca 200 Miles",
		"Millennium Rome 2 Hours", "Trial Mountain 30 Laps", "Special Stage Route 5 All-Night",
	)
)
