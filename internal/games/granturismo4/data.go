package granturismo4

import (
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

var (
	worldTracks = games.List("arcade_world_tracks",
		"Tsukuba Circuit (Dry)", "Tsukuba Circuit (Wet)",
		"Mazda Raceway Laguna Seca", "Nürburgring Nordschleife",
		"Infineon Raceway Sports Car Course", "Infineon Raceway Stock Car Course",
		"Twin Ring Motegi East Short Course", "Twin Ring Motegi West Short Course",
		"Twin Ring Motegi Road Course", "Twin Ring Motegi Super Speedway",
		"Suzuka Circuit East", "Suzuka Circuit West", "Suzuka Circuit",
		"Fuji Speedway '80s", "Fuji Speedway '90s",
		"Fuji Speedway 2005 GT", "Fuji Speedway 2005",
		"Circuit de la Sarthe I", "Circuit de la Sarthe II",
	)

	originalTracks = games.List("arcade_original_tracks",
		"El Capitan", "High Speed Ring", "Trial Mountain Circuit", "Grand Valley East", "Grand Valley Speedway",
		"Autumn Ring", "Autumn Ring Mini", "Deep Forest Raceway", "Apricot Hill Raceway",
		"Mid-Field Raceway", "Beginner Course", "Motorland", "Test Course",
	)

	cityTracks = games.List("arcade_city_tracks",
		"Clubman Stage Route 5", "Special Stage Route 5", "New York", "Seattle Circuit",
		"Tokyo R246", "Opera Paris", "Hong Kong", "Seoul Central", "Côte d'Azur",
	)

	// City courses that only run as one-on-one duels.
	cityDuels = games.List("arcade_city_duels", "George V Paris", "Costa di Amalfi", "Citta di Aria")

	rallyTracks = games.List("arcade_rally_tracks",
		"Ice Arena", "Chamonix", "Grand Canyon", "Swiss Alps",
		"Tahiti Maze", "Cathedral Rocks Trail I", "Cathedral Rocks Trail II",
	)

	licenceTests = games.List("licence_tests", games.LicenceTests(16, "B", "A", "IB", "IA", "S")...)

	beginnerEvents = games.List("beginner_events", games.Numbered("Race",
		games.Series{Name: "Sunday Cup", Races: 5},
		games.Series{Name: "FF Challenge", Races: 5},
		games.Series{Name: "FR Challenge", Races: 5},
		games.Series{Name: "4WD Challenge", Races: 5},
		games.Series{Name: "MR Challenge", Races: 5},
		games.Series{Name: "Light-weight K-Car Cup", Races: 3},
		games.Series{Name: "Spider & Roadster", Races: 3},
		games.Series{Name: "Sport Truck Race", Races: 3},
	)...)

	professionalEvents = games.List("professional_events", games.Numbered("Race",
		games.Series{Name: "Clubman Cup", Races: 5},
		games.Series{Name: "Tuning Car Grand Prix", Races: 5},
		games.Series{Name: "Race of NA Sport", Races: 5},
		games.Series{Name: "Race of Turbo Sport", Races: 5},
		games.Series{Name: "Boxer Spirit", Races: 3},
		games.Series{Name: "World Classics", Races: 5},
		games.Series{Name: "Supercar Festival", Races: 5},
		games.Series{Name: "Gran Turismo World Championship", Races: 10},
	)...)

	professionalSeries = games.List("professional_series",
		"Tuning Car Grand Prix", "World Classics", "Gran Turismo World Championship",
	)

	extremeEvents = games.List("extreme_events", games.Numbered("Race",
		games.Series{Name: "Gran Turismo All Stars", Races: 10},
		games.Series{Name: "Dream Car Championship", Races: 10},
		games.Series{Name: "Polyphony Digital Cup", Races: 10},
		games.Series{Name: "Like the Wind", Races: 1},
		games.Series{Name: "Formula GT World Championship", Races: 15},
		games.Series{Name: "World Circuit Tour", Races: 8},
		games.Series{Name: "Premium Sports Lounge", Races: 5},
	)...)

	extremeSeries = games.List("extreme_series",
		"Gran Turismo All Stars", "Dream Car Championship", "Polyphony Digital Cup",
		"Formula GT World Championship",
	)

	enduranceEvents = games.List("endurance_events",
		"Grand Valley 300km", "Laguna Seca 200 miles", "Roadster 4h",
		"Tokyo R246 300km", "Super Speedway 150 miles",
		"Nurburgring 24h", "Nurburgring 4h",
		"Suzuka 1000km", "Motegi 8h", "Tsukuba 9h",
		"Circuit de la Sarthe 24 h I", "Circuit de la Sarthe 24 h II",
		"Fuji 1000km", "Infineon World Sports",
		"El Capitan 200 miles", "New York 200 miles",
	)

	specialConditions = games.List("special_conditions", games.Numbered("Race",
		games.Series{Name: "Capri Rally", Races: 2},
		games.Series{Name: "Chamonix Rally", Races: 2},
		games.Series{Name: "George V Rally", Races: 2},
		games.Series{Name: "Grand Canyon Rally", Races: 2},
		games.Series{Name: "Swiss Alps Rally", Races: 2},
		games.Series{Name: "Tour of Tahiti", Races: 2},
		games.Series{Name: "Tsukuba Wet Race", Races: 1},
		games.Series{Name: "Umbria Rally", Races: 2},
		games.Series{Name: "Whistler Ice Race", Races: 2},
		games.Series{Name: "Yosemite Rally I", Races: 2},
		games.Series{Name: "Yosemite Rally II", Races: 2},
	)...)

	specialLevels = games.List("special_conditions_levels", "Easy", "Normal", "Hard")

	regionalEvents = games.List("regional_events", games.Numbered("Race",
		games.Series{Name: "Muscle Car Championship", Races: 3},
		games.Series{Name: "Old Muscle Car Championship", Races: 3},
		games.Series{Name: "Stars & Stripes", Races: 3},
		games.Series{Name: "United States Championship", Races: 5},
		games.Series{Name: "British GT Car Cup", Races: 5},
		games.Series{Name: "British Lightweights", Races: 3},
		games.Series{Name: "Pan Euro Championship", Races: 5},
		games.Series{Name: "European Classic Car Championship", Races: 5},
		games.Series{Name: "European Hot Hatch Car Championship", Races: 5},
		games.Series{Name: "French Championship", Races: 5},
		games.Series{Name: "German Touring Car Championship", Races: 5},
		games.Series{Name: "Italian Festival", Races: 3},
		games.Series{Name: "Schwarzwald League A", Races: 3},
		games.Series{Name: "Schwarzwald League B", Races: 5},
		games.Series{Name: "All Japan GT Championship", Races: 10},
		games.Series{Name: "Japan Championship", Races: 5},
		games.Series{Name: "Japanese 70's Classics", Races: 5},
		games.Series{Name: "Japanese 80's Festival", Races: 5},
		games.Series{Name: "Japanese 90's Challenge", Races: 5},
		games.Series{Name: "Japanese Compact Cup", Races: 5},
	)...)

	regionalLongEvents = games.List("regional_events_long", games.Numbered("Race",
		games.Series{Name: "1000 Miles!", Races: 4},
	)...)

	regionalSeries = games.List("regional_series",
		"United States Championship", "1000 Miles!", "British GT Car Cup", "Pan Euro Championship",
		"European Classic Car Championship", "European Hot Hatch Car Championship", "French Championship",
		"German Touring Car Championship", "All Japan GT Championship", "Japan Championship",
		"Japanese Compact Cup",
	)

	manufacturerEvents = games.List("manufacturer_events", games.Numbered("Race",
		games.Series{Name: "1 Series Trophy", Races: 3},
		games.Series{Name: "206 Cup", Races: 5},
		games.Series{Name: "2HP-2CV Classics", Races: 5},
		games.Series{Name: "A3 Cup", Races: 3},
		games.Series{Name: "Alpine Cup", Races: 5},
		games.Series{Name: "Altezza Race", Races: 5},
		games.Series{Name: "Aston Martin Festival", Races: 3},
		games.Series{Name: "Beetle Cup", Races: 5},
		games.Series{Name: "Blackpool Racers", Races: 5},
		games.Series{Name: "Camaro Meeting", Races: 3},
		games.Series{Name: "Civic Race", Races: 5},
		games.Series{Name: "Clio Trophy", Races: 5},
		games.Series{Name: `Club "M"`, Races: 5},
		games.Series{Name: `Club "RE"`, Races: 5},
		games.Series{Name: `Club "Z"`, Races: 5},
		games.Series{Name: "Copen Race", Races: 3},
		games.Series{Name: "Corvette Festival", Races: 5},
		games.Series{Name: "Crossfire Trophy", Races: 3},
		games.Series{Name: "Elise Trophy", Races: 5},
		games.Series{Name: "Evolution Meeting", Races: 3},
		games.Series{Name: "GTA Cup", Races: 3},
		games.Series{Name: "GTI Cup", Races: 5},
		games.Series{Name: "Hyundai Sports Festival", Races: 5},
		games.Series{Name: "Isuzu Sports Classics", Races: 3},
		games.Series{Name: "Legends of the Silver Arrow", Races: 3},
		games.Series{Name: "Lotus Classics", Races: 5},
		games.Series{Name: "Lupo Cup", Races: 5},
		games.Series{Name: "March/Micra Brothers", Races: 3},
		games.Series{Name: "Megane Cup", Races: 5},
		games.Series{Name: "MG Festival", Races: 5},
		games.Series{Name: "Midget II Race", Races: 1},
		games.Series{Name: "Mini Sports Meeting", Races: 5},
		games.Series{Name: "Mirage Cup", Races: 5},
		games.Series{Name: "Race of Red Emblem", Races: 5},
		games.Series{Name: "Race of the Pleiades", Races: 5},
		games.Series{Name: "Roadster Cup", Races: 5},
		games.Series{Name: "RX-8 Cup", Races: 5},
		games.Series{Name: "Saleen S7 Club", Races: 5},
		games.Series{Name: "Shelby Cobra Cup", Races: 5},
		games.Series{Name: "Silvia Sisters", Races: 3},
		games.Series{Name: "SL Challenge", Races: 3},
		games.Series{Name: "Speedster Trophy", Races: 5},
		games.Series{Name: "Spitfire Cup", Races: 5},
		games.Series{Name: "Subaru 360 Race", Races: 1},
		games.Series{Name: "Suzuki Concepts", Races: 3},
		games.Series{Name: "Suzuki K Cup", Races: 3},
		games.Series{Name: "Tourist Trophy", Races: 3},
		games.Series{Name: "Type R Meeting", Races: 5},
		games.Series{Name: "Vitz/Yaris Race", Races: 5},
	)...)

	manufacturerSeries = games.List("manufacturer_series",
		"2HP-2CV Classics", "Alpine Cup", "Beetle Cup", "Clio Trophy", `Club "M"`, "Elise Trophy",
		"Lotus Classics", "Lupo Cup", "Megane Cup", "Mirage Cup", "Race of the Pleiades",
		"Roadster Cup", "RX-8 Cup", "Tourist Trophy",
	)

	passMissions       = games.IntRange("the_pass_missions", 1, 10)
	threeLapMissions   = games.IntRange("three_lap_battle_missions", 11, 20)
	slipstreamMissions = games.IntRange("slipstream_battle_missions", 21, 24)
	oneLapMissions     = games.IntRange("one_lap_magic_missions", 25, 34)
)
