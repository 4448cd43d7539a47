package granturismo

import (
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

var (
	arcadeClasses   = games.List("arcade_classes", "C", "B", "A")
	arcadeRanks     = games.List("arcade_ranks", "Easy", "Normal")
	arcadeHardRanks = games.List("arcade_hard_ranks", "Hard")

	arcadeTracks = games.List("arcade_tracks",
		"High Speed Ring", "Trial Mountain Circuit", "Grand Valley East", "Clubman Stage Route 5",
		"Autumn Ring", "Deep Forest", "Special Stage Route 5", "Grand Valley Speedway",
	)

	licenceTests = games.List("licence_tests", games.LicenceTests(8, "B", "A", "IA")...)

	gtLeague = games.List("gt_league",
		"Sunday Cup", "Clubman Cup", "Gran Turismo Cup", "Gran Turismo World Cup",
	)

	specialEvents = games.List("special_events",
		"FF Challenge", "FR Challenge", "4WD Challenge", "Lightweight Sports Battle Stage",
		"US-Japan Sports Car Championship", "Anglo-Japanese Sports Car Championship",
		"Anglo-American Sports Car Championship", "Megaspeed Cup", "Normal Car World Speed Contest",
		"Hard-Tuned Car Speed Contest",
	)

	spotRaceTracks = games.List("spot_race_tracks",
		"High Speed Ring", "Grand Valley East", "Autumn Ring Mini", "Trial Mountain Circuit", "Deep Forest",
	)

	endurances = games.List("endurances",
		"Grand Valley 300km", "Special Stage Route 11 All-Night 1", "Special Stage Route 11 All-Night 2",
	)
)
