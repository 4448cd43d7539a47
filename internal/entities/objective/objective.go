package objective

// Objective is a resolved template ready to hand to a player.
type Objective struct {
	ID              string              `json:"id"`
	GameID          string              `json:"game_id"`
	Label           string              `json:"label"`
	Text            string              `json:"text"`
	Picks           map[string][]string `json:"picks"`
	IsTimeConsuming bool                `json:"is_time_consuming"`
	IsDifficult     bool                `json:"is_difficult"`
	Weight          int                 `json:"weight"`
}
