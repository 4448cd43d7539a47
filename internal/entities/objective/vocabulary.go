package objective

// Reserved placeholder tokens. Label wording never uses these words
// literally, so a token can only ever mean its binding.
const (
	TokenTrack   = "TRACK"
	TokenClass   = "CLASS"
	TokenRank    = "RANK"
	TokenLicence = "LICENCE"
	TokenLeague  = "LEAGUE"
	TokenEvent   = "EVENT"
	TokenRace    = "RACE"
	TokenRally   = "RALLY"
	TokenStyle   = "STYLE"
	TokenLevel   = "LEVEL"
	TokenMission = "MISSION"
)

var vocabulary = map[string]bool{
	TokenTrack:   true,
	TokenClass:   true,
	TokenRank:    true,
	TokenLicence: true,
	TokenLeague:  true,
	TokenEvent:   true,
	TokenRace:    true,
	TokenRally:   true,
	TokenStyle:   true,
	TokenLevel:   true,
	TokenMission: true,
}

// IsReserved reports whether token is a reserved placeholder.
func IsReserved(token string) bool {
	return vocabulary[token]
}
