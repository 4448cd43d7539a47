package testutils

import (
	"github.com/KirkDiggler/keep-objectives/internal/games/granturismo4"
)

// GT4LicencesOnly is the raw configuration that leaves only the Gran
// Turismo 4 licence tests enabled.
func GT4LicencesOnly() map[string]any {
	return map[string]any{
		granturismo4.OptionArcadeMode:     false,
		granturismo4.OptionCareerMode:     true,
		granturismo4.OptionCareerSections: []any{granturismo4.SectionLicenses},
	}
}

// GT4ArcadeOnly is the raw configuration that leaves only Gran Turismo 4
// arcade objectives enabled.
func GT4ArcadeOnly() map[string]any {
	return map[string]any{
		granturismo4.OptionArcadeMode: true,
		granturismo4.OptionCareerMode: false,
	}
}
