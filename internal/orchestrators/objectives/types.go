package objectives

import (
	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/games"
	"github.com/KirkDiggler/keep-objectives/internal/repositories/profiles"
)

// GameSummary describes one registered title
type GameSummary struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Platform           games.Platform      `json:"platform"`
	AdultOnlyOrUnrated bool                `json:"adult_only_or_unrated"`
	Options            []option.Definition `json:"options"`
}

// ListGamesInput is empty; every registered title is listed
type ListGamesInput struct{}

// ListGamesOutput contains titles sorted by ID
type ListGamesOutput struct {
	Games []GameSummary
}

// ListTemplatesInput selects a game and the option values to apply.
// Values override the saved profile named by ProfileID key by key.
type ListTemplatesInput struct {
	GameID    string
	ProfileID string
	Values    map[string]any
}

// CategorySummary reports one category's gating under the applied settings
type CategorySummary struct {
	Name      string `json:"name"`
	Enabled   bool   `json:"enabled"`
	Templates int    `json:"templates"`
}

// ListTemplatesOutput contains the enabled templates and how they were chosen
type ListTemplatesOutput struct {
	GameID     string
	Templates  []objective.Template
	Categories []CategorySummary
	Settings   map[string]any
	Warnings   []option.Warning
}

// ResolveTemplateInput contains a template to resolve for a game
type ResolveTemplateInput struct {
	GameID   string
	Template objective.Template
}

// ResolveTemplateOutput contains the resolved objective
type ResolveTemplateOutput struct {
	Objective *objective.Objective
}

// ResolveAllInput selects the templates to resolve like ListTemplatesInput
type ResolveAllInput struct {
	GameID    string
	ProfileID string
	Values    map[string]any
}

// ResolveAllOutput contains one objective per enabled template, in
// template order
type ResolveAllOutput struct {
	Objectives []*objective.Objective
	Warnings   []option.Warning
}

// SaveProfileInput creates a profile when ID is empty, otherwise replaces it
type SaveProfileInput struct {
	ID     string
	GameID string
	Name   string
	Values map[string]any
}

// SaveProfileOutput contains the stored profile and any dropped input
type SaveProfileOutput struct {
	Profile  *profiles.Profile
	Warnings []option.Warning
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	ID string
}

// GetProfileOutput contains the profile
type GetProfileOutput struct {
	Profile *profiles.Profile
}

// DeleteProfileInput contains parameters for deleting a profile
type DeleteProfileInput struct {
	ID string
}

// DeleteProfileOutput is empty
type DeleteProfileOutput struct{}

// ListProfilesInput selects the game whose profiles are listed
type ListProfilesInput struct {
	GameID string
}

// ListProfilesOutput contains profiles sorted by ID
type ListProfilesOutput struct {
	Profiles []*profiles.Profile
}
