// Package profiles stores saved option configurations so a player can reuse
// the same filters across runs.
package profiles

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilesmock github.com/KirkDiggler/keep-objectives/internal/repositories/profiles Repository

// Profile is a named set of raw option values for one game. Values are kept
// as the host supplied them and are validated again whenever they are used.
type Profile struct {
	ID        string         `json:"id"`
	GameID    string         `json:"game_id"`
	Name      string         `json:"name,omitempty"`
	Values    map[string]any `json:"values"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateInput contains parameters for storing a new profile
type CreateInput struct {
	Profile *Profile
}

// CreateOutput contains the stored profile
type CreateOutput struct {
	Profile *Profile
}

// GetInput contains parameters for retrieving a profile
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved profile
type GetOutput struct {
	Profile *Profile
}

// UpdateInput contains parameters for replacing a profile
type UpdateInput struct {
	Profile *Profile
}

// UpdateOutput contains the stored profile
type UpdateOutput struct {
	Profile *Profile
}

// DeleteInput contains parameters for deleting a profile
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; a missing profile is reported as NotFound
type DeleteOutput struct{}

// ListByGameInput contains parameters for listing a game's profiles
type ListByGameInput struct {
	GameID string
}

// ListByGameOutput contains profiles sorted by ID
type ListByGameOutput struct {
	Profiles []*Profile
}

// Repository defines the interface for profile storage operations
type Repository interface {
	// Create stores a new profile. The ID must not be in use.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a profile by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing profile, keeping its creation time
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a profile
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByGame returns every profile saved for a game
	ListByGame(ctx context.Context, input ListByGameInput) (*ListByGameOutput, error)
}
