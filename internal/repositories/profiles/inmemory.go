package profiles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Profiles
// never expire.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Profile
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Profile),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new profile
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Profile.ID]; exists {
		return nil, errors.AlreadyExistsf("profile %s already exists", input.Profile.ID)
	}

	now := r.clock.Now().UTC()
	stored := copyProfile(input.Profile)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.store[stored.ID] = stored

	return &CreateOutput{Profile: copyProfile(stored)}, nil
}

// Get retrieves a profile by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileID)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("profile %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Profile: copyProfile(p)}, nil
}

// Update replaces an existing profile of the same game
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.Profile.ID]
	if !exists {
		return nil, errors.NotFoundf("profile %s not found", input.Profile.ID)
	}
	if existing.GameID != input.Profile.GameID {
		return nil, errors.InvalidArgumentf("profile %s belongs to game %s", input.Profile.ID, existing.GameID)
	}

	stored := copyProfile(input.Profile)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.clock.Now().UTC()
	r.store[stored.ID] = stored

	return &UpdateOutput{Profile: copyProfile(stored)}, nil
}

// Delete removes a profile
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("profile %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// ListByGame returns a game's profiles sorted by ID
func (r *InMemoryRepository) ListByGame(_ context.Context, input ListByGameInput) (*ListByGameOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*Profile, 0)
	for _, p := range r.store {
		if p.GameID == input.GameID {
			profiles = append(profiles, copyProfile(p))
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })

	return &ListByGameOutput{Profiles: profiles}, nil
}

func copyProfile(p *Profile) *Profile {
	out := *p
	out.Values = make(map[string]any, len(p.Values))
	for k, v := range p.Values {
		out.Values[k] = v
	}
	return &out
}
