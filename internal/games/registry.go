package games

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

// Registry indexes titles by ID.
type Registry struct {
	mu     sync.RWMutex
	titles map[string]*Title
}

// NewRegistry registers every title, failing on the first invalid one.
func NewRegistry(titles ...*Title) (*Registry, error) {
	r := &Registry{titles: make(map[string]*Title, len(titles))}
	for _, t := range titles {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates and adds a title.
func (r *Registry) Register(t *Title) error {
	if err := t.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.titles == nil {
		r.titles = make(map[string]*Title)
	}
	if _, exists := r.titles[t.ID]; exists {
		return errors.AlreadyExistsf("game %s is already registered", t.ID)
	}
	r.titles[t.ID] = t
	return nil
}

// Get returns the title registered under id.
func (r *Registry) Get(id string) (*Title, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.titles[id]
	if !ok {
		return nil, errors.NotFoundf("game %s not found", id).WithMeta("game_id", id)
	}
	return t, nil
}

// List returns every title sorted by ID.
func (r *Registry) List() []*Title {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Title, 0, len(r.titles))
	for _, t := range r.titles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
