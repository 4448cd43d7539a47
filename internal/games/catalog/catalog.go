// Package catalog wires every supported title into a games.Registry.
package catalog

import (
	"github.com/KirkDiggler/keep-objectives/internal/games"
	"github.com/KirkDiggler/keep-objectives/internal/games/granturismo"
	"github.com/KirkDiggler/keep-objectives/internal/games/granturismo2"
	"github.com/KirkDiggler/keep-objectives/internal/games/granturismo3"
	"github.com/KirkDiggler/keep-objectives/internal/games/granturismo4"
)

// Titles returns a fresh table for every supported title.
func Titles() []*games.Title {
	return []*games.Title{
		granturismo.Title(),
		granturismo2.Title(),
		granturismo3.Title(),
		granturismo4.Title(),
	}
}

// NewRegistry returns a registry holding every supported title.
func NewRegistry() (*games.Registry, error) {
	return games.NewRegistry(Titles()...)
}
