package location

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pasanw/skycast/internal/models"
)

// ErrPermissionDenied reports that the user has not granted device
// position access.
var ErrPermissionDenied = errors.New("location permission denied")

// Position is a geographic fix.
type Position struct {
	Lat float64
	Lon float64
}

// PositionProvider yields the device's current position.
type PositionProvider interface {
	Position(ctx context.Context) (*Position, error)
}

// Denied returns a provider that always refuses. It backs runs where
// position access was never granted.
func Denied() PositionProvider {
	return deniedProvider{}
}

type deniedProvider struct{}

func (deniedProvider) Position(_ context.Context) (*Position, error) {
	return nil, ErrPermissionDenied
}

// Resolver decides where weather should come from: the device position
// when the provider yields one, the fallback city otherwise. Fallback
// queries carry a warning explaining the substitution.
type Resolver struct {
	provider PositionProvider
	fallback string
	mu       sync.Mutex
}

// NewResolver creates a resolver backed by the given provider, falling
// back to fallbackCity when no position can be obtained.
func NewResolver(provider PositionProvider, fallbackCity string) *Resolver {
	return &Resolver{
		provider: provider,
		fallback: fallbackCity,
	}
}

// Resolve produces the query a fetch should run with. Concurrent calls
// serialize: a second Resolve waits for the position lookup already in
// flight rather than spawning its own.
func (r *Resolver) Resolve(ctx context.Context) models.Query {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, err := r.provider.Position(ctx)
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return models.PlaceQuery(r.fallback).
			WithWarning(fmt.Sprintf("Permission denied. Showing weather for %s.", r.fallback))
	case err != nil:
		return models.PlaceQuery(r.fallback).
			WithWarning(fmt.Sprintf("Location unavailable. Showing weather for %s.", r.fallback))
	}

	return models.CoordQuery(pos.Lat, pos.Lon)
}
