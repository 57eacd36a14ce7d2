package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pasanw/skycast/internal/location"
	"github.com/pasanw/skycast/internal/models"
	"github.com/pasanw/skycast/internal/weather"
)

// fetchDoneMsg is sent when a fetch attempt settles. seq names the
// attempt that produced it, so completions of superseded attempts can
// be told apart from the current one.
type fetchDoneMsg struct {
	seq  int
	view weather.ViewState
}

// resolveAndFetch resolves a location and fetches weather for it in the
// background. Runs on launch and on refresh.
func resolveAndFetch(resolver *location.Resolver, svc *weather.Service, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		q := resolver.Resolve(ctx)
		return fetchDoneMsg{seq: seq, view: svc.Fetch(ctx, q)}
	}
}

// fetchPlace fetches weather for a typed place name, bypassing the
// resolver.
func fetchPlace(svc *weather.Service, place string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return fetchDoneMsg{seq: seq, view: svc.Fetch(ctx, models.PlaceQuery(place))}
	}
}
