package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pasanw/skycast/internal/location"
	"github.com/pasanw/skycast/internal/models"
	"github.com/pasanw/skycast/internal/weather"
)

// Mock provider client for testing

type mockAPI struct {
	current    *models.CurrentConditions
	currentErr error
	feed       *models.ForecastFeed
	feedErr    error
}

func (m *mockAPI) Current(ctx context.Context, q models.Query) (*models.CurrentConditions, error) {
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return m.current, nil
}

func (m *mockAPI) Forecast(ctx context.Context, q models.Query) (*models.ForecastFeed, error) {
	if m.feedErr != nil {
		return nil, m.feedErr
	}
	return m.feed, nil
}

func mockFeed() *models.ForecastFeed {
	feed := &models.ForecastFeed{City: "Colombo"}
	for d := 0; d < 5; d++ {
		date := time.Date(2026, 8, 24+d, 0, 0, 0, 0, time.UTC)
		for h := 0; h < 24; h += 3 {
			stamp := date.Add(time.Duration(h) * time.Hour)
			feed.Samples = append(feed.Samples, models.ForecastSample{
				TimeText:  stamp.Format("2006-01-02 15:04:05"),
				Temp:      26 + float64(d),
				Condition: models.ConditionClouds,
				Icon:      "03d",
			})
		}
	}
	return feed
}

func mockCurrent() *models.CurrentConditions {
	return &models.CurrentConditions{
		Place:       "Colombo",
		Temp:        28.4,
		FeelsLike:   32.1,
		Humidity:    79,
		Pressure:    1011,
		WindSpeed:   4.6,
		Visibility:  10000,
		Sunrise:     1787358780,
		Sunset:      1787402940,
		TZOffset:    19800,
		Condition:   models.ConditionClouds,
		Description: "scattered clouds",
		Icon:        "03d",
		FetchedAt:   time.Now(),
	}
}

// newTestModel builds a model over mock collaborators: a denied
// position provider and a provider client serving canned Colombo data.
func newTestModel() Model {
	api := &mockAPI{current: mockCurrent(), feed: mockFeed()}
	svc := weather.NewService(api, "test-key")
	resolver := location.NewResolver(location.Denied(), "Colombo")
	return NewModel(resolver, svc, "")
}

// TestIntegration_SearchFlow walks the complete search path: typing a
// city, submitting, and the fetch completion arriving.
func TestIntegration_SearchFlow(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	// Step 1: user types a city
	for _, char := range "Colombo" {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}}
		updatedModel, _ := m.Update(msg)
		m = updatedModel.(Model)
	}

	if m.searchInput.Value() != "Colombo" {
		t.Errorf("searchInput.Value() = %s, want 'Colombo'", m.searchInput.Value())
	}

	// Step 2: user presses Enter
	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)

	if m.view.Phase != weather.PhaseLoading {
		t.Errorf("phase = %v, want PhaseLoading while fetching", m.view.Phase)
	}
	if cmd == nil {
		t.Fatal("Expected command to fetch weather")
	}

	// Step 3: the fetch completes (runs the same closure the program
	// would run in the background)
	msg := fetchPlace(m.svc, "Colombo", m.seq)()
	done, ok := msg.(fetchDoneMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want fetchDoneMsg", msg)
	}

	updatedModel, _ = m.Update(done)
	m = updatedModel.(Model)

	if m.view.Phase != weather.PhaseReady {
		t.Fatalf("phase = %v, want PhaseReady", m.view.Phase)
	}

	view := m.View()
	if !strings.Contains(view, "Colombo") {
		t.Error("Ready view should name the place")
	}
	if !strings.Contains(view, "28.4") {
		t.Error("Ready view should show the temperature")
	}
	if !strings.Contains(view, "Scattered Clouds") {
		t.Error("Ready view should show the title-cased description")
	}
}

// TestIntegration_LaunchFlow exercises the resolver-driven initial
// load with a denied provider: fallback city plus advisory.
func TestIntegration_LaunchFlow(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	msg := resolveAndFetch(m.resolver, m.svc, m.seq)()
	done, ok := msg.(fetchDoneMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want fetchDoneMsg", msg)
	}

	updatedModel, _ := m.Update(done)
	m = updatedModel.(Model)

	if m.view.Phase != weather.PhaseReady {
		t.Fatalf("phase = %v, want PhaseReady", m.view.Phase)
	}
	if m.view.Warning != "Permission denied. Showing weather for Colombo." {
		t.Errorf("Warning = %q, want the permission advisory", m.view.Warning)
	}

	if !strings.Contains(m.View(), "Permission denied. Showing weather for Colombo.") {
		t.Error("Ready view should surface the permission advisory")
	}
}

// TestIntegration_FetchFailure drives a failing provider end to end.
func TestIntegration_FetchFailure(t *testing.T) {
	api := &mockAPI{currentErr: errors.New("boom"), feedErr: errors.New("boom")}
	svc := weather.NewService(api, "test-key")
	m := NewModel(location.NewResolver(location.Denied(), "Colombo"), svc, "")
	m.width = 100
	m.height = 40

	msg := fetchPlace(svc, "Atlantis", m.seq)()
	updatedModel, _ := m.Update(msg)
	m = updatedModel.(Model)

	if m.view.Phase != weather.PhaseFailed {
		t.Fatalf("phase = %v, want PhaseFailed", m.view.Phase)
	}
	if !strings.Contains(m.View(), "Could not find weather data. Please try another city.") {
		t.Error("Failed view should carry the failure message verbatim")
	}
}

// TestIntegration_RapidRefreshKeepsLatest reproduces two overlapping
// attempts completing out of order: the superseded completion must not
// clobber the newer attempt.
func TestIntegration_RapidRefreshKeepsLatest(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	// First search
	for _, char := range "Kandy" {
		updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
		m = updatedModel.(Model)
	}
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)
	staleSeq := m.seq

	// Second search before the first settles
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updatedModel.(Model)

	// The first attempt's completion arrives late
	stale := fetchDoneMsg{seq: staleSeq, view: weather.Failed(weather.MsgFetchFailed)}
	updatedModel, _ = m.Update(stale)
	m = updatedModel.(Model)

	if m.view.Phase != weather.PhaseLoading {
		t.Fatalf("phase = %v, want PhaseLoading: stale failure must not land", m.view.Phase)
	}

	// The current attempt's completion arrives
	msg := resolveAndFetch(m.resolver, m.svc, m.seq)()
	updatedModel, _ = m.Update(msg)
	m = updatedModel.(Model)

	if m.view.Phase != weather.PhaseReady {
		t.Errorf("phase = %v, want PhaseReady from the current attempt", m.view.Phase)
	}
}
