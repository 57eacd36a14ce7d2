package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pasanw/skycast/internal/location"
	"github.com/pasanw/skycast/internal/weather"
)

// Model represents the application's state
type Model struct {
	view weather.ViewState
	seq  int // current fetch attempt; completions of older attempts are dropped

	width  int
	height int

	// Search
	searchInput textinput.Model

	// Loading
	spinner spinner.Model

	// Collaborators
	resolver *location.Resolver
	svc      *weather.Service

	// startCity, when set, seeds the first fetch instead of the
	// resolver.
	startCity string
}

// NewModel creates the application model. startCity may be empty, in
// which case the first fetch goes through the location resolver.
func NewModel(resolver *location.Resolver, svc *weather.Service, startCity string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search city (e.g. Colombo)..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		view:        weather.Loading(),
		seq:         1,
		searchInput: ti,
		spinner:     s,
		resolver:    resolver,
		svc:         svc,
		startCity:   startCity,
	}
}

// Init starts the first fetch immediately: resolve the location (or
// take the seeded city), then load weather for it.
func (m Model) Init() tea.Cmd {
	fetch := resolveAndFetch(m.resolver, m.svc, m.seq)
	if m.startCity != "" {
		fetch = fetchPlace(m.svc, m.startCity, m.seq)
	}

	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		fetch,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fetchDoneMsg:
		// A completion from a superseded attempt changes nothing.
		if msg.seq != m.seq {
			return m, nil
		}
		m.view = msg.view
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			return m.startRefresh()
		case tea.KeyEnter:
			return m.startSearch()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// startSearch launches a fetch for the typed place. Enter on an empty
// box does nothing.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	place := strings.TrimSpace(m.searchInput.Value())
	if place == "" {
		return m, nil
	}

	m.seq++
	m.view = weather.Loading()
	return m, tea.Batch(m.spinner.Tick, fetchPlace(m.svc, place, m.seq))
}

// startRefresh re-runs the whole flow from the location resolver.
func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	m.seq++
	m.view = weather.Loading()
	return m, tea.Batch(m.spinner.Tick, resolveAndFetch(m.resolver, m.svc, m.seq))
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections,
		titleStyle.Render("☀ Skycast"),
		mutedStyle.Render("Current conditions & five-day outlook"),
		"",
	)

	boxWidth := m.width - 2
	if boxWidth > 48 {
		boxWidth = 48
	}
	sections = append(sections, searchBoxStyle.Width(boxWidth).Render(m.searchInput.View()), "")

	switch m.view.Phase {
	case weather.PhaseLoading:
		sections = append(sections, m.viewLoading())
	case weather.PhaseFailed:
		sections = append(sections, m.viewFailed())
	case weather.PhaseReady:
		sections = append(sections, m.viewReady())
	}

	help := helpStyle.Render("Enter: Search • Ctrl+R: Refresh • Ctrl+C: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the in-flight state
func (m Model) viewLoading() string {
	return fmt.Sprintf("%s Fetching weather...", m.spinner.View())
}

// viewFailed renders the failure state
func (m Model) viewFailed() string {
	return failedStyle.Render("✗ " + m.view.Message)
}

// viewReady renders weather: advisory banner if any, current
// conditions, then the forecast.
func (m Model) viewReady() string {
	var sections []string

	if m.view.Warning != "" {
		sections = append(sections, warningStyle.Render("⚠ "+m.view.Warning), "")
	}

	paneWidth := m.width - 2
	if paneWidth > 72 {
		paneWidth = 72
	}

	sections = append(sections, m.renderCurrentPane(paneWidth))
	sections = append(sections, m.renderForecastPane(paneWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
