package weather

import (
	"github.com/pasanw/skycast/internal/models"
)

// User-facing failure texts. These render verbatim, so keep the wording
// stable.
const (
	// MsgFetchFailed covers every fetch failure: unreachable network,
	// unknown city, provider errors, undecodable payloads.
	MsgFetchFailed = "Could not find weather data. Please try another city."

	// MsgMissingKey is shown when no API credential is configured. No
	// network call is attempted in that state.
	MsgMissingKey = "API Key is missing. Set OPENWEATHER_API_KEY to fetch live weather."
)

// Phase discriminates the screen states a fetch can be in.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

// ViewState is everything the screen needs to draw one fetch outcome.
// Exactly one phase is populated: Loading carries nothing, Ready
// carries weather, Failed carries a message.
type ViewState struct {
	Phase Phase

	// Ready fields.
	Current *models.CurrentConditions
	Daily   []models.DailyForecastEntry
	Samples []models.ForecastSample
	Warning string

	// Failed field.
	Message string
}

// Loading is the state shown while a fetch is in flight.
func Loading() ViewState {
	return ViewState{Phase: PhaseLoading}
}

// Ready carries a complete fetch result. warning is non-empty when the
// shown place substituted for the one the user asked about.
func Ready(current *models.CurrentConditions, daily []models.DailyForecastEntry, samples []models.ForecastSample, warning string) ViewState {
	return ViewState{
		Phase:   PhaseReady,
		Current: current,
		Daily:   daily,
		Samples: samples,
		Warning: warning,
	}
}

// Failed carries the message to show instead of weather.
func Failed(message string) ViewState {
	return ViewState{
		Phase:   PhaseFailed,
		Message: message,
	}
}
