package weather

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/pasanw/skycast/internal/models"
	"github.com/pasanw/skycast/internal/openweather"
)

// Service runs the two weather calls a screen needs and reduces them to
// a single ViewState.
type Service struct {
	api    openweather.API
	apiKey string
}

// NewService creates a service over the given provider client. apiKey
// is checked before any fetch; an empty key short-circuits to a Failed
// state without touching the network.
func NewService(api openweather.API, apiKey string) *Service {
	return &Service{
		api:    api,
		apiKey: apiKey,
	}
}

// Fetch resolves the query into a Ready or Failed state. Current
// conditions and the forecast are fetched concurrently and joined:
// either call failing fails the whole fetch, there is no partial
// screen.
func (s *Service) Fetch(ctx context.Context, q models.Query) ViewState {
	if strings.TrimSpace(s.apiKey) == "" {
		return Failed(MsgMissingKey)
	}

	var (
		current    *models.CurrentConditions
		currentErr error
		feed       *models.ForecastFeed
		feedErr    error
		wg         sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		current, currentErr = s.api.Current(ctx, q)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		feed, feedErr = s.api.Forecast(ctx, q)
	}()

	wg.Wait()

	if currentErr != nil {
		log.Printf("current conditions fetch: %v", currentErr)
	}
	if feedErr != nil {
		log.Printf("forecast fetch: %v", feedErr)
	}
	if currentErr != nil || feedErr != nil {
		return Failed(MsgFetchFailed)
	}

	noon := noonSamples(feed.Samples)
	return Ready(current, dailyEntries(noon), feed.Samples, q.Warning)
}

// noonSamples keeps the midday entry of each forecast day, in provider
// order. One sample per day is enough for a daily card.
func noonSamples(samples []models.ForecastSample) []models.ForecastSample {
	var noon []models.ForecastSample
	for _, sample := range samples {
		if strings.HasSuffix(sample.TimeText, "12:00:00") {
			noon = append(noon, sample)
		}
	}
	return noon
}

// dailyEntries turns noon samples into display cards labeled by
// weekday.
func dailyEntries(samples []models.ForecastSample) []models.DailyForecastEntry {
	entries := make([]models.DailyForecastEntry, 0, len(samples))
	for _, sample := range samples {
		entries = append(entries, models.DailyForecastEntry{
			Day:       dayLabel(sample.TimeText),
			Temp:      sample.Temp,
			Condition: sample.Condition,
			Icon:      sample.Icon,
		})
	}
	return entries
}

// dayLabel names the weekday of a "2006-01-02 15:04:05" stamp. A stamp
// that does not parse keeps its date part so the entry still renders.
func dayLabel(timeText string) string {
	t, err := time.Parse("2006-01-02 15:04:05", timeText)
	if err != nil {
		if i := strings.IndexByte(timeText, ' '); i > 0 {
			return timeText[:i]
		}
		return timeText
	}
	return t.Weekday().String()
}
