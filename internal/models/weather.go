package models

import "time"

// Condition is the normalized weather category reported by the provider.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionRain         Condition = "Rain"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionSnow         Condition = "Snow"
	ConditionMist         Condition = "Mist"
	ConditionOther        Condition = "Other"
)

// knownConditions holds the categories the UI has dedicated themes for.
// Everything else (Haze, Smoke, Squall, ...) collapses into ConditionOther.
var knownConditions = map[string]Condition{
	"Clear":        ConditionClear,
	"Clouds":       ConditionClouds,
	"Rain":         ConditionRain,
	"Drizzle":      ConditionDrizzle,
	"Thunderstorm": ConditionThunderstorm,
	"Snow":         ConditionSnow,
	"Mist":         ConditionMist,
}

// ParseCondition maps a provider category string to a Condition.
// Unrecognized strings map to ConditionOther, never an error.
func ParseCondition(s string) Condition {
	if c, ok := knownConditions[s]; ok {
		return c
	}
	return ConditionOther
}

// CurrentConditions represents the current weather at a place.
// Place carries the provider-returned name, which is authoritative over
// whatever the user typed.
type CurrentConditions struct {
	Place       string
	Temp        float64 // °C
	FeelsLike   float64 // °C
	Humidity    int     // percent
	Pressure    int     // hPa
	WindSpeed   float64 // m/s
	Visibility  int     // meters
	Sunrise     int64   // unix seconds, UTC
	Sunset      int64   // unix seconds, UTC
	TZOffset    int64   // place's offset from UTC, seconds
	Condition   Condition
	Description string // e.g. "scattered clouds"
	Icon        string // provider icon code, e.g. "03d"
	FetchedAt   time.Time
}

// ForecastSample is one 3-hour observation from the forecast feed.
type ForecastSample struct {
	TimeText    string // provider-local "2006-01-02 15:04:05"
	Temp        float64 // °C
	Condition   Condition
	Description string
	Icon        string
}

// ForecastFeed is the raw 5-day/3-hour forecast as delivered: samples stay
// in provider order, untouched.
type ForecastFeed struct {
	City    string
	Samples []ForecastSample
}

// DailyForecastEntry is one day of the reduced forecast. Entries are kept
// in chronological (insertion) order.
type DailyForecastEntry struct {
	Day       string // weekday label, e.g. "Tuesday"
	Temp      float64 // °C
	Condition Condition
	Icon      string
}
