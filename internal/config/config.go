package config

import "os"

// Config carries process configuration, sourced from the environment.
type Config struct {
	// APIKey is the OpenWeatherMap credential. It may be empty: a
	// missing key is reported by the fetch pipeline, not here.
	APIKey string

	// FallbackCity is shown when no device position is available.
	FallbackCity string
}

// FromEnv reads configuration from the environment.
func FromEnv() Config {
	return Config{
		APIKey:       os.Getenv("OPENWEATHER_API_KEY"),
		FallbackCity: getEnv("SKYCAST_FALLBACK_CITY", "Colombo"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
