package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pasanw/skycast/internal/models"
)

// conditionTheme is the accent color and glyph for one weather category.
type conditionTheme struct {
	accent lipgloss.Color
	glyph  string
}

// conditionThemes maps each category to its look. Lookups go through
// themeFor so an unknown category falls back instead of erroring.
var conditionThemes = map[models.Condition]conditionTheme{
	models.ConditionClear:        {accent: colorAccent, glyph: "☀"},
	models.ConditionClouds:       {accent: lipgloss.Color("#B0BEC5"), glyph: "☁"},
	models.ConditionRain:         {accent: lipgloss.Color("#4FC3F7"), glyph: "🌧"},
	models.ConditionDrizzle:      {accent: lipgloss.Color("#81D4FA"), glyph: "🌦"},
	models.ConditionThunderstorm: {accent: lipgloss.Color("#9575CD"), glyph: "⛈"},
	models.ConditionSnow:         {accent: lipgloss.Color("#E1F5FE"), glyph: "❄"},
	models.ConditionMist:         {accent: lipgloss.Color("#90A4AE"), glyph: "🌫"},
	models.ConditionOther:        {accent: colorMuted, glyph: "•"},
}

var fallbackTheme = conditionTheme{accent: colorMuted, glyph: "•"}

// themeFor returns the theme for a category. Never fails: unknown
// categories get the fallback.
func themeFor(c models.Condition) conditionTheme {
	if t, ok := conditionThemes[c]; ok {
		return t
	}
	return fallbackTheme
}

// iconGlyphs maps provider icon codes to glyphs. Night codes get their
// own glyph where one makes sense.
var iconGlyphs = map[string]string{
	"01d": "☀", "01n": "🌙",
	"02d": "⛅", "02n": "☁",
	"03d": "☁", "03n": "☁",
	"04d": "☁", "04n": "☁",
	"09d": "🌧", "09n": "🌧",
	"10d": "🌦", "10n": "🌧",
	"11d": "⛈", "11n": "⛈",
	"13d": "❄", "13n": "❄",
	"50d": "🌫", "50n": "🌫",
}

// glyphFor returns the glyph for an icon code, falling back to the
// category's glyph for codes the table does not know.
func glyphFor(icon string, c models.Condition) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return themeFor(c).glyph
}
