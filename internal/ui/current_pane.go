package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// renderCurrentPane renders the current conditions pane
func (m Model) renderCurrentPane(width int) string {
	cur := m.view.Current
	if cur == nil {
		return ""
	}

	theme := themeFor(cur.Condition)

	var content strings.Builder

	content.WriteString(titleStyle.Render(cur.Place))
	content.WriteString("\n\n")

	headline := lipgloss.NewStyle().
		Foreground(theme.accent).
		Bold(true).
		Render(fmt.Sprintf("%s %.1f°C", glyphFor(cur.Icon, cur.Condition), cur.Temp))
	content.WriteString(headline)
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(titleCaser.String(cur.Description)))
	content.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Feels like", fmt.Sprintf("%.1f°C", cur.FeelsLike)},
		{"Humidity", fmt.Sprintf("%d%%", cur.Humidity)},
		{"Pressure", fmt.Sprintf("%d hPa", cur.Pressure)},
		{"Wind", fmt.Sprintf("%.1f m/s", cur.WindSpeed)},
		{"Visibility", formatVisibility(cur.Visibility)},
		{"Sunrise", formatClock(cur.Sunrise, cur.TZOffset)},
		{"Sunset", formatClock(cur.Sunset, cur.TZOffset)},
	}
	for _, row := range rows {
		content.WriteString(labelStyle.Width(12).Render(row.label))
		content.WriteString(valueStyle.Render(row.value))
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}

// formatVisibility renders meters as km once it reads better that way.
func formatVisibility(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	}
	return fmt.Sprintf("%d m", meters)
}

// formatClock renders a unix timestamp as the place's wall clock, using
// the provider-reported UTC offset.
func formatClock(unix, offset int64) string {
	if unix == 0 {
		return "n/a"
	}
	return time.Unix(unix+offset, 0).UTC().Format("15:04")
}
