package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/pasanw/skycast/internal/models"
)

// renderForecastPane renders the daily cards and the temperature trend
func (m Model) renderForecastPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Daily Forecast"))
	content.WriteString("\n\n")

	if len(m.view.Daily) == 0 {
		content.WriteString(mutedStyle.Render("No forecast data available"))
		return paneStyle.Width(width).Render(content.String())
	}

	content.WriteString(renderDailyCards(m.view.Daily))

	if trend := renderTrend(m.view.Samples, width-6); trend != "" {
		content.WriteString("\n\n")
		content.WriteString(labelStyle.Render("Temperature trend (3-hourly)"))
		content.WriteString("\n")
		content.WriteString(trend)
	}

	return paneStyle.Width(width).Render(content.String())
}

// renderDailyCards lays one card per day out side by side.
func renderDailyCards(entries []models.DailyForecastEntry) string {
	cards := make([]string, 0, len(entries))
	for _, entry := range entries {
		theme := themeFor(entry.Condition)

		day := labelStyle.Render(shortDay(entry.Day))
		glyph := lipgloss.NewStyle().Foreground(theme.accent).Render(glyphFor(entry.Icon, entry.Condition))
		temp := valueStyle.Render(fmt.Sprintf("%.0f°", entry.Temp))

		cards = append(cards, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, day, glyph, temp)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// shortDay abbreviates a weekday label to fit a narrow card.
func shortDay(day string) string {
	if len(day) > 3 {
		return day[:3]
	}
	return day
}

// renderTrend draws the 3-hourly temperatures as a sparkline. Values
// are shifted so the coldest sample sits just above the baseline, which
// keeps sub-zero temperatures drawable.
func renderTrend(samples []models.ForecastSample, width int) string {
	if len(samples) < 2 {
		return ""
	}

	if width > len(samples) {
		width = len(samples)
	}
	if width < 2 {
		return ""
	}

	coldest := samples[0].Temp
	for _, s := range samples[1:] {
		if s.Temp < coldest {
			coldest = s.Temp
		}
	}

	sl := sparkline.New(width, 4,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorPrimary)))
	for _, s := range samples {
		sl.Push(s.Temp - coldest + 1)
	}
	sl.Draw()

	return sl.View()
}
