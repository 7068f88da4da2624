// Package cli renders contribution calendars for the terminal.
package cli

import (
	"strings"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

const (
	cellWidth  = 2
	labelWidth = 4
)

// glyphs keep tiers distinguishable without colour
var glyphs = map[models.IntensityTier]string{
	models.TierNone: "·",
	models.Tier1:    "░",
	models.Tier2:    "▒",
	models.Tier3:    "▓",
	models.Tier4:    "█",
}

var palette = map[models.IntensityTier]lipgloss.Color{
	models.TierNone: lipgloss.Color("#3a3f45"),
	models.Tier1:    lipgloss.Color("#0e4429"),
	models.Tier2:    lipgloss.Color("#006d32"),
	models.Tier3:    lipgloss.Color("#26a641"),
	models.Tier4:    lipgloss.Color("#39d353"),
}

type RenderOptions struct {
	Color bool
}

// RenderGraph draws the calendar as seven weekday rows of week columns under a
// row of month labels, followed by a legend and the yearly summary
func RenderGraph(calendar *models.ContributionCalendar, opts RenderOptions) string {
	var b strings.Builder

	gridWidth := len(calendar.Weeks) * cellWidth
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(strings.TrimRight(monthAxis(calendar.MonthLabels, gridWidth), " "))
	b.WriteString("\n")

	for weekday := 0; weekday < models.DaysPerWeek; weekday++ {
		var row strings.Builder
		row.WriteString(padRight(time.Weekday(weekday).String()[:3], labelWidth))
		for _, week := range calendar.Weeks {
			day := week[weekday]
			if day == nil {
				row.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			row.WriteString(cell(day.Tier(), opts))
			row.WriteString(" ")
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(legend(opts))
	b.WriteString("\n")
	b.WriteString(summary(calendar.Total, opts))
	b.WriteString("\n")

	return b.String()
}

// monthAxis spreads the labels evenly across width columns
func monthAxis(labels []models.MonthLabel, width int) string {
	if len(labels) == 0 || width <= 0 {
		return ""
	}

	axis := []rune(strings.Repeat(" ", width))
	step := width / len(labels)
	for _, label := range labels {
		start := label.Index * step
		for i, r := range label.Name {
			if start+i < len(axis) {
				axis[start+i] = r
			}
		}
	}
	return string(axis)
}

func cell(tier models.IntensityTier, opts RenderOptions) string {
	glyph := glyphs[tier]
	if !opts.Color {
		return glyph
	}
	return lipgloss.NewStyle().Foreground(palette[tier]).Render(glyph)
}

func legend(opts RenderOptions) string {
	parts := []string{"Less"}
	for tier := models.TierNone; tier <= models.Tier4; tier++ {
		parts = append(parts, cell(tier, opts))
	}
	parts = append(parts, "More")
	return strings.Repeat(" ", labelWidth) + strings.Join(parts, " ")
}

func summary(total int, opts RenderOptions) string {
	text := services.ContributionSummary(total, language.English)
	if !opts.Color {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
